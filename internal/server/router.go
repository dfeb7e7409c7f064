package server

import (
	"net/http"

	"github.com/diewo77/devis-app/internal/handlers"
	"github.com/diewo77/devis-app/internal/httpx"
	"github.com/diewo77/devis-app/internal/services"

	"gorm.io/gorm"
)

// New constructs the root http.Handler with all routes applied.
func New(db *gorm.DB) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		// Lightweight DB check (SELECT 1) – detailed errors stay out of the body
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	activity := services.NewActivityService(db)

	// Client endpoints
	ch := handlers.NewClientHandler(db, activity)
	mux.HandleFunc("/clients", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			ch.List(w, r)
		case http.MethodPost:
			ch.Create(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	})
	mux.HandleFunc("/clients/update", ch.Update)

	// Quote endpoints
	qs := services.NewQuoteService(db)
	qh := handlers.NewQuoteHandler(db, qs, activity)
	mux.HandleFunc("/quotes", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			qh.List(w, r)
		case http.MethodPost:
			qh.Create(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	})
	mux.HandleFunc("/quotes/get", qh.Get)
	mux.HandleFunc("/quotes/pdf", qh.DownloadPDF)

	// Company settings
	sh := handlers.NewSettingsHandler(db, activity)
	mux.HandleFunc("/settings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			sh.Get(w, r)
		case http.MethodPost:
			sh.Update(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	})

	// Dashboard
	dh := handlers.NewDashboardHandler(services.NewDashboardService(db), activity)
	mux.HandleFunc("/dashboard/stats", dh.Stats)
	mux.HandleFunc("/dashboard/activity", dh.RecentActivity)

	return mux
}
