package handlers

import (
	"net/http"
	"strconv"

	"github.com/diewo77/devis-app/internal/httpx"
	"github.com/diewo77/devis-app/internal/services"
)

type DashboardHandler struct {
	Svc      *services.DashboardService
	Activity *services.ActivityService
}

func NewDashboardHandler(svc *services.DashboardService, activity *services.ActivityService) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Activity: activity}
}

// Stats: GET /dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_stats", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}

// RecentActivity: GET /dashboard/activity?limit=N
func (h *DashboardHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.Activity.Recent(limit)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_activity", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": entries})
}
