package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diewo77/devis-app/internal/httpx"
	"github.com/diewo77/devis-app/internal/models"
	"github.com/diewo77/devis-app/internal/services"
	"github.com/diewo77/devis-app/pdf"

	"gorm.io/gorm"
)

type QuoteHandler struct {
	DB       *gorm.DB
	Svc      *services.QuoteService
	Activity *services.ActivityService
}

func NewQuoteHandler(db *gorm.DB, svc *services.QuoteService, activity *services.ActivityService) *QuoteHandler {
	return &QuoteHandler{DB: db, Svc: svc, Activity: activity}
}

// List: GET /quotes – newest first, client and items preloaded.
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	offset := 0
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			offset = (n - 1) * limit
		}
	}
	dbq := h.DB.Model(&models.Quote{})
	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		dbq = dbq.Where("status = ?", status)
	}
	var total int64
	dbq.Count(&total)
	var quotes []models.Quote
	if err := dbq.Preload("Client").Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc")
	}).Order("id desc").Limit(limit).Offset(offset).Find(&quotes).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_quotes", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": quotes, "total": total, "limit": limit, "offset": offset})
}

type quoteItemReq struct {
	ProductRef  string `json:"productRef"`
	Description string `json:"description"`
	Quantity    any    `json:"quantity"`
	UnitPrice   any    `json:"unitPrice"`
}

type quoteReq struct {
	QuoteNumber       string         `json:"quoteNumber"`
	ClientID          uint           `json:"clientId"`
	CustomerReference string         `json:"customerReference"`
	SalesPerson       string         `json:"salesPerson"`
	DeliveryDelay     string         `json:"deliveryDelay"`
	ShippingPoint     string         `json:"shippingPoint"`
	ShippingTerms     string         `json:"shippingTerms"`
	Comments          string         `json:"comments"`
	Remarks           string         `json:"remarks"`
	TVARate           string         `json:"tvaRate"`
	TotalHT           string         `json:"totalHt"`
	TotalTVA          string         `json:"totalTva"`
	TotalTTC          string         `json:"totalTtc"`
	Status            string         `json:"status"`
	Items             []quoteItemReq `json:"items"`
}

// Create: POST /quotes – JSON only. Items with neither a description nor a
// product reference are dropped, matching the import rules of the legacy
// application. The quote number is generated when not supplied.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req quoteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}

	number := strings.TrimSpace(req.QuoteNumber)
	index := 0
	if number == "" {
		var err error
		number, index, err = h.Svc.NextQuoteNumber(req.ClientID)
		if err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "failed_to_number_quote", nil)
			return
		}
	}

	quote := models.Quote{
		QuoteNumber:       number,
		GlobalIndex:       index,
		Status:            orDefault(req.Status, "draft"),
		ClientID:          req.ClientID,
		Date:              time.Now(),
		CustomerReference: req.CustomerReference,
		SalesPerson:       req.SalesPerson,
		DeliveryDelay:     req.DeliveryDelay,
		ShippingPoint:     req.ShippingPoint,
		ShippingTerms:     req.ShippingTerms,
		Comments:          req.Comments,
		Remarks:           req.Remarks,
		TVARate:           orDefault(req.TVARate, "20"),
		TotalHT:           req.TotalHT,
		TotalTVA:          req.TotalTVA,
		TotalTTC:          req.TotalTTC,
	}
	for i, it := range req.Items {
		if strings.TrimSpace(it.Description) == "" && strings.TrimSpace(it.ProductRef) == "" {
			continue
		}
		quote.Items = append(quote.Items, models.QuoteItem{
			ProductRef:  it.ProductRef,
			Description: it.Description,
			Quantity:    coerceNumber(it.Quantity),
			UnitPrice:   coerceString(it.UnitPrice),
			SortOrder:   i,
		})
	}
	if err := h.DB.Create(&quote).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_quote", nil)
		return
	}
	h.Activity.Record("quote_created", "quote", quote.ID, quote.QuoteNumber)
	httpx.JSON(w, http.StatusCreated, quote)
}

// Get: GET /quotes/get?id=N
func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.load(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, quote)
}

// DownloadPDF: GET /quotes/pdf?id=N – streams the rendered document.
func (h *QuoteHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.load(w, r)
	if !ok {
		return
	}
	var settings models.CompanySettings
	if err := h.DB.First(&settings).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_settings", nil)
		return
	}

	data, company := h.Svc.PDFData(quote, settings)
	bytes, err := pdf.QuotePDF(r.Context(), data, company)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	h.Activity.Record("quote_pdf", "quote", quote.ID, quote.QuoteNumber)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"devis-"+quote.QuoteNumber+".pdf\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(bytes)
}

func (h *QuoteHandler) load(w http.ResponseWriter, r *http.Request) (*models.Quote, bool) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return nil, false
	}
	var quote models.Quote
	if err := h.DB.Preload("Client").Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc")
	}).First(&quote, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		} else {
			httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_quote", nil)
		}
		return nil, false
	}
	return &quote, true
}

// coerceNumber accepts JSON numbers or strings; anything else counts as 0,
// the same leniency the legacy forms relied on.
func coerceNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		return pdf.ParseDecimal(n)
	}
	return 0
}

func coerceString(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
