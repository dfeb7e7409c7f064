package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/diewo77/devis-app/internal/httpx"
	"github.com/diewo77/devis-app/internal/models"
	"github.com/diewo77/devis-app/internal/services"

	"gorm.io/gorm"
)

type ClientHandler struct {
	DB       *gorm.DB
	Activity *services.ActivityService
}

func NewClientHandler(db *gorm.DB, activity *services.ActivityService) *ClientHandler {
	return &ClientHandler{DB: db, Activity: activity}
}

// List: GET /clients – optional q filter on company or last name.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	dbq := h.DB.Model(&models.Client{})
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		dbq = dbq.Where("lower(company_name) LIKE ? OR lower(last_name) LIKE ?", like, like)
	}
	var clients []models.Client
	if err := dbq.Order("id desc").Limit(200).Find(&clients).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_clients", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": clients})
}

// Create: POST /clients. A missing customId gets the next free slot so the
// quote number's client part stays meaningful.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	client.ID = 0
	if client.CustomID == 0 {
		var last models.Client
		if err := h.DB.Order("custom_id desc").Select("custom_id").First(&last).Error; err == nil {
			client.CustomID = last.CustomID + 1
		} else {
			client.CustomID = 1
		}
	}
	if err := h.DB.Create(&client).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_client", nil)
		return
	}
	h.Activity.Record("client_created", "client", client.ID, client.CompanyName)
	httpx.JSON(w, http.StatusCreated, client)
}

// Update: POST /clients/update?id=N
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var existing models.Client
	if err := h.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		} else {
			httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_client", nil)
		}
		return
	}
	var patch models.Client
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	patch.ID = existing.ID
	patch.CreatedAt = existing.CreatedAt
	if patch.CustomID == 0 {
		patch.CustomID = existing.CustomID
	}
	if err := h.DB.Save(&patch).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_client", nil)
		return
	}
	h.Activity.Record("client_updated", "client", patch.ID, patch.CompanyName)
	httpx.JSON(w, http.StatusOK, patch)
}
