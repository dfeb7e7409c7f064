package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diewo77/devis-app/internal/httpx"
	"github.com/diewo77/devis-app/internal/models"
	"github.com/diewo77/devis-app/internal/services"

	"gorm.io/gorm"
)

// SettingsHandler manages the single company-settings row.
type SettingsHandler struct {
	DB       *gorm.DB
	Activity *services.ActivityService
}

func NewSettingsHandler(db *gorm.DB, activity *services.ActivityService) *SettingsHandler {
	return &SettingsHandler{DB: db, Activity: activity}
}

// Get: GET /settings – empty object when nothing is configured yet.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	var settings models.CompanySettings
	err := h.DB.First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_settings", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, settings)
}

// Update: POST /settings – upsert of the first row.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.CompanySettings
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	var existing models.CompanySettings
	err := h.DB.First(&existing).Error
	switch {
	case err == nil:
		patch.ID = existing.ID
		patch.CreatedAt = existing.CreatedAt
	case errors.Is(err, gorm.ErrRecordNotFound):
		patch.ID = 0
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_settings", nil)
		return
	}
	if err := h.DB.Save(&patch).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_settings", nil)
		return
	}
	h.Activity.Record("settings_updated", "settings", patch.ID, patch.Name)
	httpx.JSON(w, http.StatusOK, patch)
}
