package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diewo77/devis-app/internal/models"
	"github.com/diewo77/devis-app/internal/services"
)

func TestClientCreateAssignsCustomID(t *testing.T) {
	db := setupQuoteTestDB(t)
	h := NewClientHandler(db, services.NewActivityService(db))

	create := func(body string) models.Client {
		t.Helper()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
		h.Create(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
		}
		var c models.Client
		if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return c
	}

	first := create(`{"companyName":"ACME"}`)
	if first.CustomID != 1 {
		t.Fatalf("first client should get customId 1, got %d", first.CustomID)
	}
	second := create(`{"companyName":"Globex"}`)
	if second.CustomID != 2 {
		t.Fatalf("second client should get customId 2, got %d", second.CustomID)
	}
	explicit := create(`{"companyName":"Initech","customId":77}`)
	if explicit.CustomID != 77 {
		t.Fatalf("explicit customId must be kept, got %d", explicit.CustomID)
	}
}

func TestClientListFilter(t *testing.T) {
	db := setupQuoteTestDB(t)
	h := NewClientHandler(db, services.NewActivityService(db))
	for _, name := range []string{"ACME SARL", "Globex"} {
		if err := db.Create(&models.Client{CompanyName: name}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/clients?q=acme", nil))
	var list struct {
		Items []models.Client `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].CompanyName != "ACME SARL" {
		t.Fatalf("filter wrong: %+v", list.Items)
	}
}
