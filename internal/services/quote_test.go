package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/diewo77/devis-app/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Client{}, &models.Quote{}, &models.QuoteItem{}, &models.CompanySettings{}, &models.ActivityLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestNextQuoteNumberFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuoteService(db)
	number, index, err := svc.NextQuoteNumber(0)
	if err != nil {
		t.Fatalf("NextQuoteNumber: %v", err)
	}
	if number != "T-0000-0100" || index != 100 {
		t.Fatalf("got %q / %d, want T-0000-0100 / 100", number, index)
	}
}

func TestNextQuoteNumberIncrementsAndPads(t *testing.T) {
	db := setupTestDB(t)
	client := models.Client{CustomID: 42, CompanyName: "ACME"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("client: %v", err)
	}
	if err := db.Create(&models.Quote{QuoteNumber: "T-0000-0100", GlobalIndex: 100, Status: "draft"}).Error; err != nil {
		t.Fatalf("quote: %v", err)
	}
	svc := NewQuoteService(db)
	number, index, err := svc.NextQuoteNumber(client.ID)
	if err != nil {
		t.Fatalf("NextQuoteNumber: %v", err)
	}
	if number != "T-0042-0101" || index != 101 {
		t.Fatalf("got %q / %d, want T-0042-0101 / 101", number, index)
	}
}

func TestPDFDataMapping(t *testing.T) {
	svc := NewQuoteService(nil)
	quote := &models.Quote{
		QuoteNumber: "T-0001-0200",
		Date:        time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC),
		TVARate:     "20",
		TotalHT:     "100",
		Client:      models.Client{ID: 1, CompanyName: "ACME", Address: "1 rue Test"},
		Items: []models.QuoteItem{
			{Description: "deuxième", Quantity: 2, UnitPrice: "5", SortOrder: 1},
			{Description: "première", Quantity: 1.5, UnitPrice: "10", SortOrder: 0},
		},
	}
	settings := models.CompanySettings{Name: "T-LINK", SIREN: "123"}

	data, company := svc.PDFData(quote, settings)
	if data.QuoteNumber != "T-0001-0200" || data.Date != "2024-03-07" {
		t.Fatalf("header mapping wrong: %+v", data)
	}
	if data.Client == nil || data.Client.CompanyName != "ACME" {
		t.Fatalf("client mapping wrong: %+v", data.Client)
	}
	if len(data.Items) != 2 || data.Items[0].Description != "première" {
		t.Fatalf("items must be ordered by SortOrder: %+v", data.Items)
	}
	if data.Items[1].Quantity != "2" || data.Items[0].Quantity != "1.5" {
		t.Fatalf("quantity formatting wrong: %+v", data.Items)
	}
	if company.Name != "T-LINK" || company.SIREN != "123" {
		t.Fatalf("company mapping wrong: %+v", company)
	}
}

func TestPDFDataNoClientNoDate(t *testing.T) {
	svc := NewQuoteService(nil)
	data, _ := svc.PDFData(&models.Quote{QuoteNumber: "T-0000-0100"}, models.CompanySettings{})
	if data.Client != nil {
		t.Fatalf("zero client should map to nil")
	}
	if data.Date != "" {
		t.Fatalf("zero date should map to empty string, got %q", data.Date)
	}
}

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	client := models.Client{CompanyName: "ACME"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("client: %v", err)
	}
	quotes := []models.Quote{
		{QuoteNumber: "T-0000-0100", Status: "draft"},
		{QuoteNumber: "T-0000-0101", Status: "accepted", TotalTTC: "1200.00"},
		{QuoteNumber: "T-0000-0102", Status: "accepted", TotalTTC: "not a number"},
		{QuoteNumber: "T-0000-0103", Status: "sent"},
	}
	for i := range quotes {
		if err := db.Create(&quotes[i]).Error; err != nil {
			t.Fatalf("quote: %v", err)
		}
	}
	stats, err := NewDashboardService(db).Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalQuotes != 4 || stats.DraftQuotes != 1 || stats.SentQuotes != 1 || stats.AcceptedQuotes != 2 {
		t.Fatalf("counts wrong: %+v", stats)
	}
	if stats.TotalClients != 1 {
		t.Fatalf("client count wrong: %+v", stats)
	}
	if stats.AcceptedRevenue != 1200 {
		t.Fatalf("revenue should coerce bad rows to 0: %+v", stats)
	}
}

func TestActivityRecordAndRecent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewActivityService(db)
	svc.Record("quote_created", "quote", 1, "T-0000-0100")
	svc.Record("quote_pdf", "quote", 1, "T-0000-0100")
	entries, err := svc.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 || entries[0].Action != "quote_pdf" {
		t.Fatalf("expected newest first, got %+v", entries)
	}
}
