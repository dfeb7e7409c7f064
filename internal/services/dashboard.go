package services

import (
	"github.com/diewo77/devis-app/internal/models"
	"github.com/diewo77/devis-app/pdf"

	"gorm.io/gorm"
)

// DashboardStats aggregates the landing-page numbers.
type DashboardStats struct {
	TotalQuotes     int64   `json:"totalQuotes"`
	DraftQuotes     int64   `json:"draftQuotes"`
	SentQuotes      int64   `json:"sentQuotes"`
	AcceptedQuotes  int64   `json:"acceptedQuotes"`
	TotalClients    int64   `json:"totalClients"`
	AcceptedRevenue float64 `json:"acceptedRevenue"` // TTC sum over accepted quotes
}

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService { return &DashboardService{DB: db} }

func (s *DashboardService) Stats() (DashboardStats, error) {
	var st DashboardStats
	counts := []struct {
		dst    *int64
		status string
	}{
		{&st.TotalQuotes, ""},
		{&st.DraftQuotes, "draft"},
		{&st.SentQuotes, "sent"},
		{&st.AcceptedQuotes, "accepted"},
	}
	for _, c := range counts {
		q := s.DB.Model(&models.Quote{})
		if c.status != "" {
			q = q.Where("status = ?", c.status)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return st, err
		}
	}
	if err := s.DB.Model(&models.Client{}).Count(&st.TotalClients).Error; err != nil {
		return st, err
	}

	// Totals are stored as strings; sum them with the same tolerant
	// coercion the PDF uses, so a legacy malformed row counts as zero
	// instead of failing the dashboard.
	var totals []string
	if err := s.DB.Model(&models.Quote{}).Where("status = ?", "accepted").
		Pluck("total_ttc", &totals).Error; err != nil {
		return st, err
	}
	for _, t := range totals {
		st.AcceptedRevenue += pdf.ParseDecimal(t)
	}
	return st, nil
}
