package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/diewo77/devis-app/internal/models"
	"github.com/diewo77/devis-app/pdf"

	"gorm.io/gorm"
)

// QuoteService encapsulates quote-related business logic: numbering and the
// mapping from persisted records to the PDF engine's display snapshots.
type QuoteService struct {
	DB *gorm.DB
}

func NewQuoteService(db *gorm.DB) *QuoteService { return &QuoteService{DB: db} }

// NextQuoteNumber builds the next document number, T-<client>-<index>. The
// global index is shared across all clients and starts at 100; the client
// part is the client's CustomID zero-padded to four digits, "0000" when the
// client is unknown.
func (s *QuoteService) NextQuoteNumber(clientID uint) (string, int, error) {
	var last models.Quote
	nextIndex := 100
	err := s.DB.Order("global_index desc").Select("global_index").First(&last).Error
	switch {
	case err == nil:
		nextIndex = last.GlobalIndex + 1
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return "", 0, err
	}

	customID := 0
	if clientID != 0 {
		var client models.Client
		if err := s.DB.Select("custom_id").First(&client, clientID).Error; err == nil {
			customID = client.CustomID
		}
	}
	return fmt.Sprintf("T-%04d-%04d", customID, nextIndex), nextIndex, nil
}

// PDFData maps a quote and the company settings into the rendering engine's
// input. This is the whole contract between storage and document output:
// the engine never sees gorm models.
func (s *QuoteService) PDFData(q *models.Quote, settings models.CompanySettings) (pdf.QuoteData, pdf.CompanyData) {
	items := make([]models.QuoteItem, len(q.Items))
	copy(items, q.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })

	data := pdf.QuoteData{
		QuoteNumber:       q.QuoteNumber,
		CustomerReference: q.CustomerReference,
		SalesPerson:       q.SalesPerson,
		DeliveryDelay:     q.DeliveryDelay,
		ShippingPoint:     q.ShippingPoint,
		ShippingTerms:     q.ShippingTerms,
		Comments:          q.Comments,
		Remarks:           q.Remarks,
		TVARate:           q.TVARate,
		TotalHT:           q.TotalHT,
		TotalTVA:          q.TotalTVA,
		TotalTTC:          q.TotalTTC,
	}
	if !q.Date.IsZero() {
		data.Date = q.Date.Format(time.DateOnly)
	}
	if q.Client.ID != 0 {
		data.Client = &pdf.ClientData{
			CompanyName: q.Client.CompanyName,
			FirstName:   q.Client.FirstName,
			LastName:    q.Client.LastName,
			Address:     q.Client.Address,
			Phone:       q.Client.Phone,
		}
	}
	for _, it := range items {
		data.Items = append(data.Items, pdf.QuoteItemData{
			Quantity:    formatFloat(it.Quantity),
			ProductRef:  it.ProductRef,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
		})
	}

	company := pdf.CompanyData{
		Name:          settings.Name,
		Address:       settings.Address,
		Phone:         settings.Phone,
		Email:         settings.Email,
		LogoURL:       settings.LogoURL,
		SIREN:         settings.SIREN,
		TVANumber:     settings.TVANumber,
		PaymentMethod: settings.PaymentMethod,
	}
	return data, company
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
