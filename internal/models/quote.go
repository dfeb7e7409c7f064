package models

import "time"

// Quote / devis models. The TVA rate and the three totals are stored as
// strings, exactly as the upstream application persisted them; the PDF
// layer coerces and reconciles them at render time.
type Quote struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	QuoteNumber       string      `gorm:"not null;index" json:"quoteNumber"`
	GlobalIndex       int         `gorm:"index" json:"globalIndex"`
	Status            string      `gorm:"not null;default:'draft'" json:"status"` // draft, sent, accepted, rejected
	ClientID          uint        `gorm:"index" json:"clientId"`
	Client            Client      `gorm:"foreignKey:ClientID" json:"client"`
	Date              time.Time   `json:"date"`
	CustomerReference string      `json:"customerReference"`
	SalesPerson       string      `json:"salesPerson"`
	DeliveryDelay     string      `json:"deliveryDelay"`
	ShippingPoint     string      `json:"shippingPoint"`
	ShippingTerms     string      `json:"shippingTerms"`
	Comments          string      `json:"comments"`
	Remarks           string      `json:"remarks"`
	TVARate           string      `gorm:"default:'20'" json:"tvaRate"`
	TotalHT           string      `json:"totalHt"`
	TotalTVA          string      `json:"totalTva"`
	TotalTTC          string      `json:"totalTtc"`
	Items             []QuoteItem `gorm:"foreignKey:QuoteID" json:"items"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

type QuoteItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	QuoteID     uint    `gorm:"not null;index" json:"quoteId"`
	ProductRef  string  `json:"productRef"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   string  `json:"unitPrice"`
	TotalPrice  string  `json:"totalPrice"` // stored but not trusted; the PDF recomputes line totals
	SortOrder   int     `json:"sortOrder"`
}
