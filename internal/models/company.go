package models

import "time"

// Company settings: issuer identity printed on documents. A single row;
// handlers upsert the first record.
type CompanySettings struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	LogoURL           string    `json:"logoUrl"`
	LegalNotesDefault string    `json:"legalNotesDefault"`
	DefaultTVA        string    `json:"defaultTva"`
	SIREN             string    `json:"siren"`
	TVANumber         string    `json:"tvaNumber"`
	PaymentMethod     string    `json:"paymentMethod"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
