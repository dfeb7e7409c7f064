package models

import "time"

// Client entity
type Client struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomID    int       `gorm:"index" json:"customId"` // 4-digit slot in quote numbers (T-XXXX-NNNN)
	CompanyName string    `gorm:"index" json:"companyName"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Address     string    `json:"address"` // free text, newline separated
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
