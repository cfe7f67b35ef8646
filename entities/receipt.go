package entities

import (
	"time"

	"pantrypilot-backend/pkg/money"

	"github.com/google/uuid"
)

type Receipt struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	StoreName string       `json:"store_name,omitempty"`
	ImageURL  string       `json:"image_url,omitempty"`
	Date      time.Time    `json:"date"`
	Total     money.Amount `gorm:"embedded;embeddedPrefix:total_" json:"total"`

	Items []*ReceiptItem `gorm:"foreignKey:ReceiptID"`
	Timestamp
}

type ReceiptItem struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReceiptID   *uuid.UUID   `json:"receipt_id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       money.Amount `gorm:"embedded;embeddedPrefix:price_" json:"price"`
	// RawPrice keeps the price string exactly as extracted from the receipt,
	// for audit when lenient parsing dropped characters.
	RawPrice string `json:"raw_price,omitempty"`
	Category string `json:"category,omitempty"`

	Receipt *Receipt `gorm:"foreignKey:ReceiptID"`
	Timestamp
}
