package entities

import (
	"time"

	"pantrypilot-backend/pkg/money"

	"github.com/google/uuid"
)

const (
	InventoryStatusActive  = "Active"
	InventoryStatusRemoved = "Removed"
)

type InventoryItem struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Quantity    string       `json:"quantity"`
	Category    string       `json:"category"`
	Price       money.Amount `gorm:"embedded;embeddedPrefix:price_" json:"price"`
	ExpiryDate  *time.Time   `json:"expiry_date,omitempty"`
	// Status is a soft-delete marker: Removed items stay addressable by ID
	// but are excluded from listings and totals.
	Status          string     `json:"status"` // Active, Removed
	SourceReceiptID *uuid.UUID `json:"source_receipt_id,omitempty"`

	SourceReceipt *Receipt `gorm:"foreignKey:SourceReceiptID"`
	Timestamp
}
