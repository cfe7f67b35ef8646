package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddInventoryItem    = "inventory item added successfully"
	MessageSuccessUpdateInventoryItem = "inventory item updated successfully"
	MessageSuccessRemoveInventoryItem = "inventory item removed successfully"
	MessageSuccessGetInventoryItems   = "inventory items retrieved successfully"
	MessageSuccessGetInventoryStats   = "inventory statistics retrieved successfully"

	MessageFailedAddInventoryItem    = "failed to add inventory item"
	MessageFailedUpdateInventoryItem = "failed to update inventory item"
	MessageFailedRemoveInventoryItem = "failed to remove inventory item"
	MessageFailedGetInventoryItems   = "failed to retrieve inventory items"
	MessageFailedGetInventoryStats   = "failed to retrieve inventory statistics"

	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
)

type (
	AddInventoryItemRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		Quantity    string `json:"quantity"`
		Category    string `json:"category"`
		Price       string `json:"price"`
		ExpiryDate  string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	}

	UpdateInventoryItemRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Description string `json:"description"`
		Quantity    string `json:"quantity"`
		Category    string `json:"category"`
		Price       string `json:"price"`
		ExpiryDate  string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	}

	InventoryItemResponse struct {
		ID              string     `json:"id"`
		Name            string     `json:"name"`
		Description     string     `json:"description,omitempty"`
		Quantity        string     `json:"quantity"`
		Category        string     `json:"category"`
		Price           string     `json:"price,omitempty"`
		ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
		Status          string     `json:"status"`
		SourceReceiptID string     `json:"source_receipt_id,omitempty"`
		CreatedAt       time.Time  `json:"created_at"`
	}

	InventoryStatsResponse struct {
		TotalItems     int64            `json:"total_items"`
		ExpiringSoon   int64            `json:"expiring_soon"`
		ByCategory     map[string]int64 `json:"by_category"`
		EstimatedValue string           `json:"estimated_value"`
	}
)
