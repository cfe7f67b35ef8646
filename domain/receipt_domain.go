package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	MessageSuccessAnalyzeReceipt   = "receipt analyzed successfully"
	MessageSuccessSaveReceiptItems = "receipt items saved successfully"
	MessageSuccessGetReceiptItems  = "receipt items retrieved successfully"
	MessageSuccessCreateReceipt    = "receipt created successfully"
	MessageSuccessGetReceipts      = "receipts retrieved successfully"
	MessageSuccessGetReceiptDetail = "receipt detail retrieved successfully"
	MessageSuccessDeleteReceipt    = "receipt deleted successfully"
	MessageSuccessAddToInventory   = "receipt items added to inventory"

	MessageFailedAnalyzeReceipt   = "failed to analyze receipt"
	MessageFailedSaveReceiptItems = "failed to save receipt items"
	MessageFailedGetReceiptItems  = "failed to retrieve receipt items"
	MessageFailedCreateReceipt    = "failed to create receipt"
	MessageFailedGetReceipts      = "failed to retrieve receipts"
	MessageFailedDeleteReceipt    = "failed to delete receipt"
	MessageFailedAddToInventory   = "failed to add receipt items to inventory"

	ErrReceiptNotFound      = errors.New("receipt not found")
	ErrNoReceiptFile        = errors.New("no receipt file uploaded")
	ErrUnsupportedImageType = errors.New("receipt image must be JPEG or PNG")
	ErrReceiptImageTooLarge = errors.New("receipt image exceeds 5MB")
	ErrEmptyItemBatch       = errors.New("item batch is empty")
)

// ExtractionParseError is returned when the vision model's output cannot be
// parsed as a JSON item array even after recovery heuristics. Raw carries the
// unmodified model text for diagnostics.
type ExtractionParseError struct {
	Raw string
}

func (e *ExtractionParseError) Error() string {
	return fmt.Sprintf("could not parse extraction output: %q", e.Raw)
}

type (
	// CandidateItem is a line item as extracted from a receipt image, before
	// validation and persistence. Price keeps the symbol-prefixed string form
	// the model produced; it is converted to a structured amount on save.
	CandidateItem struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description,omitempty"`
		Price       string `json:"price" validate:"required"`
		Category    string `json:"category,omitempty"`
	}

	SaveReceiptItemsRequest struct {
		Items []CandidateItem `json:"items" validate:"required,min=1,dive"`
	}

	CreateReceiptRequest struct {
		StoreName string          `json:"store_name"`
		ImageURL  string          `json:"image_url" validate:"omitempty,url"`
		Date      string          `json:"date" validate:"required"`
		Total     string          `json:"total"`
		Items     []CandidateItem `json:"items" validate:"dive"`
	}

	ReceiptItemResponse struct {
		ID          string    `json:"id"`
		ReceiptID   string    `json:"receipt_id,omitempty"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		Price       string    `json:"price"`
		Category    string    `json:"category,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	ReceiptResponse struct {
		ID        string                `json:"id"`
		StoreName string                `json:"store_name,omitempty"`
		ImageURL  string                `json:"image_url,omitempty"`
		Date      time.Time             `json:"date"`
		Total     string                `json:"total,omitempty"`
		Items     []ReceiptItemResponse `json:"items,omitempty"`
		CreatedAt time.Time             `json:"created_at"`
	}
)
