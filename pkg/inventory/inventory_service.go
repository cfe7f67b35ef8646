package inventory

import (
	"context"
	"errors"
	"time"

	"pantrypilot-backend/domain"
	"pantrypilot-backend/entities"
	"pantrypilot-backend/pkg/money"
	"pantrypilot-backend/pkg/receipt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		AddInventoryItem(ctx context.Context, req domain.AddInventoryItemRequest) (domain.InventoryItemResponse, error)
		UpdateInventoryItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest) error
		RemoveInventoryItem(ctx context.Context, id string) error
		GetInventoryItems(ctx context.Context, category string, page, limit int) ([]domain.InventoryItemResponse, int64, error)
		GetInventoryItemByID(ctx context.Context, id string) (domain.InventoryItemResponse, error)
		AddReceiptItemsToInventory(ctx context.Context, receiptID string) ([]domain.InventoryItemResponse, error)
		GetInventoryStats(ctx context.Context) (domain.InventoryStatsResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		receiptRepository   receipt.ReceiptRepository
		logger              *zap.Logger
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, receiptRepository receipt.ReceiptRepository, logger *zap.Logger) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		receiptRepository:   receiptRepository,
		logger:              logger,
	}
}

func (s *inventoryService) AddInventoryItem(ctx context.Context, req domain.AddInventoryItemRequest) (domain.InventoryItemResponse, error) {
	item := &entities.InventoryItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Status:      entities.InventoryStatusActive,
	}

	if item.Quantity == "" {
		item.Quantity = "1"
	}
	if item.Category == "" {
		item.Category = "Other"
	}

	if req.Price != "" {
		if price, ok := money.Parse(req.Price); ok {
			item.Price = price
		}
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.InventoryItemResponse{}, domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = &expiryDate
	}

	if err := s.inventoryRepository.AddInventoryItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return itemToResponse(item), nil
}

func (s *inventoryService) UpdateInventoryItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest) error {
	item, err := s.inventoryRepository.GetInventoryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Quantity != "" {
		item.Quantity = req.Quantity
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Price != "" {
		if price, ok := money.Parse(req.Price); ok {
			item.Price = price
		}
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = &expiryDate
	}

	return s.inventoryRepository.UpdateInventoryItem(ctx, item)
}

// RemoveInventoryItem soft-deletes: the row is kept and stays addressable by
// ID, but leaves all listings and totals.
func (s *inventoryService) RemoveInventoryItem(ctx context.Context, id string) error {
	item, err := s.inventoryRepository.GetInventoryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}

	item.Status = entities.InventoryStatusRemoved
	return s.inventoryRepository.UpdateInventoryItem(ctx, item)
}

func (s *inventoryService) GetInventoryItems(ctx context.Context, category string, page, limit int) ([]domain.InventoryItemResponse, int64, error) {
	items, count, err := s.inventoryRepository.GetActiveItems(ctx, category, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}
	return responses, count, nil
}

func (s *inventoryService) GetInventoryItemByID(ctx context.Context, id string) (domain.InventoryItemResponse, error) {
	item, err := s.inventoryRepository.GetInventoryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InventoryItemResponse{}, domain.ErrInventoryItemNotFound
		}
		return domain.InventoryItemResponse{}, err
	}
	return itemToResponse(item), nil
}

// AddReceiptItemsToInventory converts a receipt's goods into inventory items.
// Bookkeeping lines (tax, fees, totals) are skipped and each new item gets an
// expiry date defaulted from its category.
func (s *inventoryService) AddReceiptItemsToInventory(ctx context.Context, receiptID string) ([]domain.InventoryItemResponse, error) {
	receiptUUID, err := uuid.Parse(receiptID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	receiptItems, err := s.receiptRepository.GetItemsByReceiptID(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]*entities.InventoryItem, 0, len(receiptItems))
	for _, receiptItem := range receiptItems {
		if !IsInventoryCategory(receiptItem.Category) {
			continue
		}

		category := receiptItem.Category
		if category == "" {
			category = "Other"
		}

		items = append(items, &entities.InventoryItem{
			ID:              uuid.New(),
			Name:            receiptItem.Name,
			Description:     receiptItem.Description,
			Quantity:        "1",
			Category:        category,
			Price:           receiptItem.Price,
			ExpiryDate:      DefaultExpiry(receiptItem.Category, now),
			Status:          entities.InventoryStatusActive,
			SourceReceiptID: &receiptUUID,
		})
	}

	if err := s.inventoryRepository.AddInventoryItems(ctx, items); err != nil {
		return nil, err
	}

	s.logger.Info("receipt items added to inventory",
		zap.String("receipt_id", receiptID),
		zap.Int("items", len(items)),
		zap.Int("skipped", len(receiptItems)-len(items)),
	)

	responses := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}
	return responses, nil
}

// GetInventoryStats assumes a single-currency inventory: the estimated value
// sums minor units across every active item and renders with the default
// symbol, regardless of the symbol each item was stored with.
func (s *inventoryService) GetInventoryStats(ctx context.Context) (domain.InventoryStatsResponse, error) {
	byCategory, expiringSoon, totalUnits, err := s.inventoryRepository.GetStats(ctx, time.Now().AddDate(0, 0, 7))
	if err != nil {
		return domain.InventoryStatsResponse{}, err
	}

	var totalItems int64
	for _, count := range byCategory {
		totalItems += count
	}

	return domain.InventoryStatsResponse{
		TotalItems:     totalItems,
		ExpiringSoon:   expiringSoon,
		ByCategory:     byCategory,
		EstimatedValue: money.New(totalUnits, money.DefaultSymbol).String(),
	}, nil
}

func itemToResponse(item *entities.InventoryItem) domain.InventoryItemResponse {
	response := domain.InventoryItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		Category:    item.Category,
		ExpiryDate:  item.ExpiryDate,
		Status:      item.Status,
		CreatedAt:   item.CreatedAt,
	}
	if !item.Price.IsZero() {
		response.Price = item.Price.String()
	}
	if item.SourceReceiptID != nil {
		response.SourceReceiptID = item.SourceReceiptID.String()
	}
	return response
}
