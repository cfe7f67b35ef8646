package inventory

import (
	"context"
	"time"

	"pantrypilot-backend/entities"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		AddInventoryItem(ctx context.Context, item *entities.InventoryItem) error
		AddInventoryItems(ctx context.Context, items []*entities.InventoryItem) error
		GetInventoryItemByID(ctx context.Context, id string) (*entities.InventoryItem, error)
		UpdateInventoryItem(ctx context.Context, item *entities.InventoryItem) error
		// GetActiveItems lists Active items only; Removed items stay in the
		// table and remain fetchable by ID.
		GetActiveItems(ctx context.Context, category string, page, limit int) ([]*entities.InventoryItem, int64, error)
		GetActiveItemNames(ctx context.Context) ([]string, error)
		GetStats(ctx context.Context, expiringBefore time.Time) (map[string]int64, int64, int64, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AddInventoryItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) AddInventoryItems(ctx context.Context, items []*entities.InventoryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *inventoryRepository) GetInventoryItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) UpdateInventoryItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) GetActiveItems(ctx context.Context, category string, page, limit int) ([]*entities.InventoryItem, int64, error) {
	var items []*entities.InventoryItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("status = ?", entities.InventoryStatusActive)
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	if err := query.Model(&entities.InventoryItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiry_date asc nulls last").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *inventoryRepository) GetActiveItemNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&entities.InventoryItem{}).
		Where("status = ?", entities.InventoryStatusActive).
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *inventoryRepository) GetStats(ctx context.Context, expiringBefore time.Time) (map[string]int64, int64, int64, error) {
	type categoryCount struct {
		Category string
		Count    int64
	}

	var counts []categoryCount
	if err := r.db.WithContext(ctx).
		Model(&entities.InventoryItem{}).
		Select("category, count(*) as count").
		Where("status = ?", entities.InventoryStatusActive).
		Group("category").
		Scan(&counts).Error; err != nil {
		return nil, 0, 0, err
	}

	byCategory := make(map[string]int64, len(counts))
	for _, c := range counts {
		byCategory[c.Category] = c.Count
	}

	var expiringSoon int64
	if err := r.db.WithContext(ctx).
		Model(&entities.InventoryItem{}).
		Where("status = ? AND expiry_date IS NOT NULL AND expiry_date < ?", entities.InventoryStatusActive, expiringBefore).
		Count(&expiringSoon).Error; err != nil {
		return nil, 0, 0, err
	}

	var totalValue int64
	if err := r.db.WithContext(ctx).
		Model(&entities.InventoryItem{}).
		Select("coalesce(sum(price_units), 0)").
		Where("status = ?", entities.InventoryStatusActive).
		Scan(&totalValue).Error; err != nil {
		return nil, 0, 0, err
	}

	return byCategory, expiringSoon, totalValue, nil
}
