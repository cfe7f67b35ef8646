package receipt

import (
	"context"

	"pantrypilot-backend/entities"

	"gorm.io/gorm"
)

type (
	ReceiptRepository interface {
		// CreateReceiptWithItems writes the receipt and all of its items in a
		// single transaction; a failure on any row rolls back the whole batch.
		CreateReceiptWithItems(ctx context.Context, receipt *entities.Receipt, items []*entities.ReceiptItem) error
		CreateReceiptItems(ctx context.Context, items []*entities.ReceiptItem) error
		GetReceiptItems(ctx context.Context) ([]*entities.ReceiptItem, error)
		GetItemsByReceiptID(ctx context.Context, receiptID string) ([]*entities.ReceiptItem, error)
		GetReceipts(ctx context.Context, page, limit int) ([]*entities.Receipt, int64, error)
		GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error)
		DeleteReceipt(ctx context.Context, id string) error
	}

	receiptRepository struct {
		db *gorm.DB
	}
)

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) CreateReceiptWithItems(ctx context.Context, receipt *entities.Receipt, items []*entities.ReceiptItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(receipt).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.ReceiptID = &receipt.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *receiptRepository) CreateReceiptItems(ctx context.Context, items []*entities.ReceiptItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *receiptRepository) GetReceiptItems(ctx context.Context) ([]*entities.ReceiptItem, error) {
	var items []*entities.ReceiptItem
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *receiptRepository) GetItemsByReceiptID(ctx context.Context, receiptID string) ([]*entities.ReceiptItem, error) {
	var items []*entities.ReceiptItem
	if err := r.db.WithContext(ctx).Where("receipt_id = ?", receiptID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *receiptRepository) GetReceipts(ctx context.Context, page, limit int) ([]*entities.Receipt, int64, error) {
	var receipts []*entities.Receipt
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Receipt{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&receipts).Error; err != nil {
		return nil, 0, err
	}

	return receipts, count, nil
}

func (r *receiptRepository) GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error) {
	var receipt entities.Receipt
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&receipt).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepository) DeleteReceipt(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("receipt_id = ?", id).Delete(&entities.ReceiptItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Receipt{}).Error
	})
}
