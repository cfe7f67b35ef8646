package receipt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"pantrypilot-backend/domain"
	"pantrypilot-backend/entities"
	"pantrypilot-backend/internal/utils/storage"
	"pantrypilot-backend/pkg/extraction"
	"pantrypilot-backend/pkg/money"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxReceiptImageSize = 5 * 1024 * 1024

type (
	ReceiptService interface {
		AnalyzeReceipt(ctx context.Context, file *multipart.FileHeader) ([]domain.CandidateItem, string, error)
		SaveReceiptItems(ctx context.Context, req domain.SaveReceiptItemsRequest) ([]domain.ReceiptItemResponse, error)
		GetReceiptItems(ctx context.Context) ([]domain.ReceiptItemResponse, error)
		CreateReceipt(ctx context.Context, req domain.CreateReceiptRequest) (domain.ReceiptResponse, error)
		GetReceipts(ctx context.Context, page, limit int) ([]domain.ReceiptResponse, int64, error)
		GetReceiptByID(ctx context.Context, id string) (domain.ReceiptResponse, error)
		DeleteReceipt(ctx context.Context, id string) error
	}

	receiptService struct {
		receiptRepository ReceiptRepository
		extractor         extraction.Extractor
		s3                storage.AwsS3
		logger            *zap.Logger
	}
)

func NewReceiptService(receiptRepository ReceiptRepository, extractor extraction.Extractor, s3 storage.AwsS3, logger *zap.Logger) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
		extractor:         extractor,
		s3:                s3,
		logger:            logger,
	}
}

func (s *receiptService) AnalyzeReceipt(ctx context.Context, fileHeader *multipart.FileHeader) ([]domain.CandidateItem, string, error) {
	if fileHeader == nil {
		return nil, "", domain.ErrNoReceiptFile
	}

	if fileHeader.Size > maxReceiptImageSize {
		return nil, "", domain.ErrReceiptImageTooLarge
	}

	mimeType := receiptMimeType(fileHeader)
	if mimeType == "" {
		return nil, "", domain.ErrUnsupportedImageType
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	// Keep an audit copy of the image. A storage failure must not block the
	// extraction itself.
	imageURL := ""
	fileName := fmt.Sprintf("receipt-%s", uuid.New().String())
	if objectKey, err := s.s3.UploadFile(fileName, fileHeader, "receipts", storage.AllowImage...); err != nil {
		s.logger.Warn("failed to store receipt image", zap.Error(err))
	} else {
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	items, err := s.extractor.ExtractItems(ctx, imageBytes, mimeType)
	if err != nil {
		return nil, "", err
	}

	items = EnsureTaxLine(items)

	return items, imageURL, nil
}

func (s *receiptService) SaveReceiptItems(ctx context.Context, req domain.SaveReceiptItemsRequest) ([]domain.ReceiptItemResponse, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyItemBatch
	}

	items := make([]*entities.ReceiptItem, 0, len(req.Items))
	for _, candidate := range req.Items {
		items = append(items, candidateToEntity(candidate, nil))
	}

	if err := s.receiptRepository.CreateReceiptItems(ctx, items); err != nil {
		return nil, err
	}

	responses := make([]domain.ReceiptItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}
	return responses, nil
}

func (s *receiptService) GetReceiptItems(ctx context.Context) ([]domain.ReceiptItemResponse, error) {
	items, err := s.receiptRepository.GetReceiptItems(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.ReceiptItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}
	return responses, nil
}

func (s *receiptService) CreateReceipt(ctx context.Context, req domain.CreateReceiptRequest) (domain.ReceiptResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.ReceiptResponse{}, fmt.Errorf("invalid receipt date: %w", err)
	}

	receipt := &entities.Receipt{
		ID:        uuid.New(),
		StoreName: req.StoreName,
		ImageURL:  req.ImageURL,
		Date:      date,
	}

	if req.Total != "" {
		total, ok := money.Parse(req.Total)
		if ok {
			receipt.Total = total
		}
	}

	items := make([]*entities.ReceiptItem, 0, len(req.Items))
	for _, candidate := range req.Items {
		items = append(items, candidateToEntity(candidate, &receipt.ID))
	}

	if err := s.receiptRepository.CreateReceiptWithItems(ctx, receipt, items); err != nil {
		return domain.ReceiptResponse{}, err
	}

	receipt.Items = items
	return receiptToResponse(receipt, true), nil
}

func (s *receiptService) GetReceipts(ctx context.Context, page, limit int) ([]domain.ReceiptResponse, int64, error) {
	receipts, count, err := s.receiptRepository.GetReceipts(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.ReceiptResponse, 0, len(receipts))
	for _, receipt := range receipts {
		responses = append(responses, receiptToResponse(receipt, false))
	}
	return responses, count, nil
}

func (s *receiptService) GetReceiptByID(ctx context.Context, id string) (domain.ReceiptResponse, error) {
	receipt, err := s.receiptRepository.GetReceiptByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptResponse{}, domain.ErrReceiptNotFound
		}
		return domain.ReceiptResponse{}, err
	}
	return receiptToResponse(receipt, true), nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, id string) error {
	receipt, err := s.receiptRepository.GetReceiptByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReceiptNotFound
		}
		return err
	}

	if receipt.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(receipt.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.receiptRepository.DeleteReceipt(ctx, id)
}

func candidateToEntity(candidate domain.CandidateItem, receiptID *uuid.UUID) *entities.ReceiptItem {
	price, _ := money.Parse(candidate.Price)
	return &entities.ReceiptItem{
		ID:          uuid.New(),
		ReceiptID:   receiptID,
		Name:        candidate.Name,
		Description: candidate.Description,
		Price:       price,
		RawPrice:    candidate.Price,
		Category:    candidate.Category,
	}
}

func itemToResponse(item *entities.ReceiptItem) domain.ReceiptItemResponse {
	response := domain.ReceiptItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.String(),
		Category:    item.Category,
		CreatedAt:   item.CreatedAt,
	}
	if item.ReceiptID != nil {
		response.ReceiptID = item.ReceiptID.String()
	}
	return response
}

func receiptToResponse(receipt *entities.Receipt, withItems bool) domain.ReceiptResponse {
	response := domain.ReceiptResponse{
		ID:        receipt.ID.String(),
		StoreName: receipt.StoreName,
		ImageURL:  receipt.ImageURL,
		Date:      receipt.Date,
		CreatedAt: receipt.CreatedAt,
	}
	if !receipt.Total.IsZero() {
		response.Total = receipt.Total.String()
	}
	if withItems {
		for _, item := range receipt.Items {
			response.Items = append(response.Items, itemToResponse(item))
		}
	}
	return response
}

func receiptMimeType(fileHeader *multipart.FileHeader) string {
	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
		case ".png":
			mimeType = "image/png"
		case ".jpg", ".jpeg":
			mimeType = "image/jpeg"
		}
	}
	if mimeType != "image/jpeg" && mimeType != "image/png" {
		return ""
	}
	return mimeType
}
