package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"pantrypilot-backend/domain"
	"pantrypilot-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReceiptService struct {
	saved [][]domain.CandidateItem
}

func (s *stubReceiptService) AnalyzeReceipt(ctx context.Context, file *multipart.FileHeader) ([]domain.CandidateItem, string, error) {
	return nil, "", nil
}

func (s *stubReceiptService) SaveReceiptItems(ctx context.Context, req domain.SaveReceiptItemsRequest) ([]domain.ReceiptItemResponse, error) {
	s.saved = append(s.saved, req.Items)
	responses := make([]domain.ReceiptItemResponse, 0, len(req.Items))
	for _, item := range req.Items {
		responses = append(responses, domain.ReceiptItemResponse{Name: item.Name, Price: item.Price})
	}
	return responses, nil
}

func (s *stubReceiptService) GetReceiptItems(ctx context.Context) ([]domain.ReceiptItemResponse, error) {
	return nil, nil
}

func (s *stubReceiptService) CreateReceipt(ctx context.Context, req domain.CreateReceiptRequest) (domain.ReceiptResponse, error) {
	return domain.ReceiptResponse{}, nil
}

func (s *stubReceiptService) GetReceipts(ctx context.Context, page, limit int) ([]domain.ReceiptResponse, int64, error) {
	return nil, 0, nil
}

func (s *stubReceiptService) GetReceiptByID(ctx context.Context, id string) (domain.ReceiptResponse, error) {
	return domain.ReceiptResponse{}, nil
}

func (s *stubReceiptService) DeleteReceipt(ctx context.Context, id string) error {
	return nil
}

func newItemsTestApp(service *stubReceiptService) *fiber.App {
	utils.InitValidator()
	handler := NewReceiptHandler(service, utils.Validate)

	app := fiber.New()
	app.Post("/api/receipts/items", handler.SaveReceiptItems)
	return app
}

func TestSaveReceiptItemsRejectsWholeBatch(t *testing.T) {
	service := &stubReceiptService{}
	app := newItemsTestApp(service)

	// One invalid item fails the whole batch; nothing is persisted.
	body := `[{"name":"Milk","price":"$3.00"},{"name":"","price":"$2.00"}]`
	req := httptest.NewRequest(fiber.MethodPost, "/api/receipts/items", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, service.saved)

	var envelope struct {
		Status string `json:"status"`
		Error  struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "SaveReceiptItemsRequest.Items[1].Name", envelope.Error.Field)
	assert.Equal(t, "failed on the 'required' rule", envelope.Error.Message)
}

func TestSaveReceiptItemsEmptyArray(t *testing.T) {
	service := &stubReceiptService{}
	app := newItemsTestApp(service)

	req := httptest.NewRequest(fiber.MethodPost, "/api/receipts/items", bytes.NewBufferString(`[]`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, service.saved)
}

func TestSaveReceiptItemsValidBatch(t *testing.T) {
	service := &stubReceiptService{}
	app := newItemsTestApp(service)

	body := `[{"name":"Milk","price":"$3.00","category":"Dairy"},{"name":"Bread","price":"$2.50","category":"Bakery"}]`
	req := httptest.NewRequest(fiber.MethodPost, "/api/receipts/items", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Len(t, service.saved, 1)
	assert.Len(t, service.saved[0], 2)
}
