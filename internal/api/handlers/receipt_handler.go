package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"pantrypilot-backend/domain"
	"pantrypilot-backend/internal/api/presenters"
	"pantrypilot-backend/pkg/receipt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReceiptHandler interface {
		AnalyzeReceipt(c *fiber.Ctx) error
		SaveReceiptItems(c *fiber.Ctx) error
		GetReceiptItems(c *fiber.Ctx) error
		CreateReceipt(c *fiber.Ctx) error
		GetReceipts(c *fiber.Ctx) error
		GetReceiptDetail(c *fiber.Ctx) error
		DeleteReceipt(c *fiber.Ctx) error
	}

	receiptHandler struct {
		receiptService receipt.ReceiptService
		validator      *validator.Validate
	}
)

func NewReceiptHandler(receiptService receipt.ReceiptService, validator *validator.Validate) ReceiptHandler {
	return &receiptHandler{
		receiptService: receiptService,
		validator:      validator,
	}
}

func (h *receiptHandler) AnalyzeReceipt(c *fiber.Ctx) error {
	file, err := c.FormFile("receipt")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeReceipt, domain.ErrNoReceiptFile)
	}

	items, imageURL, err := h.receiptService.AnalyzeReceipt(c.Context(), file)
	if err != nil {
		var parseErr *domain.ExtractionParseError
		switch {
		case errors.As(err, &parseErr):
			// Raw model text goes back for manual inspection.
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedAnalyzeReceipt, err)
		case errors.Is(err, domain.ErrUnsupportedImageType), errors.Is(err, domain.ErrReceiptImageTooLarge):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeReceipt, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAnalyzeReceipt, err)
		}
	}

	// The whole batch must validate; partial acceptance is not supported.
	if err := h.validator.Struct(domain.SaveReceiptItemsRequest{Items: items}); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedAnalyzeReceipt, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items":     items,
		"image_url": imageURL,
	}, fiber.StatusOK, domain.MessageSuccessAnalyzeReceipt)
}

func (h *receiptHandler) SaveReceiptItems(c *fiber.Ctx) error {
	var items []domain.CandidateItem
	if err := json.Unmarshal(c.Body(), &items); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.SaveReceiptItemsRequest{Items: items}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveReceiptItems, err)
	}

	res, err := h.receiptService.SaveReceiptItems(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveReceiptItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveReceiptItems)
}

func (h *receiptHandler) GetReceiptItems(c *fiber.Ctx) error {
	res, err := h.receiptService.GetReceiptItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceiptItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceiptItems)
}

func (h *receiptHandler) CreateReceipt(c *fiber.Ctx) error {
	req := new(domain.CreateReceiptRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReceipt, err)
	}

	res, err := h.receiptService.CreateReceipt(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReceipt)
}

func (h *receiptHandler) GetReceipts(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	receipts, count, err := h.receiptService.GetReceipts(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceipts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"receipts": receipts,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

func (h *receiptHandler) GetReceiptDetail(c *fiber.Ctx) error {
	receiptID := c.Params("id")

	res, err := h.receiptService.GetReceiptByID(c.Context(), receiptID)
	if err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetReceipts, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceipts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceiptDetail)
}

func (h *receiptHandler) DeleteReceipt(c *fiber.Ctx) error {
	receiptID := c.Params("id")

	if err := h.receiptService.DeleteReceipt(c.Context(), receiptID); err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteReceipt, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteReceipt, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReceipt)
}
