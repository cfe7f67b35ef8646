package handlers

import (
	"errors"
	"strconv"

	"pantrypilot-backend/domain"
	"pantrypilot-backend/internal/api/presenters"
	"pantrypilot-backend/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		AddInventoryItem(c *fiber.Ctx) error
		UpdateInventoryItem(c *fiber.Ctx) error
		RemoveInventoryItem(c *fiber.Ctx) error
		GetInventoryItems(c *fiber.Ctx) error
		GetInventoryItemDetails(c *fiber.Ctx) error
		AddReceiptItemsToInventory(c *fiber.Ctx) error
		GetInventoryStats(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) AddInventoryItem(c *fiber.Ctx) error {
	req := new(domain.AddInventoryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddInventoryItem, err)
	}

	res, err := h.inventoryService.AddInventoryItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddInventoryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddInventoryItem)
}

func (h *inventoryHandler) UpdateInventoryItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateInventoryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateInventoryItem, err)
	}

	if err := h.inventoryService.UpdateInventoryItem(c.Context(), itemID, *req); err != nil {
		if errors.Is(err, domain.ErrInventoryItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateInventoryItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateInventoryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateInventoryItem)
}

func (h *inventoryHandler) RemoveInventoryItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.inventoryService.RemoveInventoryItem(c.Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrInventoryItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemoveInventoryItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveInventoryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveInventoryItem)
}

func (h *inventoryHandler) GetInventoryItems(c *fiber.Ctx) error {
	category := c.Query("category", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.inventoryService.GetInventoryItems(c.Context(), category, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetInventoryItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetInventoryItems)
}

func (h *inventoryHandler) GetInventoryItemDetails(c *fiber.Ctx) error {
	itemID := c.Params("id")

	res, err := h.inventoryService.GetInventoryItemByID(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrInventoryItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetInventoryItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetInventoryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInventoryItems)
}

func (h *inventoryHandler) AddReceiptItemsToInventory(c *fiber.Ctx) error {
	receiptID := c.Params("id")

	res, err := h.inventoryService.AddReceiptItemsToInventory(c.Context(), receiptID)
	if err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToInventory, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddToInventory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddToInventory)
}

func (h *inventoryHandler) GetInventoryStats(c *fiber.Ctx) error {
	stats, err := h.inventoryService.GetInventoryStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetInventoryStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetInventoryStats)
}
