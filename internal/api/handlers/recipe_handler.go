package handlers

import (
	"errors"
	"strconv"

	"pantrypilot-backend/domain"
	"pantrypilot-backend/internal/api/presenters"
	"pantrypilot-backend/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
		GetRandomRecipes(c *fiber.Ctx) error
		GetMealTypes(c *fiber.Ctx) error
		GetDietaryPreferences(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveRecipe)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	recipes, count, err := h.recipeService.GetRecipes(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) SearchRecipes(c *fiber.Ctx) error {
	req := domain.RecipeSearchRequest{
		Query:          c.Query("q", ""),
		Diet:           c.Query("diet", ""),
		InventoryBased: c.QueryBool("inventory_based", false),
	}

	number, err := strconv.Atoi(c.Query("number", "10"))
	if err == nil && number > 0 {
		req.Number = number
	}

	res, err := h.recipeService.SearchRecipes(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveInventory) {
			return presenters.SuccessResponse(c, domain.RecipeSearchResponse{
				Recipes:      []domain.ExternalRecipe{},
				TotalResults: 0,
			}, fiber.StatusOK, "no active inventory items to match against")
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *recipeHandler) GetRandomRecipes(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Query("number", "5"))
	if err != nil || number < 1 {
		number = 5
	}

	res, err := h.recipeService.GetRandomRecipes(c.Context(), number)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedRandomRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRandomRecipes)
}

func (h *recipeHandler) GetMealTypes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetMealTypes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetLookups, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLookups)
}

func (h *recipeHandler) GetDietaryPreferences(c *fiber.Ctx) error {
	res, err := h.recipeService.GetDietaryPreferences(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetLookups, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLookups)
}
