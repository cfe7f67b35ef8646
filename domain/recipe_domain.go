package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessSearchRecipes   = "recipes searched successfully"
	MessageSuccessRandomRecipes   = "random recipes retrieved successfully"
	MessageSuccessGetLookups      = "lookup values retrieved successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedSearchRecipes   = "failed to search recipes"
	MessageFailedRandomRecipes   = "failed to get random recipes"
	MessageFailedGetLookups      = "failed to retrieve lookup values"

	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrRecipeAPIFailed   = errors.New("recipe API request failed")
	ErrEmptySearchQuery  = errors.New("search query is empty")
	ErrNoActiveInventory = errors.New("no active inventory items to match against")
)

type (
	IngredientRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	CreateRecipeRequest struct {
		Title              string              `json:"title" validate:"required"`
		Description        string              `json:"description"`
		Instructions       string              `json:"instructions" validate:"required"`
		PrepTimeMinutes    int                 `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes    int                 `json:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings           int                 `json:"servings" validate:"omitempty,min=1"`
		Calories           int                 `json:"calories" validate:"omitempty,min=0"`
		SourceURL          string              `json:"source_url" validate:"omitempty,url"`
		MealType           string              `json:"meal_type"`
		DietaryPreferences []string            `json:"dietary_preferences"`
		Ingredients        []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
	}

	RecipeSearchRequest struct {
		Query          string `json:"q"`
		Diet           string `json:"diet"`
		InventoryBased bool   `json:"inventory_based"`
		Number         int    `json:"number"`
	}

	IngredientResponse struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit,omitempty"`
	}

	RecipeResponse struct {
		ID              string    `json:"id"`
		Title           string    `json:"title"`
		Description     string    `json:"description,omitempty"`
		ImageURL        string    `json:"image_url,omitempty"`
		SourceURL       string    `json:"source_url,omitempty"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		Servings        int       `json:"servings"`
		Calories        int       `json:"calories,omitempty"`
		MealType        string    `json:"meal_type,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Instructions       string               `json:"instructions"`
		Ingredients        []IngredientResponse `json:"ingredients"`
		DietaryPreferences []string             `json:"dietary_preferences,omitempty"`
	}

	// ExternalRecipe is a search hit from the recipe-search provider before it
	// is saved locally.
	ExternalRecipe struct {
		ExternalID     int64                `json:"external_id"`
		Title          string               `json:"title"`
		ImageURL       string               `json:"image_url,omitempty"`
		SourceURL      string               `json:"source_url,omitempty"`
		ReadyInMinutes int                  `json:"ready_in_minutes"`
		Servings       int                  `json:"servings"`
		Ingredients    []IngredientResponse `json:"ingredients,omitempty"`
		UsesInventory  bool                 `json:"uses_inventory"`
	}

	RecipeSearchResponse struct {
		Recipes      []ExternalRecipe `json:"recipes"`
		TotalResults int              `json:"total_results"`
	}

	LookupResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)
