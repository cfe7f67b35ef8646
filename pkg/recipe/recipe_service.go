package recipe

import (
	"context"
	"errors"

	"pantrypilot-backend/domain"
	"pantrypilot-backend/entities"
	"pantrypilot-backend/internal/utils/imagesearch"
	"pantrypilot-backend/pkg/inventory"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeDetailResponse, error)
		GetRecipes(ctx context.Context, page, limit int) ([]domain.RecipeResponse, int64, error)
		GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error)
		SearchRecipes(ctx context.Context, req domain.RecipeSearchRequest) (domain.RecipeSearchResponse, error)
		GetRandomRecipes(ctx context.Context, number int) ([]domain.ExternalRecipe, error)
		GetMealTypes(ctx context.Context) ([]domain.LookupResponse, error)
		GetDietaryPreferences(ctx context.Context) ([]domain.LookupResponse, error)
	}

	recipeService struct {
		recipeRepository    RecipeRepository
		inventoryRepository inventory.InventoryRepository
		searchClient        SearchClient
		imageSearch         imagesearch.ImageSearch
		logger              *zap.Logger
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	inventoryRepository inventory.InventoryRepository,
	searchClient SearchClient,
	imageSearch imagesearch.ImageSearch,
	logger *zap.Logger,
) RecipeService {
	return &recipeService{
		recipeRepository:    recipeRepository,
		inventoryRepository: inventoryRepository,
		searchClient:        searchClient,
		imageSearch:         imageSearch,
		logger:              logger,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeDetailResponse, error) {
	recipe := &entities.Recipe{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		Instructions:    req.Instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		Calories:        req.Calories,
		SourceURL:       req.SourceURL,
	}

	// Image lookup is best-effort; a provider failure leaves the placeholder.
	recipe.ImageURL = s.imageSearch.FindImageURL(ctx, req.Title)

	if req.MealType != "" {
		mealType, err := s.recipeRepository.GetOrCreateMealType(ctx, req.MealType)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		recipe.MealTypeID = &mealType.ID
		recipe.MealType = mealType
	}

	for _, ingredient := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, &entities.RecipeIngredient{
			ID:       uuid.New(),
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Unit:     ingredient.Unit,
		})
	}

	for _, name := range req.DietaryPreferences {
		preference, err := s.recipeRepository.GetOrCreateDietaryPreference(ctx, name)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		recipe.DietaryRestrictions = append(recipe.DietaryRestrictions, &entities.RecipeDietaryRestriction{
			ID:                  uuid.New(),
			DietaryPreferenceID: preference.ID,
			DietaryPreference:   preference,
		})
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return recipeToDetail(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, page, limit int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, recipeToResponse(recipe))
	}
	return responses, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}
	return recipeToDetail(recipe), nil
}

// SearchRecipes queries the external provider. With InventoryBased set, hits
// are restricted to recipes whose ingredients overlap the active inventory by
// bidirectional substring match.
func (s *recipeService) SearchRecipes(ctx context.Context, req domain.RecipeSearchRequest) (domain.RecipeSearchResponse, error) {
	recipes, total, err := s.searchClient.Search(ctx, req.Query, req.Diet, req.Number)
	if err != nil {
		return domain.RecipeSearchResponse{}, err
	}

	if req.InventoryBased {
		names, err := s.inventoryRepository.GetActiveItemNames(ctx)
		if err != nil {
			return domain.RecipeSearchResponse{}, err
		}
		inventoryNames := NormalizeInventoryNames(names)
		if len(inventoryNames) == 0 {
			return domain.RecipeSearchResponse{}, domain.ErrNoActiveInventory
		}

		filtered := recipes[:0]
		for _, recipe := range recipes {
			ingredientNames := make([]string, 0, len(recipe.Ingredients))
			for _, ingredient := range recipe.Ingredients {
				ingredientNames = append(ingredientNames, ingredient.Name)
			}
			if MatchesInventory(ingredientNames, inventoryNames) {
				recipe.UsesInventory = true
				filtered = append(filtered, recipe)
			}
		}
		recipes = filtered
		total = len(recipes)
	}

	for i := range recipes {
		if recipes[i].ImageURL == "" {
			recipes[i].ImageURL = s.imageSearch.FindImageURL(ctx, recipes[i].Title)
		}
	}

	return domain.RecipeSearchResponse{
		Recipes:      recipes,
		TotalResults: total,
	}, nil
}

func (s *recipeService) GetRandomRecipes(ctx context.Context, number int) ([]domain.ExternalRecipe, error) {
	recipes, err := s.searchClient.Random(ctx, number)
	if err != nil {
		return nil, err
	}

	for i := range recipes {
		if recipes[i].ImageURL == "" {
			recipes[i].ImageURL = s.imageSearch.FindImageURL(ctx, recipes[i].Title)
		}
	}
	return recipes, nil
}

func (s *recipeService) GetMealTypes(ctx context.Context) ([]domain.LookupResponse, error) {
	mealTypes, err := s.recipeRepository.GetMealTypes(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.LookupResponse, 0, len(mealTypes))
	for _, mealType := range mealTypes {
		responses = append(responses, domain.LookupResponse{ID: mealType.ID.String(), Name: mealType.Name})
	}
	return responses, nil
}

func (s *recipeService) GetDietaryPreferences(ctx context.Context) ([]domain.LookupResponse, error) {
	preferences, err := s.recipeRepository.GetDietaryPreferences(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.LookupResponse, 0, len(preferences))
	for _, preference := range preferences {
		responses = append(responses, domain.LookupResponse{ID: preference.ID.String(), Name: preference.Name})
	}
	return responses, nil
}

func recipeToResponse(recipe *entities.Recipe) domain.RecipeResponse {
	response := domain.RecipeResponse{
		ID:              recipe.ID.String(),
		Title:           recipe.Title,
		Description:     recipe.Description,
		ImageURL:        recipe.ImageURL,
		SourceURL:       recipe.SourceURL,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Servings:        recipe.Servings,
		Calories:        recipe.Calories,
		CreatedAt:       recipe.CreatedAt,
	}
	if recipe.MealType != nil {
		response.MealType = recipe.MealType.Name
	}
	return response
}

func recipeToDetail(recipe *entities.Recipe) domain.RecipeDetailResponse {
	detail := domain.RecipeDetailResponse{
		RecipeResponse: recipeToResponse(recipe),
		Instructions:   recipe.Instructions,
	}
	for _, ingredient := range recipe.Ingredients {
		detail.Ingredients = append(detail.Ingredients, domain.IngredientResponse{
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Unit:     ingredient.Unit,
		})
	}
	for _, restriction := range recipe.DietaryRestrictions {
		if restriction.DietaryPreference != nil {
			detail.DietaryPreferences = append(detail.DietaryPreferences, restriction.DietaryPreference.Name)
		}
	}
	return detail
}
