package recipe

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"pantrypilot-backend/domain"
	"pantrypilot-backend/internal/utils"

	"github.com/go-resty/resty/v2"
)

const searchBaseURL = "https://api.spoonacular.com"

type (
	// SearchClient talks to the external recipe-search provider.
	SearchClient interface {
		Search(ctx context.Context, query, diet string, number int) ([]domain.ExternalRecipe, int, error)
		Random(ctx context.Context, number int) ([]domain.ExternalRecipe, error)
	}

	searchClient struct {
		httpClient *resty.Client
	}

	apiIngredient struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	}

	apiRecipe struct {
		ID                  int64           `json:"id"`
		Title               string          `json:"title"`
		Image               string          `json:"image"`
		SourceURL           string          `json:"sourceUrl"`
		ReadyInMinutes      int             `json:"readyInMinutes"`
		Servings            int             `json:"servings"`
		ExtendedIngredients []apiIngredient `json:"extendedIngredients"`
	}

	searchResponse struct {
		Results      []apiRecipe `json:"results"`
		TotalResults int         `json:"totalResults"`
	}

	randomResponse struct {
		Recipes []apiRecipe `json:"recipes"`
	}
)

func NewSearchClient() SearchClient {
	client := resty.New().
		SetBaseURL(searchBaseURL).
		SetTimeout(15 * time.Second)

	return &searchClient{httpClient: client}
}

func (c *searchClient) Search(ctx context.Context, query, diet string, number int) ([]domain.ExternalRecipe, int, error) {
	apiKey := utils.GetConfig("RECIPE_API_KEY")
	if apiKey == "" {
		return nil, 0, fmt.Errorf("RECIPE_API_KEY not set")
	}

	if number <= 0 {
		number = 10
	}

	params := map[string]string{
		"apiKey":          apiKey,
		"query":           query,
		"number":          strconv.Itoa(number),
		"fillIngredients": "true",
	}
	if diet != "" {
		params["diet"] = diet
	}

	var result searchResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get("/recipes/complexSearch")
	if err != nil {
		return nil, 0, err
	}
	if resp.IsError() {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrRecipeAPIFailed, resp.Status())
	}

	recipes := make([]domain.ExternalRecipe, 0, len(result.Results))
	for _, hit := range result.Results {
		recipes = append(recipes, toExternalRecipe(hit))
	}
	return recipes, result.TotalResults, nil
}

func (c *searchClient) Random(ctx context.Context, number int) ([]domain.ExternalRecipe, error) {
	apiKey := utils.GetConfig("RECIPE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RECIPE_API_KEY not set")
	}

	if number <= 0 {
		number = 5
	}

	var result randomResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apiKey": apiKey,
			"number": strconv.Itoa(number),
		}).
		SetResult(&result).
		Get("/recipes/random")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeAPIFailed, resp.Status())
	}

	recipes := make([]domain.ExternalRecipe, 0, len(result.Recipes))
	for _, hit := range result.Recipes {
		recipes = append(recipes, toExternalRecipe(hit))
	}
	return recipes, nil
}

func toExternalRecipe(hit apiRecipe) domain.ExternalRecipe {
	recipe := domain.ExternalRecipe{
		ExternalID:     hit.ID,
		Title:          hit.Title,
		ImageURL:       hit.Image,
		SourceURL:      hit.SourceURL,
		ReadyInMinutes: hit.ReadyInMinutes,
		Servings:       hit.Servings,
	}
	for _, ingredient := range hit.ExtendedIngredients {
		recipe.Ingredients = append(recipe.Ingredients, domain.IngredientResponse{
			Name:     ingredient.Name,
			Quantity: ingredient.Amount,
			Unit:     ingredient.Unit,
		})
	}
	return recipe
}
