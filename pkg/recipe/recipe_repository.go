package recipe

import (
	"context"
	"errors"

	"pantrypilot-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		GetMealTypes(ctx context.Context) ([]*entities.MealType, error)
		GetDietaryPreferences(ctx context.Context) ([]*entities.DietaryPreference, error)
		GetOrCreateMealType(ctx context.Context, name string) (*entities.MealType, error)
		GetOrCreateDietaryPreference(ctx context.Context, name string) (*entities.DietaryPreference, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe writes the recipe together with its ingredients and dietary
// junction rows in one transaction.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ingredients := recipe.Ingredients
		restrictions := recipe.DietaryRestrictions
		recipe.Ingredients = nil
		recipe.DietaryRestrictions = nil

		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for _, ingredient := range ingredients {
			ingredient.RecipeID = recipe.ID
			if err := tx.Create(ingredient).Error; err != nil {
				return err
			}
		}
		for _, restriction := range restrictions {
			restriction.RecipeID = recipe.ID
			if err := tx.Create(restriction).Error; err != nil {
				return err
			}
		}

		recipe.Ingredients = ingredients
		recipe.DietaryRestrictions = restrictions
		return nil
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("DietaryRestrictions.DietaryPreference").
		Preload("MealType").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("MealType").
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetMealTypes(ctx context.Context) ([]*entities.MealType, error) {
	var mealTypes []*entities.MealType
	if err := r.db.WithContext(ctx).Order("name asc").Find(&mealTypes).Error; err != nil {
		return nil, err
	}
	return mealTypes, nil
}

func (r *recipeRepository) GetDietaryPreferences(ctx context.Context) ([]*entities.DietaryPreference, error) {
	var preferences []*entities.DietaryPreference
	if err := r.db.WithContext(ctx).Order("name asc").Find(&preferences).Error; err != nil {
		return nil, err
	}
	return preferences, nil
}

func (r *recipeRepository) GetOrCreateMealType(ctx context.Context, name string) (*entities.MealType, error) {
	var mealType entities.MealType
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&mealType).Error
	if err == nil {
		return &mealType, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	mealType = entities.MealType{ID: uuid.New(), Name: name}
	if err := r.db.WithContext(ctx).Create(&mealType).Error; err != nil {
		return nil, err
	}
	return &mealType, nil
}

func (r *recipeRepository) GetOrCreateDietaryPreference(ctx context.Context, name string) (*entities.DietaryPreference, error) {
	var preference entities.DietaryPreference
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&preference).Error
	if err == nil {
		return &preference, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	preference = entities.DietaryPreference{ID: uuid.New(), Name: name}
	if err := r.db.WithContext(ctx).Create(&preference).Error; err != nil {
		return nil, err
	}
	return &preference, nil
}
