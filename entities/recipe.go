package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Instructions    string     `json:"instructions" gorm:"type:text"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	CookTimeMinutes int        `json:"cook_time_minutes"`
	Servings        int        `json:"servings"`
	Calories        int        `json:"calories,omitempty"`
	ImageURL        string     `json:"image_url,omitempty"`
	SourceURL       string     `json:"source_url,omitempty"`
	MealTypeID      *uuid.UUID `json:"meal_type_id,omitempty"`

	MealType            *MealType                   `gorm:"foreignKey:MealTypeID"`
	Ingredients         []*RecipeIngredient         `gorm:"foreignKey:RecipeID"`
	DietaryRestrictions []*RecipeDietaryRestriction `gorm:"foreignKey:RecipeID"`
	Timestamp
}

type RecipeIngredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	Name     string    `json:"name"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit,omitempty"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}

// RecipeDietaryRestriction is the junction between recipes and the dietary
// preferences they satisfy.
type RecipeDietaryRestriction struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID            uuid.UUID `json:"recipe_id"`
	DietaryPreferenceID uuid.UUID `json:"dietary_preference_id"`

	Recipe            *Recipe            `gorm:"foreignKey:RecipeID"`
	DietaryPreference *DietaryPreference `gorm:"foreignKey:DietaryPreferenceID"`
	Timestamp
}

type MealType struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `json:"name"`

	Timestamp
}

type DietaryPreference struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `json:"name"`

	Timestamp
}
