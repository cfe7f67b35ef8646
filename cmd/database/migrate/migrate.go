package migration

import (
	"fmt"
	"log"

	"pantrypilot-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Receipt{}); err != nil {
		log.Fatalf("Error migrating receipt database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ReceiptItem{}); err != nil {
		log.Fatalf("Error migrating receipt item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InventoryItem{}); err != nil {
		log.Fatalf("Error migrating inventory item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealType{}); err != nil {
		log.Fatalf("Error migrating meal type database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DietaryPreference{}); err != nil {
		log.Fatalf("Error migrating dietary preference database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error migrating recipe ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeDietaryRestriction{}); err != nil {
		log.Fatalf("Error migrating recipe dietary restriction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
