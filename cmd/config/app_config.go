package config

import (
	"os"
	"time"

	"pantrypilot-backend/internal/api/handlers"
	"pantrypilot-backend/internal/api/routes"
	"pantrypilot-backend/internal/middleware"
	"pantrypilot-backend/internal/utils"
	"pantrypilot-backend/internal/utils/imagesearch"
	"pantrypilot-backend/internal/utils/storage"
	"pantrypilot-backend/pkg/extraction"
	"pantrypilot-backend/pkg/inventory"
	"pantrypilot-backend/pkg/receipt"
	"pantrypilot-backend/pkg/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, zapLogger *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	utils.WarnMissingKeys(zapLogger)

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	extractor := extraction.NewGeminiExtractor(zapLogger)
	searchClient := recipe.NewSearchClient()
	imageSearch := imagesearch.NewImageSearch(zapLogger)

	// Repository
	receiptRepository := receipt.NewReceiptRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	receiptService := receipt.NewReceiptService(receiptRepository, extractor, s3, zapLogger)
	inventoryService := inventory.NewInventoryService(inventoryRepository, receiptRepository, zapLogger)
	recipeService := recipe.NewRecipeService(
		recipeRepository,
		inventoryRepository,
		searchClient,
		imageSearch,
		zapLogger,
	)

	// Handler
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		ReceiptHandler:   receiptHandler,
		InventoryHandler: inventoryHandler,
		RecipeHandler:    recipeHandler,
		Middleware:       middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
