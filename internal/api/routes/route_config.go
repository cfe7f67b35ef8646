package routes

import (
	"pantrypilot-backend/internal/api/handlers"
	"pantrypilot-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	ReceiptHandler   handlers.ReceiptHandler
	InventoryHandler handlers.InventoryHandler
	RecipeHandler    handlers.RecipeHandler
	Middleware       middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Receipts()
	c.Inventory()
	c.Recipes()
	c.Lookups()
	c.GuestRoute()
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/receipts")
	{
		receipts.Post("/analyze", c.ReceiptHandler.AnalyzeReceipt)
		receipts.Post("/items", c.ReceiptHandler.SaveReceiptItems)
		receipts.Get("/items", c.ReceiptHandler.GetReceiptItems)

		receipts.Post("", c.ReceiptHandler.CreateReceipt)
		receipts.Get("", c.ReceiptHandler.GetReceipts)
		receipts.Get("/:id", c.ReceiptHandler.GetReceiptDetail)
		receipts.Delete("/:id", c.ReceiptHandler.DeleteReceipt)

		receipts.Post("/:id/inventory", c.InventoryHandler.AddReceiptItemsToInventory)
	}
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/inventory")
	{
		inventory.Get("/stats", c.InventoryHandler.GetInventoryStats)
		inventory.Post("", c.InventoryHandler.AddInventoryItem)
		inventory.Get("", c.InventoryHandler.GetInventoryItems)
		inventory.Get("/:id", c.InventoryHandler.GetInventoryItemDetails)
		inventory.Put("/:id", c.InventoryHandler.UpdateInventoryItem)
		inventory.Delete("/:id", c.InventoryHandler.RemoveInventoryItem)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Get("/search", c.RecipeHandler.SearchRecipes)
		recipes.Get("/random", c.RecipeHandler.GetRandomRecipes)
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	}
}

func (c *Config) Lookups() {
	c.App.Get("/api/meal-types", c.RecipeHandler.GetMealTypes)
	c.App.Get("/api/dietary-preferences", c.RecipeHandler.GetDietaryPreferences)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
