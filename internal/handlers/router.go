package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/tylersemel/CoffeeMaker/internal/middleware"
	"github.com/tylersemel/CoffeeMaker/internal/models"
)

// SetupRoutes registers the full API surface under /api/v1.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authHandler := NewAuthHandler(db)

	api := app.Group("/api/v1")

	// === PUBLIC ROUTES ===
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "Running", "message": "API Ready"})
	})
	api.Post("/customers", authHandler.SignUpCustomer)
	api.Post("/login", authHandler.Login)
	api.Post("/admin/generate", authHandler.GenerateAdmin)

	// === PROTECTED ROUTES (JWT) ===
	api.Use(middleware.JWTProtected())

	api.Post("/logout", authHandler.Logout)
	api.Get("/me", authHandler.GetProfile)

	staffOrAdmin := middleware.RoleProtected(models.RoleStaff, models.RoleAdmin)
	adminOnly := middleware.RoleProtected(models.RoleAdmin)
	customerOnly := middleware.RoleProtected(models.RoleCustomer)

	// User management
	api.Post("/staff", adminOnly, authHandler.RegisterStaff)
	api.Get("/staff", staffOrAdmin, GetStaff(db))
	api.Get("/customers", staffOrAdmin, GetCustomers(db))
	api.Get("/users/:name", GetUser(db))
	api.Delete("/users/:id", adminOnly, DeleteUser(db))

	// Inventory
	inventory := api.Group("/inventory")
	inventory.Get("", GetInventory(db))
	inventory.Get("/:name", GetIngredient(db))
	inventory.Post("", staffOrAdmin, AddIngredient(db))
	inventory.Put("/:name", staffOrAdmin, RestockIngredient(db))
	inventory.Delete("/:name", staffOrAdmin, DeleteIngredient(db))

	// Recipes
	recipes := api.Group("/recipes")
	recipes.Get("", GetRecipes(db))
	recipes.Get("/:name", GetRecipe(db))
	recipes.Post("", staffOrAdmin, CreateRecipe(db))
	recipes.Put("/:name", staffOrAdmin, UpdateRecipe(db))
	recipes.Delete("/:name", staffOrAdmin, DeleteRecipe(db))

	// Orders
	orders := api.Group("/orders")
	orders.Get("", GetOrders(db))
	orders.Get("/customer/:name", GetOrdersByCustomer(db))
	orders.Get("/:id", GetOrder(db))
	orders.Post("/place/:name", customerOnly, PlaceOrder(db))
	orders.Put("/:id/in-progress/:staff", staffOrAdmin, SetInProgress(db))
	orders.Put("/:id/complete/:amount", staffOrAdmin, CompleteOrder(db))
	orders.Put("/:id/pickup", customerOnly, PickupOrder(db))
	orders.Put("/:id/cancel", CancelOrder(db))
}
