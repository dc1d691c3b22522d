package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/tylersemel/CoffeeMaker/internal/models"
)

// IngredientRequest defines the structure for adding an inventory ingredient
type IngredientRequest struct {
	Name   string `json:"name" validate:"required"`
	Amount int    `json:"amount"`
}

// RestockRequest defines the structure for adding units to an ingredient
type RestockRequest struct {
	Amount int `json:"amount"`
}

// GetInventory handles fetching the full inventory
func GetInventory(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.Ingredient
		if err := db.Order("name").Find(&items).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch inventory"})
		}
		return c.JSON(items)
	}
}

// GetIngredient handles fetching a single ingredient by name
func GetIngredient(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		var item models.Ingredient
		if err := db.Where("name = ?", name).First(&item).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No ingredient found with name " + name,
			})
		}
		return c.JSON(item)
	}
}

// AddIngredient handles adding a new ingredient to the inventory. The initial
// amount must be within (0,100] and the name must not collide with an
// existing ingredient, case-insensitively.
func AddIngredient(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req IngredientRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		if req.Amount <= 0 || req.Amount > models.MaxIngredientUnits {
			return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{
				"message": "Unable to add ingredient with invalid units",
			})
		}

		var existing models.Ingredient
		if err := db.Where("LOWER(name) = LOWER(?)", req.Name).First(&existing).Error; err == nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Unable to add ingredient with duplicate name",
			})
		}

		item := models.Ingredient{Name: req.Name, Amount: req.Amount}
		if err := db.Create(&item).Error; err != nil {
			log.Printf("Error creating ingredient: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create ingredient"})
		}

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// RestockIngredient handles adding units to an existing ingredient. The
// delta must be within [0,100] and the resulting amount may not exceed 100;
// an overflowing restock is rejected without mutating the stored amount.
func RestockIngredient(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		var req RestockRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		if req.Amount < 0 || req.Amount > models.MaxIngredientUnits {
			return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{
				"message": "Units of ingredient must be a positive integer no greater than 100",
			})
		}

		var item models.Ingredient
		if err := db.Where("name = ?", name).First(&item).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No ingredient found with name " + name,
			})
		}

		if item.Amount+req.Amount > models.MaxIngredientUnits {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Ingredient amount cannot exceed 100 units",
			})
		}

		item.Amount += req.Amount
		if err := db.Save(&item).Error; err != nil {
			log.Printf("Error updating ingredient: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update ingredient"})
		}

		return c.JSON(item)
	}
}

// DeleteIngredient handles removing an ingredient from the inventory. An
// ingredient still referenced by a recipe cannot be removed.
func DeleteIngredient(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		var item models.Ingredient
		if err := db.Where("name = ?", name).First(&item).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No ingredient found with name " + name,
			})
		}

		var recipes []models.Recipe
		if err := db.Preload("Ingredients").Find(&recipes).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch recipes"})
		}
		for _, recipe := range recipes {
			if recipe.ContainsIngredient(name) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"message": "Cannot delete ingredient, it is required by recipe " + recipe.Name,
				})
			}
		}

		if err := db.Delete(&item).Error; err != nil {
			log.Printf("Error deleting ingredient: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete ingredient"})
		}

		return c.JSON(fiber.Map{"message": name + " was deleted successfully"})
	}
}
