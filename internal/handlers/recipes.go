package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tylersemel/CoffeeMaker/internal/models"
)

// RecipeRequest defines the structure for creating/updating a recipe
type RecipeRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       int    `json:"price"`
	Ingredients []struct {
		Name   string `json:"name"`
		Amount int    `json:"amount"`
	} `json:"ingredients"`
}

func (r *RecipeRequest) toIngredients() []models.RecipeIngredient {
	ingredients := make([]models.RecipeIngredient, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ingredients = append(ingredients, models.RecipeIngredient{Name: i.Name, Amount: i.Amount})
	}
	return ingredients
}

func (r *RecipeRequest) validate() string {
	if r.Price < 0 {
		return "Recipe price must not be negative"
	}
	if len(r.Ingredients) == 0 {
		return "Recipe must have at least one ingredient"
	}
	for _, i := range r.Ingredients {
		if i.Amount < 1 {
			return "Ingredient amounts must be positive"
		}
	}
	return ""
}

// GetRecipes handles fetching all recipes with their ingredients
func GetRecipes(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var recipes []models.Recipe
		if err := db.Preload("Ingredients").Find(&recipes).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch recipes"})
		}
		return c.JSON(recipes)
	}
}

// GetRecipe handles fetching a single recipe by name
func GetRecipe(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		var recipe models.Recipe
		if err := db.Preload("Ingredients").Where("name = ?", name).First(&recipe).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No recipe found with name " + name,
			})
		}
		return c.JSON(recipe)
	}
}

// CreateRecipe handles creating a new recipe. The catalog holds at most
// three recipes; a fourth is rejected with 507.
func CreateRecipe(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RecipeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		if msg := req.validate(); msg != "" {
			return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{"message": msg})
		}

		var existing models.Recipe
		if err := db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Recipe with the name " + req.Name + " already exists",
			})
		}

		var count int64
		db.Model(&models.Recipe{}).Count(&count)
		if count >= models.MaxRecipes {
			return c.Status(fiber.StatusInsufficientStorage).JSON(fiber.Map{
				"message": "Insufficient space in recipe book for recipe " + req.Name,
			})
		}

		recipe := models.Recipe{
			Name:        req.Name,
			Price:       req.Price,
			Ingredients: req.toIngredients(),
		}
		if err := db.Create(&recipe).Error; err != nil {
			log.Printf("Error creating recipe: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create recipe"})
		}

		return c.Status(fiber.StatusCreated).JSON(recipe)
	}
}

// UpdateRecipe handles updating a recipe by merging its ingredient list with
// the new definition: ingredients present in both keep their row and take the
// new amount, new ones are added, and dropped ones are deleted.
func UpdateRecipe(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		var req RecipeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		if msg := req.validate(); msg != "" {
			return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{"message": msg})
		}

		var recipe models.Recipe
		if err := db.Preload("Ingredients").Where("name = ?", name).First(&recipe).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Recipe with the name " + name + " does not exist",
			})
		}

		// A rename must not collide with another recipe.
		var other models.Recipe
		if err := db.Where("name = ? AND id != ?", req.Name, recipe.ID).First(&other).Error; err == nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Recipe with the name " + req.Name + " already exists",
			})
		}

		merged, removed := models.MergeIngredients(recipe.Ingredients, req.toIngredients())

		err := db.Transaction(func(tx *gorm.DB) error {
			for _, dropped := range removed {
				if err := tx.Delete(&models.RecipeIngredient{}, dropped.ID).Error; err != nil {
					return err
				}
			}
			for i := range merged {
				merged[i].RecipeID = recipe.ID
				if err := tx.Save(&merged[i]).Error; err != nil {
					return err
				}
			}
			// recipe still carries the preloaded ingredient rows; without the
			// omit, gorm would upsert them and resurrect the deleted ones.
			return tx.Model(&recipe).Omit(clause.Associations).Updates(map[string]interface{}{
				"name":  req.Name,
				"price": req.Price,
			}).Error
		})
		if err != nil {
			log.Printf("Error updating recipe: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update recipe"})
		}

		return c.JSON(fiber.Map{"message": "Recipe successfully updated"})
	}
}

// DeleteRecipe handles deleting a recipe and its ingredient requirements
func DeleteRecipe(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		var recipe models.Recipe
		if err := db.Where("name = ?", name).First(&recipe).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No recipe found for name " + name,
			})
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
				return err
			}
			return tx.Delete(&recipe).Error
		})
		if err != nil {
			log.Printf("Error deleting recipe: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete recipe"})
		}

		return c.JSON(fiber.Map{"message": name + " was deleted successfully"})
	}
}
