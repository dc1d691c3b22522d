package handlers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/tylersemel/CoffeeMaker/internal/models"
)

var errInsufficientStock = errors.New("insufficient stock")

// PlaceOrderRequest defines the structure for placing an order. Recipes are
// referenced by name; listing a recipe twice raises its line quantity to two.
type PlaceOrderRequest struct {
	Recipes []string `json:"recipes" validate:"required"`
}

// findOrder loads the order named by the :id route param. When the order
// cannot be loaded it writes the error response and reports ok=false.
func findOrder(db *gorm.DB, c *fiber.Ctx) (order models.Order, ok bool) {
	id, err := c.ParamsInt("id")
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid order ID"})
		return order, false
	}

	if err := db.Preload("Items.Recipe.Ingredients").First(&order, id).Error; err != nil {
		_ = c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No order could be found"})
		return order, false
	}
	return order, true
}

// GetOrders handles fetching all orders
func GetOrders(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orders []models.Order
		if err := db.Preload("Items.Recipe").Find(&orders).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch orders"})
		}
		return c.JSON(orders)
	}
}

// GetOrder handles fetching a single order by id
func GetOrder(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		order, ok := findOrder(db, c)
		if !ok {
			return nil
		}
		return c.JSON(order)
	}
}

// GetOrdersByCustomer handles fetching all orders placed by one customer
func GetOrdersByCustomer(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		var customer models.User
		if err := db.Where("username = ? AND role = ?", name, models.RoleCustomer).First(&customer).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No customer found with the username " + name,
			})
		}

		var orders []models.Order
		if err := db.Preload("Items.Recipe").Where("customer_id = ?", customer.ID).Find(&orders).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch orders"})
		}
		return c.JSON(orders)
	}
}

// PlaceOrder handles a customer placing an order. The total cost is computed
// from the referenced recipe prices at placement time and never recomputed.
func PlaceOrder(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		var customer models.User
		if err := db.Where("username = ? AND role = ?", name, models.RoleCustomer).First(&customer).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "The customer does not exist",
			})
		}

		var req PlaceOrderRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}
		if len(req.Recipes) == 0 {
			return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{"message": "Order must contain at least one recipe"})
		}

		items := make([]models.OrderRecipe, 0, len(req.Recipes))
		lineFor := make(map[string]int, len(req.Recipes))
		for _, recipeName := range req.Recipes {
			if at, ok := lineFor[recipeName]; ok {
				items[at].Quantity++
				continue
			}

			var recipe models.Recipe
			if err := db.Preload("Ingredients").Where("name = ?", recipeName).First(&recipe).Error; err != nil {
				return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{
					"message": "No recipe found with name " + recipeName,
				})
			}
			lineFor[recipeName] = len(items)
			items = append(items, models.OrderRecipe{RecipeID: recipe.ID, Recipe: recipe, Quantity: 1})
		}

		order := models.Order{
			Status:     models.OrderNotStarted,
			CustomerID: customer.ID,
			Items:      items,
			TotalCost:  models.TotalCost(items),
			PlacedAt:   time.Now(),
		}
		if err := db.Create(&order).Error; err != nil {
			log.Printf("Error creating order: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to place order"})
		}

		return c.Status(fiber.StatusCreated).JSON(order)
	}
}

// SetInProgress handles a staff member picking up an order for preparation
func SetInProgress(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		order, ok := findOrder(db, c)
		if !ok {
			return nil
		}

		staffName := c.Params("staff")
		var staff models.User
		if err := db.Where("username = ? AND role = ?", staffName, models.RoleStaff).First(&staff).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "The staff does not exist",
			})
		}

		update := map[string]interface{}{"staff_id": staff.ID, "status": models.OrderInProgress}
		if err := db.Model(&order).Updates(update).Error; err != nil {
			log.Printf("Error updating order: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update order"})
		}
		order.StaffID = &staff.ID
		order.Status = models.OrderInProgress
		return c.JSON(order)
	}
}

// CompleteOrder handles payment and preparation of an order. The payment must
// cover the total cost and the inventory must cover every recipe in the
// order; the sufficiency check and the decrements run inside one database
// transaction so a concurrent completion cannot overdraw the stock. Nothing
// is mutated when either check fails.
func CompleteOrder(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		order, ok := findOrder(db, c)
		if !ok {
			return nil
		}

		amountPaid, err := strconv.Atoi(c.Params("amount"))
		if err != nil {
			return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{"message": "Invalid payment value"})
		}

		change := amountPaid - order.TotalCost
		if change < 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Not enough money paid"})
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			for ingredientName, needed := range models.Requirements(order.Items) {
				// The guarded UPDATE only fires while the stock still covers
				// the requirement, so two racing completions cannot both
				// drain the same units.
				result := tx.Model(&models.Ingredient{}).
					Where("name = ? AND amount >= ?", ingredientName, needed).
					Update("amount", gorm.Expr("amount - ?", needed))
				if result.Error != nil {
					return result.Error
				}
				if result.RowsAffected == 0 {
					return errInsufficientStock
				}
			}
			return tx.Model(&order).Update("status", models.OrderCompleted).Error
		})
		if err != nil {
			if errors.Is(err, errInsufficientStock) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Not enough inventory"})
			}
			log.Printf("Error completing order: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to complete order"})
		}

		order.Status = models.OrderCompleted
		return c.JSON(fiber.Map{"change": change, "order": order})
	}
}

// PickupOrder handles a customer picking up a prepared order
func PickupOrder(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return setStatus(db, c, models.OrderPickedUp)
	}
}

// CancelOrder handles canceling an order. The order stays on record with the
// CANCELED status.
func CancelOrder(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return setStatus(db, c, models.OrderCanceled)
	}
}

func setStatus(db *gorm.DB, c *fiber.Ctx, status models.OrderStatus) error {
	order, ok := findOrder(db, c)
	if !ok {
		return nil
	}

	if err := db.Model(&order).Update("status", status).Error; err != nil {
		log.Printf("Error updating order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update order"})
	}
	order.Status = status
	return c.JSON(order)
}
