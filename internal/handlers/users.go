package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/tylersemel/CoffeeMaker/internal/models"
)

// UserResponse defines the structure for user data sent to the client
type UserResponse struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	LoggedIn bool        `json:"logged_in"`
}

func toUserResponses(users []models.User) []UserResponse {
	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
			LoggedIn: user.LoggedIn,
		})
	}
	return response
}

// GetCustomers handles fetching all customer accounts
func GetCustomers(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := db.Where("role = ?", models.RoleCustomer).Find(&users).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch customers"})
		}
		return c.JSON(toUserResponses(users))
	}
}

// GetStaff handles fetching all staff accounts
func GetStaff(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := db.Where("role = ?", models.RoleStaff).Find(&users).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch staff"})
		}
		return c.JSON(toUserResponses(users))
	}
}

// GetUser handles fetching a single account by username
func GetUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		var user models.User
		if err := db.Where("username = ?", name).First(&user).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No user found with the username " + name,
			})
		}

		return c.JSON(UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
			LoggedIn: user.LoggedIn,
		})
	}
}

// DeleteUser handles deleting an account by id
func DeleteUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user ID"})
		}

		result := db.Delete(&models.User{}, id)
		if result.Error != nil || result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found or could not be deleted"})
		}

		return c.JSON(fiber.Map{"message": "User deleted successfully"})
	}
}
