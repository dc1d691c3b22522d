package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/tylersemel/CoffeeMaker/internal/middleware"
	"github.com/tylersemel/CoffeeMaker/internal/models"
)

type AuthHandler struct {
	DB *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db}
}

// SignUpRequest represents the request body for account signup
type SignUpRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignUpCustomer handles customer self-signup
func (h *AuthHandler) SignUpCustomer(c *fiber.Ctx) error {
	return h.signUp(c, models.RoleCustomer)
}

// RegisterStaff handles staff signup. The route is admin-only; the admin is
// the only user allowed to provision staff accounts.
func (h *AuthHandler) RegisterStaff(c *fiber.Ctx) error {
	return h.signUp(c, models.RoleStaff)
}

func (h *AuthHandler) signUp(c *fiber.Ctx, role models.Role) error {
	var req SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if !models.ValidUsername(req.Username) {
		return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{
			"message": "Username must be 6-20 characters of letters and digits only",
		})
	}
	if !models.ValidPassword(req.Password) {
		return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{
			"message": "Password must be 6-20 characters with at least one letter, one digit and one of '!' or '?'",
		})
	}

	// Usernames collide across every role, exact match.
	var existing models.User
	if err := h.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "User with the name " + req.Username + " already exists",
		})
	}

	hashedPassword, err := middleware.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error processing request"})
	}

	user := models.User{
		Username: req.Username,
		Password: hashedPassword,
		Role:     role,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating user"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": user.Username + " was successfully created",
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// GenerateAdmin creates the single admin account with its fixed credentials.
// There can only ever be one admin in the system.
func (h *AuthHandler) GenerateAdmin(c *fiber.Ctx) error {
	var count int64
	h.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count != 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "There can only be one admin in the system",
		})
	}

	hashedPassword, err := middleware.HashPassword(models.AdminPassword)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error processing request"})
	}

	admin := models.User{
		Username: models.AdminUsername,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}
	if err := h.DB.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating admin"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": admin.Username + " was successfully created",
	})
}

// Login handles login for every role. A user who is already logged in cannot
// log in again until they log out.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	var user models.User
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User with the name " + req.Username + " does not exist",
			})
		}
		log.Printf("Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if user.LoggedIn {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "User with the name " + user.Username + " is already logged in",
		})
	}

	if err := middleware.CheckPassword(req.Password, user.Password); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "The wrong password was entered",
		})
	}

	user.LoggedIn = true
	if err := h.DB.Save(&user).Error; err != nil {
		log.Printf("Error saving login state: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error generating authentication token"})
	}

	return c.JSON(models.LoginResponse{Token: token, Role: user.Role})
}

// Logout logs out the authenticated user. Logging out twice is a conflict.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, _, err := middleware.GetUserFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}

	if !user.LoggedIn {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "User with the name " + user.Username + " is already logged out",
		})
	}

	user.LoggedIn = false
	if err := h.DB.Save(&user).Error; err != nil {
		log.Printf("Error saving logout state: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"message": user.Username + " was successfully logged out"})
}

// GetProfile returns the current user's profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, _, err := middleware.GetUserFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		log.Printf("Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.JSON(user)
}
