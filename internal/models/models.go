package models

import "time"

// ==========================================
// INVENTORY & RECIPES
// ==========================================

// MaxIngredientUnits is the ceiling for any stored ingredient amount.
const MaxIngredientUnits = 100

// MaxRecipes caps how many recipes the catalog may hold at once.
const MaxRecipes = 3

type Ingredient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;unique" json:"name"`
	Amount    int       `gorm:"not null;default:0" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Recipe struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	Name        string             `gorm:"not null;unique" json:"name"`
	Price       int                `gorm:"not null" json:"price"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// RecipeIngredient is one ingredient requirement of a recipe. It is matched
// against the inventory by name when an order is completed.
type RecipeIngredient struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"not null;index" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Amount   int    `gorm:"not null" json:"amount"`
}

// ==========================================
// ORDERS
// ==========================================

type OrderStatus string

const (
	OrderNotStarted OrderStatus = "NOT_STARTED"
	OrderInProgress OrderStatus = "IN_PROGRESS"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderPickedUp   OrderStatus = "PICKED_UP"
	OrderCanceled   OrderStatus = "CANCELED"
)

// Order ties a customer, a set of recipe lines and a total cost together.
// The total is fixed at placement time from the then-current recipe prices.
// Orders are never deleted; cancellation is a status.
type Order struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Status     OrderStatus   `gorm:"type:varchar(20);not null" json:"status"`
	CustomerID uint          `gorm:"not null" json:"customer_id"`
	Customer   *User         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	StaffID    *uint         `json:"staff_id,omitempty"`
	Staff      *User         `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	Items      []OrderRecipe `gorm:"foreignKey:OrderID" json:"items"`
	TotalCost  int           `gorm:"not null" json:"total_cost"`
	PlacedAt   time.Time     `json:"placed_at"`
}

// OrderRecipe is one line of an order: a recipe and how many of it were
// ordered. Listing a recipe twice at placement raises the quantity, so the
// charge and the ingredient consumption always agree.
type OrderRecipe struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderID  uint   `gorm:"not null;index" json:"-"`
	RecipeID uint   `gorm:"not null" json:"-"`
	Recipe   Recipe `gorm:"foreignKey:RecipeID" json:"recipe"`
	Quantity int    `gorm:"not null;default:1" json:"quantity"`
}

// ==========================================
// AUTH & USERS
// ==========================================

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

// Fixed credentials for the single admin account. The admin is created by a
// dedicated generate endpoint, never through signup.
const (
	AdminUsername = "singleAdmin"
	AdminPassword = "adminPass3!"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null;unique" json:"username"`

	// The tag column:password_hash maps to the password_hash column in the
	// DB; json:"-" keeps the hash out of every response body.
	Password string `gorm:"column:password_hash;not null" json:"-"`

	Role     Role `gorm:"type:varchar(20);not null" json:"role"`
	LoggedIn bool `gorm:"not null;default:false" json:"logged_in"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}
