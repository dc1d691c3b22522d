package database

import (
	"fmt"
	"log"
	"os"

	"github.com/tylersemel/CoffeeMaker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the PostgreSQL connection described by the DB_* environment
// variables and stores the handle in DB.
func Connect() {
	host := envOr("DB_HOST", "localhost")
	user := envOr("DB_USER", "coffeemaker")
	password := os.Getenv("DB_PASSWORD")
	dbname := envOr("DB_NAME", "coffeemaker")
	port := envOr("DB_PORT", "5432")
	sslmode := envOr("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database. \nError: ", err)
	}

	log.Println("Database connection successful")
	DB = db
}

// Migrate creates or updates the schema for every model. Safe to run
// repeatedly; gorm only applies what is missing.
func Migrate() {
	if DB == nil {
		Connect()
	}

	log.Println("Running schema migrations...")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Order{},
		&models.OrderRecipe{},
	)
	if err != nil {
		log.Fatal("Schema migration failed: ", err)
	}
	log.Println("Schema migrations completed")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
