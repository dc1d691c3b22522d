package main

import (
	"log"
	"os"

	"github.com/tylersemel/CoffeeMaker/internal/database"
	"github.com/tylersemel/CoffeeMaker/internal/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment")
	}

	database.Connect()

	app := fiber.New()
	app.Use(logger.New())

	handlers.SetupRoutes(app, database.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server listening on port :" + port)
	log.Fatal(app.Listen(":" + port))
}
