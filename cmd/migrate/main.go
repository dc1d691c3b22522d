package main

import (
	"log"

	"github.com/tylersemel/CoffeeMaker/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment")
	}

	database.Connect()
	database.Migrate()
}
