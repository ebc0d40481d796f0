package main

import (
	"log"

	"github.com/joho/godotenv"

	"totl_backend/internal/app"
)

func main() {
	// Optional in production; local runs keep settings in .env.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
