package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/penwyp/go-course-roadmap/commands"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// cobra has already printed the error
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
