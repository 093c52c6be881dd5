package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// load the environment variables
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
