package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/farellandr/fyyur/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables always win.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	if err := server.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
