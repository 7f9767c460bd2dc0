package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"pod/cmd"
	"pod/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := cmd.OpenPostgres(config)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}

	admin, err := cmd.SeedAdmin(context.Background(), db, config.SeedAdminPassword, kernel.SystemClock{})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	slog.Info("Seeding complete", "email", admin.Email(), "role", admin.Role().String())
}
