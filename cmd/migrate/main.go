package main

import (
	"context"
	"log"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"healthvault/internal/config"
	"healthvault/internal/database"
	"healthvault/internal/database/migration"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}
