// Applies pending database migrations and exits. The server also runs
// migrations on startup; this command exists for deploy pipelines that
// migrate before rolling out.
package main

import (
	"context"
	"os"

	"taskboard/internal/db"
	"taskboard/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	if err := db.Migrate(context.Background(), dsn); err != nil {
		logger.Fatal("migrations failed", "error", err)
	}

	logger.Info("migrations applied")
}
