package main

import (
	"database/sql"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"elevator-sequence-service/internal/adapters/repositories"
	"elevator-sequence-service/internal/config"
	"elevator-sequence-service/internal/platform/db"
	"elevator-sequence-service/internal/platform/logger"
)

func main() {
	log := logger.GetConfigured(zerolog.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database failed")
	}
	defer db.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/passengers.json")
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal().Err(err).Msg("init and seed failed")
	}
}

func initAndSeed(db *sql.DB, seedPath string) error {
	log := logger.Get()

	log.Info().Msg("initializing database schema")
	if err := repositories.InitSchema(db); err != nil {
		return err
	}
	log.Info().Msg("schema ready")

	log.Info().Str("path", seedPath).Msg("seeding database")
	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return err
	}
	log.Info().Msg("seeding complete")

	return nil
}
