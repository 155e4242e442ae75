package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"elevator-sequence-service/internal/adapters/cache"
	"elevator-sequence-service/internal/adapters/repositories"
	"elevator-sequence-service/internal/api"
	"elevator-sequence-service/internal/platform/logger"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts
// the HTTP server.
func main() {
	log := logger.GetConfigured(zerolog.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	seedPath := getEnv("SEED_PATH", "data/seeds/passengers.json")
	port := getEnv("PORT", "8080")
	redisAddr := os.Getenv("REDIS_ADDR")

	minFloor, err := getEnvInt("MIN_FLOOR", 0)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid MIN_FLOOR")
	}
	maxFloor, err := getEnvInt("MAX_FLOOR", 30)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid MAX_FLOOR")
	}
	if minFloor >= maxFloor {
		log.Fatal().Int("min", minFloor).Int("max", maxFloor).Msg("MIN_FLOOR must be below MAX_FLOOR")
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database failed")
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal().Err(err).Msg("init and seed failed")
	}

	// Redis is optional: without it every request is recomputed, which
	// is fine for small scenarios.
	var scheduleCache *cache.RedisScheduleCache
	if redisAddr != "" {
		ttlSeconds, err := getEnvInt("CACHE_TTL_SECONDS", 3600)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid CACHE_TTL_SECONDS")
		}
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		scheduleCache = cache.NewRedisScheduleCache(client, time.Duration(ttlSeconds)*time.Second)
		log.Info().Str("addr", redisAddr).Msg("schedule cache enabled")
	}

	repo := repositories.NewSqlitePassengerRepository(db)

	var router http.Handler
	if scheduleCache != nil {
		router = api.NewRouter(repo, scheduleCache, minFloor, maxFloor)
	} else {
		router = api.NewRouter(repo, nil, minFloor, maxFloor)
	}

	log.Info().Str("addr", ":"+port).Msg("server listening")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	return n, nil
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
