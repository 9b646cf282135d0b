// Package config provides centralized configuration loaded from environment
// variables, with a .env file honored when present.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is populated from AFLSTATS_* environment variables.
type Config struct {
	DBPath           string // AFLSTATS_DB
	DataDir          string // AFLSTATS_DATA_DIR, import blob storage
	AllowRepublish   bool   // AFLSTATS_ALLOW_REPUBLISH, re-running publish on a PUBLISHED match
	LeaderboardLimit int    // AFLSTATS_LEADERBOARD_LIMIT
}

// Load reads .env (if any) and the environment.
func Load() *Config {
	_ = godotenv.Load(".env")

	home := userHome()
	return &Config{
		DBPath:           getEnv("AFLSTATS_DB", filepath.Join(home, ".aflstats", "aflstats.db")),
		DataDir:          getEnv("AFLSTATS_DATA_DIR", filepath.Join(home, ".aflstats", "imports")),
		AllowRepublish:   getEnvBool("AFLSTATS_ALLOW_REPUBLISH", false),
		LeaderboardLimit: getEnvInt("AFLSTATS_LEADERBOARD_LIMIT", 20),
	}
}

func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
