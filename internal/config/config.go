package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	LogLevel string
	SeedFile string
}

func getenvDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// Load reads .env when present, then the environment. Every setting has
// a default so the demo boots with no configuration at all.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return &Config{
		Addr:     getenvDefault("MARKET_ADDR", ":8080"),
		LogLevel: getenvDefault("LOG_LEVEL", "info"),
		SeedFile: getenvDefault("SEED_FILE", "seed.json"),
	}
}
