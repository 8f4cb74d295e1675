package config

import (
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	StaticDir      string
	AllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Port:           getenv("PORT", "8080"),
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "exercise-track"),
		StaticDir:      getenv("STATIC_DIR", "web"),
		AllowedOrigins: strings.Split(getenv("CORS_ALLOWED_ORIGINS", "*"), ","),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
