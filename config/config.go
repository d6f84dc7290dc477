package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string
	Env  string // development | production

	DBDriver string // postgres | sqlite
	DBName   string

	SessionSecret string
	JWTKey        string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),
		Env:  getEnv("APP_ENV", "development"),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBName:   getEnv("DB_NAME", "eduapi.db"),

		SessionSecret: getEnv("SESSION_SECRET", "defaultSecret"),
		JWTKey:        getEnv("JWT_SECRET_KEY", "defaultSecret"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleCallbackURL:  getEnv("CALLBACK_URL", "http://localhost:3000/auth/google/callback"),
	}

	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if !AppConfig.GoogleOAuthEnabled() {
		log.Println("Google OAuth credentials not found. OAuth features will be disabled.")
	}
}

// GoogleOAuthEnabled reports whether Google OAuth credentials are configured.
// The auth routes stay registered either way; without credentials they answer
// with a "provider unavailable" response so the rest of the API stays testable.
func (c *Config) GoogleOAuthEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// IsDevelopment reports whether raw error detail may be included in responses.
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
