package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Port returns the HTTP listen port
func Port() string {
	return GetEnv("PORT", "8080")
}

// RedisAddr returns the address of the redis instance backing the artwork cache
func RedisAddr() string {
	return GetEnv("REDIS_ADDR", "localhost:6379")
}

// RedisPassword returns the password for the artwork cache redis instance
func RedisPassword() string {
	return GetEnv("REDIS_PASSWORD", "")
}

// ArticAPIURL returns the base URL of the Art Institute of Chicago API. An
// empty value lets the catalog client fall back to the public endpoint.
func ArticAPIURL() string {
	return GetEnv("ARTIC_API_URL", "")
}
