package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	AppPort          string
)

// LoadEnv reads .env when present, otherwise relies on the process environment
// (container platforms inject config that way).
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] no .env file found, using system environment")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	AppPort = GetEnv("APP_PORT", "8080")

	if JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET is not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
