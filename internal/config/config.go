package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string

	// FontPath points at a CJK-capable TTF/OTF/TTC used by the image export.
	FontPath string

	GenaiAPIKey     string
	GenaiModel      string
	GenaiTimeout    time.Duration
	AttendanceLimit int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "supervision")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "supervision")
	ServerPort = getEnv("SERVER_PORT", "8080")

	FontPath = getEnv("FONT_PATH", "")

	GenaiAPIKey = getEnv("GENAI_API_KEY", "")
	GenaiModel = getEnv("GENAI_MODEL", "gemini-2.0-flash")
	GenaiTimeout = getDurationEnv("GENAI_TIMEOUT", 20*time.Second)
	AttendanceLimit = getIntEnv("ATTENDANCE_LIMIT", 200)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
