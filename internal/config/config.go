package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	GymsCSVPath      string
	RequestsJSONPath string

	AdminPassword     string
	AdminPasswordHash string

	EmailFrom     string
	EmailFromName string
	AdminEmail    string
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPass      string
	RedisAddr     string

	InquiryRateRPS   float64
	InquiryRateBurst int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		GymsCSVPath:      getEnv("GYMS_CSV_PATH", "gyms.csv"),
		RequestsJSONPath: getEnv("REQUESTS_JSON_PATH", "subscription_requests.json"),

		AdminPassword:     getEnv("ADMIN_PASSWORD", "habitadmin2025"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		EmailFrom:     getEnv("EMAIL_FROM", "noreply@habithealth.com"),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "Habit Health"),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASS", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),

		InquiryRateRPS:   getEnvFloat("INQUIRY_RATE_RPS", 1),
		InquiryRateBurst: getEnvInt("INQUIRY_RATE_BURST", 5),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
