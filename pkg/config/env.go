// Env loader
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	DBHost          string
	DBPort          string
	DBName          string
	DBUser          string
	DBPassword      string
	DBSchema        string
	Locale          string
	VerseAPIBaseURL string
	NotifyHour      int
	NotifyRepeat    bool
	NotifyChannel   string
	DailyCronSpec   string
	PushoverToken   string
	PushoverUser    string
	SmtpFrom        string
	SmtpTo          string
	SmtpPassword    string
	SmtpHost        string
	SmtpPort        string
	APIKey          string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_DATABASE", "daily_verse"),
		DBUser:          getEnv("DB_USERNAME", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBSchema:        getEnv("DB_SCHEMA", "public"),
		Locale:          getEnv("LOCALE", "en"),
		VerseAPIBaseURL: getEnv("VERSE_API_BASE_URL", "https://bible-api.com"),
		NotifyHour:      getEnvInt("NOTIFY_HOUR", 10),
		NotifyRepeat:    getEnvBool("NOTIFY_REPEAT", false),
		NotifyChannel:   getEnv("NOTIFY_CHANNEL", "log"),
		DailyCronSpec:   getEnv("DAILY_CRON_SPEC", "5 0 * * *"),
		PushoverToken:   getEnv("PUSHOVER_TOKEN", ""),
		PushoverUser:    getEnv("PUSHOVER_USER", ""),
		SmtpFrom:        getEnv("SMTP_FROM", ""),
		SmtpTo:          getEnv("SMTP_TO", ""),
		SmtpPassword:    getEnv("SMTP_PASSWORD", ""),
		SmtpHost:        getEnv("SMTP_HOST", "smtp.gmail.com"),
		SmtpPort:        getEnv("SMTP_PORT", "587"),
		APIKey:          getEnv("API_KEY", ""),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
