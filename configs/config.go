package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DBDriver   string
	DBSource   string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	Port      string
	UploadDir string

	StripeSecretKey     string
	StripeWebhookSecret string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, reading environment only")
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "mysql"),
		DBSource:   getEnv("DB_SOURCE", "nvrs.db"),
		DBHost:     getEnv("MYSQL_HOST", "localhost"),
		DBPort:     getEnv("MYSQL_PORT", "3306"),
		DBName:     getEnv("MYSQL_DATABASE_NAME", "nvrs"),
		DBUser:     getEnv("MYSQL_USER", "root"),
		DBPassword: os.Getenv("MYSQL_PASSWORD"),

		Port:      getEnv("PORT", "3002"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
