package config

import (
	"os"
)

type Config struct {
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	GinMode      string
	SecretKey    string
	ResetURLBase string
	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string
	MailSender   string
	// Optional CSV fixtures loaded into the catalog at startup.
	IngredientsCSV string
	RecipesCSV     string
}

func Load() *Config {
	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "mysql"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "sdmuser"),
		DBPassword:     getEnv("DB_PASSWORD", "sdmpassword"),
		DBName:         getEnv("DB_NAME", "sdm_server"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		SecretKey:      getEnv("SECRET_KEY", "Not_A_Good_Key_Replace_When_Deploy_To_Production"),
		ResetURLBase:   getEnv("RESET_URL_BASE", "http://localhost:3000/reset-pass"),
		MailHost:       getEnv("MAIL_SERVER", "email-smtp.us-east-1.amazonaws.com"),
		MailPort:       getEnv("MAIL_PORT", "587"),
		MailUsername:   getEnv("MAIL_USERNAME", ""),
		MailPassword:   getEnv("MAIL_PASSWORD", ""),
		MailSender:     getEnv("MAIL_SENDER", "do-not-reply@simpledrinkmaker.com"),
		IngredientsCSV: getEnv("INGREDIENTS_CSV", ""),
		RecipesCSV:     getEnv("RECIPES_CSV", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
