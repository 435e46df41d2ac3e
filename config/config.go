package config

import (
	"fmt"
	"os"
)

type Config struct {
	DatabaseURL      string
	Port             string
	SendGridAPIKey   string
	WelcomeEmailFrom string
}

func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		Port:             os.Getenv("PORT"),
		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		WelcomeEmailFrom: os.Getenv("WELCOME_EMAIL_FROM"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL environment variable not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}
