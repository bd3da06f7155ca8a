package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/MhMunna12/kutumbari-restaurant-server/internal/models"
	"github.com/MhMunna12/kutumbari-restaurant-server/pkg/db"
)

type Config struct {
	DB_HOST             string
	DB_PORT             string
	DB_USER             string
	DB_PASSWORD         string
	DB_NAME             string
	ES_URL              string
	ES_USER             string
	ES_PASSWORD         string
	ACCESS_TOKEN_SECRET string
	STRIPE_SECRET_KEY   string
	KAFKA_ADDRESS       string
	LOG_LEVEL           string
	PORT                string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		DB_HOST:             os.Getenv("DB_HOST"),
		DB_PORT:             os.Getenv("DB_PORT"),
		DB_USER:             os.Getenv("DB_USER"),
		DB_PASSWORD:         os.Getenv("DB_PASSWORD"),
		DB_NAME:             os.Getenv("DB_NAME"),
		ES_URL:              os.Getenv("ES_URL"),
		ES_USER:             os.Getenv("ES_USER"),
		ES_PASSWORD:         os.Getenv("ES_PASSWORD"),
		ACCESS_TOKEN_SECRET: os.Getenv("ACCESS_TOKEN_SECRET"),
		STRIPE_SECRET_KEY:   os.Getenv("STRIPE_SECRET_KEY"),
		KAFKA_ADDRESS:       os.Getenv("KAFKA_ADDRESS"),
		LOG_LEVEL:           os.Getenv("LOG_LEVEL"),
		PORT:                os.Getenv("PORT"),
	}

	if config.PORT == "" {
		config.PORT = "5000"
	}

	return config, nil
}

func (c *Config) Addr() string {
	return ":" + c.PORT
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DB_USER, c.DB_PASSWORD, c.DB_HOST, c.DB_PORT, c.DB_NAME,
	)
}

func InitDB(c *Config) (*gorm.DB, error) {
	conn, err := db.Open(c.DSN())
	if err != nil {
		return nil, err
	}
	if err := conn.AutoMigrate(
		&models.MenuItem{},
		&models.User{},
		&models.Review{},
		&models.CartEntry{},
		&models.Payment{},
		&models.PaymentItem{},
	); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return conn, nil
}
