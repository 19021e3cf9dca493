package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr  string
	JWTSecret string

	// Default CSV path for save/load when the client doesn't supply one.
	DataPath string

	// Default at-risk threshold for new sessions.
	ThresholdDays int

	// Optional analytics event DB. Empty host disables the sink.
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
}

func Load() *Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "SUPER_SECRET_KEY_CHANGE_ME" // dev fallback
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "data/tasks.csv"
	}

	threshold, err := strconv.Atoi(os.Getenv("INACTIVITY_THRESHOLD_DAYS"))
	if err != nil || threshold <= 0 {
		threshold = 3 // fallback
	}

	port, err := strconv.Atoi(os.Getenv("DB_PORT"))
	if err != nil {
		port = 5432 // fallback
	}

	return &Config{
		HTTPAddr:      addr,
		JWTSecret:     secret,
		DataPath:      dataPath,
		ThresholdDays: threshold,

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     port,
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}
}

func (c *Config) HasDB() bool {
	return c.DBHost != "" && c.DBName != ""
}

func (c *Config) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
