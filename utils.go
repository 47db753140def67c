package main

import (
	"encoding/base64"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/pattaranan1/Twitter-Cloning/models"
	"gopkg.in/yaml.v3"
)

func LoadConfig() (models.AppConfig, error) {
	if err := godotenv.Load(".env"); err != nil {
		return models.AppConfig{}, err
	}
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return models.AppConfig{}, err
	}
	var config models.AppConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return models.AppConfig{}, err
	}

	// secrets stay in the environment , never in the yaml file
	config.Redis.Password = os.Getenv("CACHE_PASSWORD")
	config.DB.DBPassword = os.Getenv("DB_PASSWORD")

	prv64 := os.Getenv("JWT_PRIVATE_KEY")
	prvBytes, err := base64.StdEncoding.DecodeString(prv64)
	if err != nil {
		return models.AppConfig{}, errors.New("failed intialization of config")
	}
	config.JWTPrivateKey = prvBytes

	pub64 := os.Getenv("JWT_PUBLIC_KEY")
	pubBytes, err := base64.StdEncoding.DecodeString(pub64)
	if err != nil {
		return models.AppConfig{}, errors.New("failed intialization of config")
	}
	config.JWTPublicKey = pubBytes
	return config, nil
}

// Mock Checking function
func check(username string, password string) error {
	if len(username) == 0 {
		return errors.New("username cannot be empty")
	}
	if len(username) < 2 {
		return errors.New("username must be at least 3 characters")
	}
	if len(password) < 4 {
		return errors.New("password must be at least 4 characters")
	}
	return nil
}
