package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server
	AppPort  string `yaml:"APP_PORT"`
	LogLevel string `yaml:"LOG_LEVEL"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Gemini API configuration (receipt extraction)
	GeminiAPIKey string `yaml:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL"`

	// Recipe search provider
	RecipeAPIKey string `yaml:"RECIPE_API_KEY"`

	// Image providers
	UnsplashAccessKey string `yaml:"UNSPLASH_ACCESS_KEY"`
	PexelsAPIKey      string `yaml:"PEXELS_API_KEY"`
}

var config Config

// LoadConfig reads config.yaml when present, otherwise falls back to a .env
// file / plain environment variables. Missing keys never halt startup.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("no config.yaml or .env found, using environment variables only")
		}
		return
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}
}

// WarnMissingKeys logs a warning for every external-provider key that is not
// configured. Absence defers failure to first use rather than halting boot.
func WarnMissingKeys(logger *zap.Logger) {
	keys := []string{
		"GEMINI_API_KEY",
		"RECIPE_API_KEY",
		"UNSPLASH_ACCESS_KEY",
		"PEXELS_API_KEY",
	}
	for _, key := range keys {
		if GetConfig(key) == "" {
			logger.Warn("API key not configured, dependent features will fail on first use", zap.String("key", key))
		}
	}
}

func GetConfig(key string) string {
	value := ""
	switch key {
	case "APP_PORT":
		value = config.AppPort
	case "LOG_LEVEL":
		value = config.LogLevel
	case "DB_USER":
		value = config.DBUser
	case "DB_NAME":
		value = config.DBName
	case "DB_PASSWORD":
		value = config.DBPassword
	case "DB_PORT":
		value = config.DBPort
	case "DB_HOST":
		value = config.DBHost
	case "AWS_S3_BUCKET":
		value = config.AWSS3Bucket
	case "AWS_S3_REGION":
		value = config.AWSS3Region
	case "AWS_ACCESS_KEY":
		value = config.AWSAccessKey
	case "AWS_SECRET_KEY":
		value = config.AWSSecretKey
	case "GEMINI_API_KEY":
		value = config.GeminiAPIKey
	case "GEMINI_MODEL":
		value = config.GeminiModel
	case "RECIPE_API_KEY":
		value = config.RecipeAPIKey
	case "UNSPLASH_ACCESS_KEY":
		value = config.UnsplashAccessKey
	case "PEXELS_API_KEY":
		value = config.PexelsAPIKey
	}
	if value == "" {
		value = os.Getenv(key)
	}
	return value
}
