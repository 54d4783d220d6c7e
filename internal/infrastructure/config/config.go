package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Batch orchestration
	SyncInterval  time.Duration
	HotelWorkers  int
	DefaultHotels []string

	// Host PMS extraction API
	HostAPIBaseURL         string
	HostAPISubscriptionKey string
	HostAPITimeout         time.Duration
	HostAPIMaxRetries      int

	// Stat window offsets in days back from today
	StatWindowStartOffset int
	StatWindowEndOffset   int

	// ESB
	ESBBaseURL      string
	ESBTokenURL     string
	ESBClientID     string
	ESBClientSecret string

	// AWS
	AWSRegion      string
	S3BucketPrefix string
	SQSQueueName   string

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string
	MongoTimeout  time.Duration

	// PostgreSQL hotel registry
	PostgresURI string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		SyncInterval:  time.Duration(getEnvAsInt("SYNC_INTERVAL", 3600)) * time.Second,
		HotelWorkers:  getEnvAsInt("HOTEL_WORKERS", 4),
		DefaultHotels: getEnvAsSlice("HOTEL_CODES"),

		HostAPIBaseURL:         getEnv("HOST_API_BASE_URL", ""),
		HostAPISubscriptionKey: getEnv("HOST_API_SUBSCRIPTION_KEY", ""),
		HostAPITimeout:         time.Duration(getEnvAsInt("HOST_API_TIMEOUT", 60)) * time.Second,
		HostAPIMaxRetries:      getEnvAsInt("HOST_API_MAX_RETRIES", 3),

		StatWindowStartOffset: getEnvAsInt("STAT_WINDOW_START_OFFSET", 95),
		StatWindowEndOffset:   getEnvAsInt("STAT_WINDOW_END_OFFSET", 30),

		ESBBaseURL:      getEnv("ESB_BASE_URL", ""),
		ESBTokenURL:     getEnv("ESB_TOKEN_URL", ""),
		ESBClientID:     getEnv("ESB_CLIENT_ID", ""),
		ESBClientSecret: getEnv("ESB_CLIENT_SECRET", ""),

		AWSRegion:      getEnv("AWS_REGION", "eu-west-1"),
		S3BucketPrefix: getEnv("S3_BUCKET_PREFIX", "hostpms-"),
		SQSQueueName:   getEnv("SQS_QUEUE_NAME", "hostpms-files.fifo"),

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "hostpms"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),
		MongoTimeout:  time.Duration(getEnvAsInt("MONGO_TIMEOUT", 10)) * time.Second,

		PostgresURI: getEnv("POSTGRES_DSN", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
