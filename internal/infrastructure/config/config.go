package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SequenceBackendSQL      = "sql"
	SequenceBackendDynamoDB = "dynamodb"
)

// Config is the process configuration, read from the environment.
type Config struct {
	ServerPort  int
	Environment string
	LogLevel    string

	DatabaseDriver string
	DatabaseURL    string

	SequenceBackend string
	SequenceTable   string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
}

// Load reads an optional .env file and then the environment. Missing values
// fall back to defaults suited to a single-machine shop install.
func Load(envFiles ...string) (Config, error) {
	// .env is optional
	_ = godotenv.Load(envFiles...)

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		ServerPort:  port,
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		DatabaseDriver: strings.ToLower(getEnv("DATABASE_DRIVER", "sqlite")),
		DatabaseURL:    getEnv("DATABASE_URL", "phone-maintenance.db"),

		SequenceBackend: strings.ToLower(getEnv("RECORD_SEQUENCE_BACKEND", SequenceBackendSQL)),
		SequenceTable:   getEnv("RECORD_SEQUENCE_TABLE", "record_sequences"),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
	}, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
