package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Extract  ExtractConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	GRPCAddr string
}

// ExtractConfig holds the external tool configuration for text extraction.
type ExtractConfig struct {
	Pdftotext   string
	Pdftoppm    string
	Pdfinfo     string
	Tesseract   string
	TessdataDir string
	DPI         int
	MaxPages    int
}

// PipelineConfig holds orchestration and queue configuration.
type PipelineConfig struct {
	ArtifactDir    string
	ProcessTimeout time.Duration
	QueueWorkers   int
	QueueSize      int
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Extract: ExtractConfig{
			Pdftotext:   getEnv("PDFTOTEXT", "pdftotext"),
			Pdftoppm:    getEnv("PDFTOPPM", "pdftoppm"),
			Pdfinfo:     getEnv("PDFINFO", "pdfinfo"),
			Tesseract:   getEnv("TESSERACT", "tesseract"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			DPI:         getEnvAsInt("OCR_DPI", 300),
			MaxPages:    getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		Pipeline: PipelineConfig{
			ArtifactDir:    getEnv("ARTIFACT_DIR", "./artifacts"),
			ProcessTimeout: getEnvAsDuration("PROCESS_TIMEOUT", 3*time.Minute),
			QueueWorkers:   getEnvAsInt("QUEUE_WORKERS", 4),
			QueueSize:      getEnvAsInt("QUEUE_SIZE", 256),
		},
	}
}

// Helper functions for environment variable parsing.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.ArtifactDir == "" {
		return NewAppError("CONFIG_ERROR", "ARTIFACT_DIR is required", ErrInvalidInput)
	}
	return nil
}
