package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Pipeline PipelineConfig
	Worker   WorkerConfig
	Intake   IntakeConfig
	Notifier NotifierConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// PipelineConfig holds orchestrator sweep cadences and job defaults.
type PipelineConfig struct {
	MonitorInterval     time.Duration // running-job reclaim sweep
	RetryInterval       time.Duration // retry->pending release sweep
	MissedBeats         int           // heartbeats missed before reclaim
	DefaultMaxAttempts  int
	DefaultPriority     int
	ExecutionTimeout    time.Duration
	HeartbeatInterval   time.Duration
	InitialRetryDelay   time.Duration
	MaxRetryDelay       time.Duration
	BackoffMultiplier   float64
	RetryJitterFraction float64 // additive uniform jitter, fraction of delay
}

// WorkerConfig holds embedded/standalone worker configuration.
type WorkerConfig struct {
	Workers      int
	Capabilities []string // step names; empty means all steps
	PollInterval time.Duration
	ArtifactDir  string
	OCRBinary    string // external OCR command, optional

	MinOCRConfidence float64 // validator gate threshold
	MinTagCoverage   float64 // validator gate threshold
}

// IntakeConfig holds the drop-directory watcher configuration.
type IntakeConfig struct {
	WatchDirs []string
	OwnerID   string // owner for documents created by the watcher
	Debounce  time.Duration
}

// NotifierConfig holds the terminal-status webhook configuration.
type NotifierConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

// LoadConfig loads configuration from environment variables
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
		Pipeline: PipelineConfig{
			MonitorInterval:     getEnvAsDuration("MONITOR_INTERVAL", 10*time.Second),
			RetryInterval:       getEnvAsDuration("RETRY_INTERVAL", 5*time.Second),
			MissedBeats:         getEnvAsInt("MISSED_BEATS_THRESHOLD", 3),
			DefaultMaxAttempts:  getEnvAsInt("JOB_MAX_ATTEMPTS", 3),
			DefaultPriority:     getEnvAsInt("JOB_PRIORITY", 10),
			ExecutionTimeout:    getEnvAsDuration("JOB_EXECUTION_TIMEOUT", 10*time.Minute),
			HeartbeatInterval:   getEnvAsDuration("JOB_HEARTBEAT_INTERVAL", 15*time.Second),
			InitialRetryDelay:   getEnvAsDuration("RETRY_INITIAL_DELAY", 5*time.Second),
			MaxRetryDelay:       getEnvAsDuration("RETRY_MAX_DELAY", 5*time.Minute),
			BackoffMultiplier:   getEnvAsFloat64("RETRY_BACKOFF_MULTIPLIER", 2.0),
			RetryJitterFraction: getEnvAsFloat64("RETRY_JITTER_FRACTION", 0.1),
		},
		Worker: WorkerConfig{
			Workers:      getEnvAsInt("WORKERS", 4),
			Capabilities: splitCSV(getEnv("WORKER_CAPABILITIES", "")),
			PollInterval: getEnvAsDuration("WORKER_POLL_INTERVAL", time.Second),
			ArtifactDir:  getEnv("ARTIFACT_DIR", "./artifacts"),
			OCRBinary:    getEnv("OCR_BINARY", "tesseract"),

			MinOCRConfidence: getEnvAsFloat64("VALIDATOR_MIN_OCR_CONFIDENCE", 0.5),
			MinTagCoverage:   getEnvAsFloat64("VALIDATOR_MIN_TAG_COVERAGE", 0.6),
		},
		Intake: IntakeConfig{
			WatchDirs: splitCSV(getEnv("INTAKE_WATCH_DIRS", "")),
			OwnerID:   getEnv("INTAKE_OWNER_ID", "intake-watcher"),
			Debounce:  getEnvAsDuration("INTAKE_DEBOUNCE", 500*time.Millisecond),
		},
		Notifier: NotifierConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
			Timeout:    getEnvAsDuration("NOTIFY_TIMEOUT", 10*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
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

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
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

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.MissedBeats < 1 {
		return NewAppError("CONFIG_ERROR", "MISSED_BEATS_THRESHOLD must be >= 1", ErrInvalidInput)
	}
	if c.Pipeline.DefaultMaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "JOB_MAX_ATTEMPTS must be >= 1", ErrInvalidInput)
	}
	return nil
}
