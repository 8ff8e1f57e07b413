package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIKey         = "DOCPARSE_API_KEY"
	EnvAppID          = "DOCPARSE_APP_ID"
	EnvBaseURL        = "DOCPARSE_BASE_URL"
	EnvMaxFileBytes   = "DOCPARSE_MAX_FILE_BYTES"
	EnvChunkSize      = "DOCPARSE_CHUNK_SIZE"
	EnvPollInterval   = "DOCPARSE_POLL_INTERVAL"
	EnvConvertTimeout = "DOCPARSE_CONVERT_TIMEOUT"
	EnvDocumentTTL    = "DOCPARSE_DOCUMENT_TTL"
)

// Defaults for optional settings.
const (
	DefaultBaseURL = "http://82.156.10.7:10064"

	// DefaultMaxFileBytes is the default maximum accepted file size (50 MiB).
	DefaultMaxFileBytes int64 = 50 << 20

	// DefaultChunkSize is the target chunk size in runes when a document has
	// no level-1 headings to split on.
	DefaultChunkSize = 3000

	DefaultPollInterval   = 2 * time.Second
	DefaultConvertTimeout = time.Hour
)

// Config holds runtime configuration sourced from environment variables.
type Config struct {
	// Remote conversion API credentials. Both are required.
	APIKey string
	AppID  string

	// BaseURL of the conversion API.
	BaseURL string

	MaxFileSizeBytes int64
	ChunkSize        int

	// PollInterval is the delay between conversion status checks;
	// ConvertTimeout bounds one full upload-convert-download cycle.
	PollInterval   time.Duration
	ConvertTimeout time.Duration

	// DocumentTTL evicts stored documents after this duration.
	// Zero keeps documents for the life of the process.
	DocumentTTL time.Duration
}

// MaxFileSizeMB returns the configured limit in whole megabytes.
func (c *Config) MaxFileSizeMB() int64 {
	return c.MaxFileSizeBytes >> 20
}

// Validate reports missing required settings.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%s is required", EnvAPIKey)
	}
	if c.AppID == "" {
		return fmt.Errorf("%s is required", EnvAppID)
	}
	return nil
}

// Load reads Config from environment variables, falling back to defaults for
// missing or invalid optional values. A .env file in the working directory is
// loaded first if present; real environment variables take precedence.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIKey:           os.Getenv(EnvAPIKey),
		AppID:            os.Getenv(EnvAppID),
		BaseURL:          envOr(EnvBaseURL, DefaultBaseURL),
		MaxFileSizeBytes: envInt64(EnvMaxFileBytes, DefaultMaxFileBytes),
		ChunkSize:        envInt(EnvChunkSize, DefaultChunkSize),
		PollInterval:     envDuration(EnvPollInterval, DefaultPollInterval),
		ConvertTimeout:   envDuration(EnvConvertTimeout, DefaultConvertTimeout),
		DocumentTTL:      envDuration(EnvDocumentTTL, 0),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return fallback
}
