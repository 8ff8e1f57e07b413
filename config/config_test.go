package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		EnvAPIKey, EnvAppID, EnvBaseURL, EnvMaxFileBytes,
		EnvChunkSize, EnvPollInterval, EnvConvertTimeout, EnvDocumentTTL,
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.MaxFileSizeBytes != DefaultMaxFileBytes {
		t.Errorf("MaxFileSizeBytes = %d, want %d", cfg.MaxFileSizeBytes, DefaultMaxFileBytes)
	}
	if cfg.ChunkSize != DefaultChunkSize {
		t.Errorf("ChunkSize = %d, want %d", cfg.ChunkSize, DefaultChunkSize)
	}
	if cfg.PollInterval != DefaultPollInterval {
		t.Errorf("PollInterval = %v, want %v", cfg.PollInterval, DefaultPollInterval)
	}
	if cfg.DocumentTTL != 0 {
		t.Errorf("DocumentTTL = %v, want 0", cfg.DocumentTTL)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "key-123")
	t.Setenv(EnvAppID, "app-456")
	t.Setenv(EnvBaseURL, "http://localhost:9999")
	t.Setenv(EnvMaxFileBytes, "1048576") // 1 MiB
	t.Setenv(EnvChunkSize, "500")
	t.Setenv(EnvPollInterval, "100ms")
	t.Setenv(EnvDocumentTTL, "30m")

	cfg := Load()

	if cfg.APIKey != "key-123" {
		t.Errorf("APIKey = %q, want key-123", cfg.APIKey)
	}
	if cfg.AppID != "app-456" {
		t.Errorf("AppID = %q, want app-456", cfg.AppID)
	}
	if cfg.BaseURL != "http://localhost:9999" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.MaxFileSizeBytes != 1_048_576 {
		t.Errorf("MaxFileSizeBytes = %d, want 1048576", cfg.MaxFileSizeBytes)
	}
	if cfg.ChunkSize != 500 {
		t.Errorf("ChunkSize = %d, want 500", cfg.ChunkSize)
	}
	if cfg.PollInterval != 100*time.Millisecond {
		t.Errorf("PollInterval = %v, want 100ms", cfg.PollInterval)
	}
	if cfg.DocumentTTL != 30*time.Minute {
		t.Errorf("DocumentTTL = %v, want 30m", cfg.DocumentTTL)
	}
}

func TestLoad_InvalidValuesIgnored(t *testing.T) {
	t.Setenv(EnvMaxFileBytes, "not-a-number")
	t.Setenv(EnvChunkSize, "-5")
	t.Setenv(EnvPollInterval, "soon")

	cfg := Load()

	if cfg.MaxFileSizeBytes != DefaultMaxFileBytes {
		t.Errorf("MaxFileSizeBytes = %d, want default %d", cfg.MaxFileSizeBytes, DefaultMaxFileBytes)
	}
	if cfg.ChunkSize != DefaultChunkSize {
		t.Errorf("ChunkSize = %d, want default %d", cfg.ChunkSize, DefaultChunkSize)
	}
	if cfg.PollInterval != DefaultPollInterval {
		t.Errorf("PollInterval = %v, want default %v", cfg.PollInterval, DefaultPollInterval)
	}
}

func TestValidate_MissingCredentials(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for missing credentials")
	}

	cfg.APIKey = "key"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for missing app id")
	}

	cfg.AppID = "app"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMaxFileSizeMB(t *testing.T) {
	cfg := &Config{MaxFileSizeBytes: 10 << 20} // 10 MiB
	if got := cfg.MaxFileSizeMB(); got != 10 {
		t.Errorf("MaxFileSizeMB() = %d, want 10", got)
	}
}
