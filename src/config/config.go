package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Config is the root configuration structure
type Config struct {
	Agent      AgentConfig      `yaml:"agent"`
	Backend    BackendConfig    `yaml:"backend"`
	Server     ServerConfig     `yaml:"server"`
	Input      InputConfig      `yaml:"input"`
	Exclusions ExclusionsConfig `yaml:"exclusions"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// AgentConfig contains application metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// BackendConfig contains the analysis service connection settings.
// A zero Timeout means requests are only bounded by their context.
type BackendConfig struct {
	URL         string        `yaml:"url"`
	AnalyzePath string        `yaml:"analyze_path"`
	Timeout     time.Duration `yaml:"timeout"`
	Retry       RetryConfig   `yaml:"retry"`
}

// RetryConfig contains retry settings for API calls. MaxAttempts of zero
// disables retries.
type RetryConfig struct {
	MaxAttempts   int           `yaml:"max_attempts"`
	BackoffFactor float64       `yaml:"backoff_factor"`
	InitialDelay  time.Duration `yaml:"initial_delay"`
	MaxDelay      time.Duration `yaml:"max_delay"`
	RetryOnStatus []int         `yaml:"retry_on_status"`
}

// ServerConfig contains web UI settings
type ServerConfig struct {
	Listen                  string        `yaml:"listen"`
	APIProxy                bool          `yaml:"api_proxy"`
	RateLimitEnabled        bool          `yaml:"rate_limit_enabled"`
	RateLimitRequestsPerSec float64       `yaml:"rate_limit_requests_per_sec"`
	RateLimitBurst          int           `yaml:"rate_limit_burst"`
	ShutdownTimeout         time.Duration `yaml:"shutdown_timeout"`
}

// InputConfig contains code input constraints
type InputConfig struct {
	MaxLines   int    `yaml:"max_lines"`
	SampleCode string `yaml:"sample_code"`
}

// ExclusionsConfig contains file exclusion patterns for the analyze command
type ExclusionsConfig struct {
	FilePatterns []string `yaml:"file_patterns"`
	Files        []string `yaml:"files"`
}

// OutputConfig contains report output settings
type OutputConfig struct {
	Formats            []string `yaml:"formats"`
	OutputDir          string   `yaml:"output_dir"`
	IncludeSuggestions bool     `yaml:"include_suggestions"`
	NoColor            bool     `yaml:"no_color"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"` // text, json
	File          string `yaml:"file"`
	MaxSizeMB     int    `yaml:"max_size_mb"`
	MaxBackups    int    `yaml:"max_backups"`
	MaxAgeDays    int    `yaml:"max_age_days"`
	Compress      bool   `yaml:"compress"`
	IncludeCaller bool   `yaml:"include_caller"`
}

// SupportedFormats lists the report formats the generator understands
var SupportedFormats = []string{"text", "json", "markdown", "md", "sarif", "html"}

// Validate checks the configuration for values that would make the client unusable
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	u, err := url.Parse(c.Backend.URL)
	if err != nil {
		return fmt.Errorf("backend.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend.url: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("backend.url: missing host")
	}
	if c.Input.MaxLines <= 0 {
		return fmt.Errorf("input.max_lines must be positive, got %d", c.Input.MaxLines)
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("backend.timeout must not be negative")
	}
	for _, p := range c.Exclusions.FilePatterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("exclusions.file_patterns: invalid pattern %q", p)
		}
	}
	for _, f := range c.Output.Formats {
		if !IsSupportedFormat(f) {
			return fmt.Errorf("output.formats: unsupported format %q", f)
		}
	}
	return nil
}

// IsSupportedFormat reports whether format is a known report format
func IsSupportedFormat(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}
