package model

import "time"

// Config holds the complete wraplint configuration
type Config struct {
	Scan         ScanConfig         `yaml:"scan" mapstructure:"scan"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
	LLM          LLMConfig          `yaml:"llm" mapstructure:"llm"`
}

// ScanConfig controls the two-pass scan itself
type ScanConfig struct {
	StripTags    bool          `yaml:"strip_tags" mapstructure:"strip_tags"`         // Suppress matches inside <...> spans
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`               // Overall per-document timeout
	MaxLineBytes int           `yaml:"max_line_bytes" mapstructure:"max_line_bytes"` // Longest accepted line
}

// CacheConfig controls the loaded-document cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig controls batch parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitingConfig paces file reads in batch mode (shared/network mounts)
type RateLimitingConfig struct {
	FilesPerSecond float64 `yaml:"files_per_second" mapstructure:"files_per_second"`
	BurstSize      int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// LLMConfig controls the optional remediation summary
type LLMConfig struct {
	Provider       string `yaml:"provider" mapstructure:"provider"` // openai, anthropic, ollama, "" (disabled)
	Model          string `yaml:"model" mapstructure:"model"`
	APIKey         string `yaml:"-" mapstructure:"-"` // Never persisted; environment only
	BaseURL        string `yaml:"base_url" mapstructure:"base_url"`
	Timeout        int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens      int    `yaml:"max_tokens" mapstructure:"max_tokens"`
	StrictFindings bool   `yaml:"strict_findings" mapstructure:"strict_findings"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			StripTags:    true,
			Timeout:      2 * time.Minute,
			MaxLineBytes: 1024 * 1024,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			FilesPerSecond: 0, // 0 disables pacing
			BurstSize:      5,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:       "", // Disabled by default
			Timeout:        30,
			MaxTokens:      1000,
			StrictFindings: true,
		},
	}
}
