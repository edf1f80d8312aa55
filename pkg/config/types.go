package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	YouTube     YouTubeConfig  `mapstructure:"youtube"`
	OpenAI      OpenAIConfig   `mapstructure:"openai"`
	Pipeline    PipelineConfig `mapstructure:"pipeline"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	LogQueries bool   `mapstructure:"log_queries"`
}

// YouTubeConfig contains YouTube Data API settings
type YouTubeConfig struct {
	CredentialsPath   string        `mapstructure:"credentials_path"`
	TokenPath         string        `mapstructure:"token_path"`
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	BurstSize         int           `mapstructure:"burst_size"`
}

// OpenAIConfig contains text generation settings
type OpenAIConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// PipelineConfig contains playlist assembly settings
type PipelineConfig struct {
	InsertDelay    time.Duration `mapstructure:"insert_delay"`
	MaxCandidates  int           `mapstructure:"max_candidates"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}
