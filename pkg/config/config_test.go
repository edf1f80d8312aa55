package config

import (
	"os"
	"testing"
	"time"
)

func TestInitDefaults(t *testing.T) {
	// No settings.yaml in the test directory, so Init falls back to
	// defaults plus environment overrides
	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if got := GetInt("server.port"); got != 10000 {
		t.Errorf("Expected default server.port to be 10000, got %d", got)
	}

	if got := GetDuration("pipeline.insert_delay"); got != 800*time.Millisecond {
		t.Errorf("Expected default pipeline.insert_delay to be 800ms, got %v", got)
	}

	if got := GetInt("pipeline.max_candidates"); got != 2 {
		t.Errorf("Expected default pipeline.max_candidates to be 2, got %d", got)
	}

	if got := GetString("openai.model"); got != "gpt-4o-mini" {
		t.Errorf("Expected default openai.model to be gpt-4o-mini, got %s", got)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	os.Setenv("VIBEMIX_OPENAI_MODEL", "gpt-4o")
	defer os.Unsetenv("VIBEMIX_OPENAI_MODEL")

	if got := GetString("openai.model"); got != "gpt-4o" {
		t.Errorf("Expected openai.model to be overridden to gpt-4o, got %s", got)
	}
}

func TestGetConfig(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	cfg, err := GetConfig()
	if err != nil {
		t.Fatalf("GetConfig() error = %v", err)
	}

	if cfg.Server.Port != 10000 {
		t.Errorf("Expected Server.Port to be 10000, got %d", cfg.Server.Port)
	}

	if cfg.YouTube.RequestsPerMinute != 60 {
		t.Errorf("Expected YouTube.RequestsPerMinute to be 60, got %d", cfg.YouTube.RequestsPerMinute)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name: "valid config",
			config: &Config{
				Server:   ServerConfig{Host: "localhost", Port: 10000},
				Pipeline: PipelineConfig{InsertDelay: 800 * time.Millisecond, MaxCandidates: 2},
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			config: &Config{
				Server: ServerConfig{Host: "localhost", Port: -1},
			},
			wantErr: true,
		},
		{
			name: "negative insert delay corrected",
			config: &Config{
				Server:   ServerConfig{Host: "localhost", Port: 10000},
				Pipeline: PipelineConfig{InsertDelay: -time.Second, MaxCandidates: 2},
			},
			wantErr: false,
			check: func(t *testing.T, c *Config) {
				if c.Pipeline.InsertDelay != 800*time.Millisecond {
					t.Errorf("Expected InsertDelay corrected to 800ms, got %v", c.Pipeline.InsertDelay)
				}
			},
		},
		{
			name: "zero max candidates corrected",
			config: &Config{
				Server:   ServerConfig{Host: "localhost", Port: 10000},
				Pipeline: PipelineConfig{InsertDelay: 0, MaxCandidates: 0},
			},
			wantErr: false,
			check: func(t *testing.T, c *Config) {
				if c.Pipeline.MaxCandidates != 2 {
					t.Errorf("Expected MaxCandidates corrected to 2, got %d", c.Pipeline.MaxCandidates)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, tt.config)
			}
		})
	}
}
