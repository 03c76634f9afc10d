package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestValidate(t *testing.T) {
	valid := func() Config { return DefaultConfig }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "zero file size",
			mutate:  func(c *Config) { c.Scan.MaxFileSizeMB = 0 },
			wantErr: true,
		},
		{
			name:    "negative file size",
			mutate:  func(c *Config) { c.Scan.MaxFileSizeMB = -1 },
			wantErr: true,
		},
		{
			name:    "zero thread percentage",
			mutate:  func(c *Config) { c.Scan.ThreadPercentage = 0 },
			wantErr: true,
		},
		{
			name:    "thread percentage over 100",
			mutate:  func(c *Config) { c.Scan.ThreadPercentage = 101 },
			wantErr: true,
		},
		{
			name:    "full thread percentage",
			mutate:  func(c *Config) { c.Scan.ThreadPercentage = 100 },
			wantErr: false,
		},
		{
			name:    "negative entropy threshold",
			mutate:  func(c *Config) { c.Scan.MinEntropyThreshold = -0.1 },
			wantErr: true,
		},
		{
			name:    "entropy threshold of one",
			mutate:  func(c *Config) { c.Scan.MinEntropyThreshold = 1 },
			wantErr: true,
		},
		{
			name:    "zero entropy threshold",
			mutate:  func(c *Config) { c.Scan.MinEntropyThreshold = 0 },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMaxFileSizeBytes(t *testing.T) {
	c := ScanConfig{MaxFileSizeMB: 50}
	if got := c.MaxFileSizeBytes(); got != 50*1024*1024 {
		t.Errorf("MaxFileSizeBytes() = %d, want %d", got, 50*1024*1024)
	}
}

func TestInitConfigFromFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `scan:
  max_file_size_mb: 10
  thread_percentage: 50
  custom_patterns:
    - name: ACME Token
      regex: acme_[a-z0-9]{20}
      severity: high
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config; %v", err)
	}

	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed; %v", err)
	}

	cfg, err := GetConfig()
	if err != nil {
		t.Fatalf("GetConfig failed; %v", err)
	}

	if cfg.Scan.MaxFileSizeMB != 10 {
		t.Errorf("MaxFileSizeMB = %d, want 10", cfg.Scan.MaxFileSizeMB)
	}
	if cfg.Scan.ThreadPercentage != 50 {
		t.Errorf("ThreadPercentage = %d, want 50", cfg.Scan.ThreadPercentage)
	}

	// Keys absent from the file keep their defaults.
	if cfg.Scan.MinEntropyThreshold != DefaultConfig.Scan.MinEntropyThreshold {
		t.Errorf("MinEntropyThreshold = %g, want default", cfg.Scan.MinEntropyThreshold)
	}
	if !cfg.Scan.RespectGitignore {
		t.Error("RespectGitignore should default to true")
	}

	if len(cfg.Scan.CustomPatterns) != 1 || cfg.Scan.CustomPatterns[0].Name != "ACME Token" {
		t.Errorf("CustomPatterns = %+v", cfg.Scan.CustomPatterns)
	}
}

func TestInitConfigMissingExplicitFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	if err := InitConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for an explicitly requested missing config")
	}
}
