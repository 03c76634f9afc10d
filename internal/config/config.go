package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig initializes the configuration using Viper. An explicit
// configPath overrides the default search locations.
func InitConfig(configPath string) error {
	// Load .env file if it exists (fail silently if not found)
	loadEnvFiles()

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(GetDefaultConfigDir())
		viper.AddConfigPath(".")
	}

	// Set defaults
	viper.SetDefault("scan.max_file_size_mb", DefaultConfig.Scan.MaxFileSizeMB)
	viper.SetDefault("scan.min_entropy_threshold", DefaultConfig.Scan.MinEntropyThreshold)
	viper.SetDefault("scan.thread_percentage", DefaultConfig.Scan.ThreadPercentage)
	viper.SetDefault("scan.ignore_paths", DefaultConfig.Scan.IgnorePaths)
	viper.SetDefault("scan.ignore_comments", DefaultConfig.Scan.IgnoreComments)
	viper.SetDefault("scan.respect_gitignore", DefaultConfig.Scan.RespectGitignore)
	viper.SetDefault("logging.level", DefaultConfig.Logging.Level)
	viper.SetDefault("logging.format", DefaultConfig.Logging.Format)
	viper.SetDefault("logging.log_file", DefaultConfig.Logging.LogFile)

	// Enable environment variable overrides
	viper.SetEnvPrefix("GUARDY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file (it's okay if it doesn't exist unless one was
	// explicitly requested)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" || !os.IsNotExist(err) {
				return fmt.Errorf("failed to read config; %w", err)
			}
		}
	}

	return nil
}

// GetConfig returns the current configuration
func GetConfig() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config; %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration values that would make a scan nonsensical
func (c *Config) Validate() error {
	if c.Scan.MaxFileSizeMB <= 0 {
		return fmt.Errorf("scan.max_file_size_mb must be positive, got %d", c.Scan.MaxFileSizeMB)
	}
	if c.Scan.ThreadPercentage <= 0 || c.Scan.ThreadPercentage > 100 {
		return fmt.Errorf("scan.thread_percentage must be in (0, 100], got %d", c.Scan.ThreadPercentage)
	}
	if c.Scan.MinEntropyThreshold < 0 || c.Scan.MinEntropyThreshold >= 1 {
		return fmt.Errorf("scan.min_entropy_threshold must be in [0, 1), got %g", c.Scan.MinEntropyThreshold)
	}
	return nil
}

// loadEnvFiles loads environment variables from .env files
// It tries multiple locations and fails silently if files don't exist
func loadEnvFiles() {
	locations := []string{
		".env", // Current directory
		filepath.Join(GetDefaultConfigDir(), ".env"),
	}

	// Also try .env.local for local overrides
	localLocations := []string{
		".env.local",
		filepath.Join(GetDefaultConfigDir(), ".env.local"),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			_ = godotenv.Load(location) // Fail silently
		}
	}

	for _, location := range localLocations {
		if _, err := os.Stat(location); err == nil {
			_ = godotenv.Load(location) // Fail silently
		}
	}
}
