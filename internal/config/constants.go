package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	Scan: ScanConfig{
		MaxFileSizeMB:       50,
		MinEntropyThreshold: 1e-5,
		ThreadPercentage:    75,
		IgnorePaths: []string{
			".git/**",
			"node_modules/**",
			"vendor/**",
			"*.min.js",
			"*.lock",
			"package-lock.json",
		},
		IgnoreComments: []string{
			"guardy:ignore",
			"guardy:allow",
		},
		RespectGitignore: true,
		CustomPatterns:   []CustomPattern{},
	},
	Logging: LoggingConfig{
		Level:   "info",
		Format:  "text",
		LogFile: "", // Empty = stderr only, set path to enable file logging
	},
}

// GetDefaultConfigDir returns the default configuration directory
func GetDefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".guardy"
	}
	return filepath.Join(home, ".guardy")
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	return filepath.Join(GetDefaultConfigDir(), "config.yaml")
}
