package config

// Config represents the application configuration
type Config struct {
	Scan    ScanConfig    `mapstructure:"scan" yaml:"scan"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ScanConfig contains configuration for the scanning engine
type ScanConfig struct {
	MaxFileSizeMB       int             `mapstructure:"max_file_size_mb" yaml:"max_file_size_mb"`
	MinEntropyThreshold float64         `mapstructure:"min_entropy_threshold" yaml:"min_entropy_threshold"`
	ThreadPercentage    int             `mapstructure:"thread_percentage" yaml:"thread_percentage"`
	IgnorePaths         []string        `mapstructure:"ignore_paths" yaml:"ignore_paths"`
	IgnoreComments      []string        `mapstructure:"ignore_comments" yaml:"ignore_comments"`
	RespectGitignore    bool            `mapstructure:"respect_gitignore" yaml:"respect_gitignore"`
	CustomPatterns      []CustomPattern `mapstructure:"custom_patterns" yaml:"custom_patterns"`
}

// CustomPattern is a user-supplied detection pattern merged into the embedded
// default set at startup
type CustomPattern struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Regex    string `mapstructure:"regex" yaml:"regex"`
	Severity string `mapstructure:"severity" yaml:"severity"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level   string `mapstructure:"level" yaml:"level"`
	Format  string `mapstructure:"format" yaml:"format"`
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
}

// MaxFileSizeBytes returns the configured size ceiling in bytes.
func (c *ScanConfig) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}
