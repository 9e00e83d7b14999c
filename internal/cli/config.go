package cli

import (
	"log/slog"
	"os"

	"github.com/mcoot/teamalloc/internal/config"
	"github.com/mcoot/teamalloc/pkg/logging"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	ConfigPath string
	ServerURL  string
	Output     string
	Verbose    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ConfigPath: os.Getenv(config.EnvConfigPath),
		ServerURL:  getEnvOrDefault("TEAMALLOC_SERVER", "http://localhost:8080"),
		Output:     OutputText,
		Verbose:    false,
	}
}

// Allocation loads the allocation config file, or the defaults when no
// path is set
func (c *Config) Allocation() (config.Config, error) {
	return config.Load(c.ConfigPath)
}

// LogLevel is debug when verbose, otherwise LOG_LEVEL or warn
func (c *Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return logging.LevelFromEnv(slog.LevelWarn)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
