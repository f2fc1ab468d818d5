package conf

import (
	"os"
	"path/filepath"
)

// Config represents process configuration. This is distinct from the
// mutable bot config document, which lives in a JSON file and changes at
// runtime via the config commands.
type Config struct {
	// Feishu configuration
	Feishu FeishuConfig

	// ConfigPath is the bot config JSON file.
	ConfigPath string

	// StatsDBPath is the usage statistics SQLite database.
	StatsDBPath string

	// SearchAPIURL is the aggregation search endpoint.
	SearchAPIURL string

	// Debug mode
	Debug bool
}

// FeishuConfig contains Feishu app credentials.
type FeishuConfig struct {
	AppID     string
	AppSecret string
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	dataDir := os.Getenv("NETDISKBOT_DATA_DIR")
	if dataDir == "" {
		homeDir, _ := os.UserHomeDir()
		dataDir = filepath.Join(homeDir, ".netdiskbot")
	}

	configPath := os.Getenv("NETDISKBOT_CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join(dataDir, "config.json")
	}

	statsDBPath := os.Getenv("NETDISKBOT_STATS_DB_PATH")
	if statsDBPath == "" {
		statsDBPath = filepath.Join(dataDir, "stats.db")
	}

	return &Config{
		Feishu: FeishuConfig{
			AppID:     os.Getenv("FEISHU_APP_ID"),
			AppSecret: os.Getenv("FEISHU_APP_SECRET"),
		},
		ConfigPath:   configPath,
		StatsDBPath:  statsDBPath,
		SearchAPIURL: os.Getenv("SEARCH_API_URL"),
		Debug:        os.Getenv("DEBUG") == "true",
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Feishu.AppID == "" || c.Feishu.AppSecret == "" {
		return &ConfigError{Field: "FEISHU_APP_ID/FEISHU_APP_SECRET", Message: "required"}
	}
	return nil
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
