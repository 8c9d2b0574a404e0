package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API     APIConfig
	Session SessionConfig
	Log     LogConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	TokenFile string
}

type LogConfig struct {
	Level string
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("API_BASE_URL", "https://api.debugify.org/api/v1")
	viper.SetDefault("API_TIMEOUT", "10s")
	viper.SetDefault("TOKEN_FILE", defaultTokenFile())
	viper.SetDefault("LOG_LEVEL", "info")

	timeout, err := time.ParseDuration(viper.GetString("API_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Timeout: timeout,
		},
		Session: SessionConfig{
			TokenFile: viper.GetString("TOKEN_FILE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".marketadmin/token"
	}
	return filepath.Join(home, ".marketadmin", "token")
}
