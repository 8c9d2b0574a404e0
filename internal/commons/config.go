package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"marketadmin/internal/config"
)

type fileConfig struct {
	API struct {
		BaseURL string `yaml:"baseUrl"`
		Timeout string `yaml:"timeout"`
	} `yaml:"api"`
	Session struct {
		TokenFile string `yaml:"tokenFile"`
	} `yaml:"session"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// LoadConfig reads a YAML config file into the shared Config shape. Used
// when an operator prefers a file over environment variables; unset fields
// get the same defaults the env path applies.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if fc.API.BaseURL != "" {
		cfg.API.BaseURL = fc.API.BaseURL
	}
	if fc.API.Timeout != "" {
		timeout, err := time.ParseDuration(fc.API.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing api.timeout: %w", err)
		}
		cfg.API.Timeout = timeout
	}
	if fc.Session.TokenFile != "" {
		cfg.Session.TokenFile = fc.Session.TokenFile
	}
	if fc.Log.Level != "" {
		cfg.Log.Level = fc.Log.Level
	}

	return cfg, nil
}
