package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DatabaseURL     string `yaml:"databaseUrl"`
	OpenAIAPIKey    string `yaml:"openaiApiKey"`
	OpenAIModel     string `yaml:"openaiModel"`
	SlackWebhookURL string `yaml:"slackWebhookUrl"`
	LookbackDays    int    `yaml:"lookbackDays"`
	LogLevel        string `yaml:"logLevel"`
}

// Load reads an optional config.yaml, then applies environment overrides.
// Environment wins so deployments keep credentials out of the file. A
// missing file is fine; a malformed one is not.
func Load(path string) (*Config, error) {
	cfg := &Config{
		OpenAIModel:  "gpt-4o-mini",
		LookbackDays: 7,
		LogLevel:     "info",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAIAPIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAIModel = v
	}
	if v := os.Getenv("SLACK_WEBHOOK_URL"); v != "" {
		cfg.SlackWebhookURL = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid LOOKBACK_DAYS %q", v)
		}
		cfg.LookbackDays = n
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the startup-fatal settings. The Slack webhook is
// deliberately absent here: an empty value disables alert delivery instead
// of failing the run.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	return nil
}

// DatabaseDriver picks the sql driver from the DSN shape. go-sql-driver
// DSNs look like user:pass@tcp(host:port)/db and carry no URL scheme;
// everything else goes to lib/pq.
func (c *Config) DatabaseDriver() string {
	if strings.Contains(c.DatabaseURL, "@tcp(") {
		return "mysql"
	}
	return "postgres"
}
