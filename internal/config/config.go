package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultTimeout is applied when no request timeout is configured.
const DefaultTimeout = 30 * time.Second

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "ACAPY_"

// Config holds the settings needed to talk to an agent's admin API.
type Config struct {
	BaseURL string            `yaml:"base_url" env:"URL"`
	APIKey  string            `yaml:"api_key" env:"API_KEY"`
	Headers map[string]string `yaml:"headers" env:"HEADERS" envSeparator:"," envKeyValSeparator:":"`
	Timeout time.Duration     `yaml:"timeout" env:"TIMEOUT"`
	Log     LogConfig         `yaml:"log" envPrefix:"LOG_"`
}

// LogConfig mirrors logger.Config.
type LogConfig struct {
	Level   string   `yaml:"level" env:"LEVEL"`
	Format  string   `yaml:"format" env:"FORMAT"`
	Outputs []string `yaml:"outputs" env:"OUTPUTS" envSeparator:","`
}

// Load parses the YAML file at path.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("config path is empty")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config file %s", path)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// FromEnv reads ACAPY_* variables from the process environment. The given
// dotenv files are loaded first; variables already set in the environment win.
func FromEnv(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, errors.Wrap(err, "load env files")
		}
	}
	return parseEnv(env.Options{Prefix: EnvPrefix})
}

func fromEnvironment(environ map[string]string) (*Config, error) {
	return parseEnv(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parseEnv(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.APIKey = strings.TrimSpace(c.APIKey)

	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Headers == nil {
		c.Headers = map[string]string{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}
