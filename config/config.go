package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type HTTP struct {
	Addr              string        `yaml:"addr"`              // ":8090"
	ReadTimeout       time.Duration `yaml:"readTimeout"`       // "15s"
	WriteTimeout      time.Duration `yaml:"writeTimeout"`      // "30s"
	IdleTimeout       time.Duration `yaml:"idleTimeout"`       // "60s"
	AllowedOrigins    []string      `yaml:"allowedOrigins"`    // UI origins
	RequestsPerMinute int           `yaml:"requestsPerMinute"` // per-IP limit
}

type Upstream struct {
	BaseURL         string        `yaml:"baseUrl"`         // jobs/users/auth API
	Timeout         time.Duration `yaml:"timeout"`         // "10s"
	RetryMaxElapsed time.Duration `yaml:"retryMaxElapsed"` // "15s"
}

type Logging struct {
	Env       string `yaml:"env"`     // dev|stage|prod
	Service   string `yaml:"service"` // jobboard
	Version   string `yaml:"version"` // v0.1.0
	Backend   string `yaml:"backend"` // std|zap
	AddSource bool   `yaml:"addSource"`
	Debug     bool   `yaml:"debug"`
}

type Storage struct {
	Path string `yaml:"path"` // local mirror file
}

type Chat struct {
	SeedDemoData bool `yaml:"seedDemoData"`
}

type Config struct {
	HTTP     HTTP     `yaml:"http"`
	Upstream Upstream `yaml:"upstream"`
	Logging  Logging  `yaml:"logging"`
	Storage  Storage  `yaml:"storage"`
	Chat     Chat     `yaml:"chat"`
}

func Load() (*Config, error) {
	// a local .env may carry CONFIG_PATH / APP_ENV overrides
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Upstream.BaseURL == "" {
		return errors.New("upstream.baseUrl is required")
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8090"
	}
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 15 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = 30 * time.Second
	}
	if c.HTTP.IdleTimeout == 0 {
		c.HTTP.IdleTimeout = 60 * time.Second
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = 10 * time.Second
	}
	if c.Upstream.RetryMaxElapsed == 0 {
		c.Upstream.RetryMaxElapsed = 15 * time.Second
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "./data/localstore.json"
	}
	if c.Logging.Service == "" {
		c.Logging.Service = "jobboard"
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "dev"
	}
	if c.Logging.Version == "" {
		c.Logging.Version = "v0.1.0"
	}
	if c.Logging.Backend == "" {
		c.Logging.Backend = "std"
	}
	return nil
}
