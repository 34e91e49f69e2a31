package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Scan struct {
		Interval  time.Duration `yaml:"interval"`
		Watchlist []string      `yaml:"watchlist"`
	} `yaml:"scan"`
	Alpaca struct {
		KeyID     string `yaml:"key_id"`
		SecretKey string `yaml:"secret_key"`
		DataURL   string `yaml:"data_url"`
	} `yaml:"alpaca"`
	Polygon struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"polygon"`
	Tiingo struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"tiingo"`
	Indicators struct {
		CacheTTL time.Duration `yaml:"cache_ttl"`
		Redis    struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"indicators"`
	Sentiment struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"sentiment"`
	Telegram struct {
		Token  string `yaml:"token"`
		ChatID string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Kafka struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// Provider credentials are deliberately optional: a missing key disables that
// provider and the engines fall through to the next backend in the chain.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("ALPACA_ID"); v != "" {
		c.Alpaca.KeyID = v
	}
	if v := os.Getenv("ALPACA_SECRET"); v != "" {
		c.Alpaca.SecretKey = v
	}
	if v := os.Getenv("POLYGON_KEY"); v != "" {
		c.Polygon.APIKey = v
	}
	if v := os.Getenv("TIINGO_KEY"); v != "" {
		c.Tiingo.APIKey = v
	}
	if v := os.Getenv("TG_TOKEN"); v != "" {
		c.Telegram.Token = v
	}
	if v := os.Getenv("TG_ID"); v != "" {
		c.Telegram.ChatID = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		c.Scan.Watchlist = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
		c.Kafka.Enabled = true
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Scan.Interval <= 0 {
		c.Scan.Interval = 60 * time.Second
	}
	if c.Indicators.CacheTTL <= 0 {
		c.Indicators.CacheTTL = 60 * time.Second
	}
	if c.Alpaca.DataURL == "" {
		c.Alpaca.DataURL = "https://data.alpaca.markets"
	}
	if c.Polygon.BaseURL == "" {
		c.Polygon.BaseURL = "https://api.polygon.io"
	}
	if c.Tiingo.BaseURL == "" {
		c.Tiingo.BaseURL = "https://api.tiingo.com"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if len(c.Scan.Watchlist) == 0 {
		return fmt.Errorf("scan.watchlist cannot be empty")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers required when kafka.enabled")
	}
	return nil
}

// Watchlist returns the configured symbols trimmed and upper-cased, preserving
// order. Duplicates are kept; they are simply rescanned.
func (c *Config) Watchlist() []string {
	out := make([]string, 0, len(c.Scan.Watchlist))
	for _, s := range c.Scan.Watchlist {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
