package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds server settings and simulation defaults. Values come from an
// optional YAML file, with ADDR and REDIS_ADDR overridable via environment.
type Config struct {
	Addr      string             `yaml:"addr"`
	RedisAddr string             `yaml:"redis_addr"`
	RateLimit RateLimitConfig    `yaml:"rate_limit"`
	Defaults  SimulationDefaults `yaml:"defaults"`
}

type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

// SimulationDefaults seeds the CLI simulation config when flags are not set.
type SimulationDefaults struct {
	HorizonMonths int     `yaml:"horizon_months"`
	Increment     float64 `yaml:"increment"`
	StartMonth    int     `yaml:"start_month"`
}

// DefaultConfigFile is looked up when no --config flag is given.
const DefaultConfigFile = "loan-optimizer.yaml"

func Default() Config {
	return Config{
		Addr: ":8080",
		RateLimit: RateLimitConfig{
			Requests:      5,
			WindowSeconds: 60,
		},
		Defaults: SimulationDefaults{
			HorizonMonths: 120,
			Increment:     1000,
			StartMonth:    1,
		},
	}
}

// Load reads the config file at path (or DefaultConfigFile when path is
// empty and the file exists), applies environment overrides and validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.Addr = getEnv("ADDR", cfg.Addr)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	if v, err := strconv.Atoi(getEnv("RATE_LIMIT_REQUESTS", "")); err == nil {
		cfg.RateLimit.Requests = v
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate_limit.requests must be positive")
	}
	if c.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("rate_limit.window_seconds must be positive")
	}
	if c.Defaults.HorizonMonths <= 0 {
		return fmt.Errorf("defaults.horizon_months must be positive")
	}
	if c.Defaults.Increment <= 0 {
		return fmt.Errorf("defaults.increment must be positive")
	}
	if c.Defaults.StartMonth < 1 || c.Defaults.StartMonth > 12 {
		return fmt.Errorf("defaults.start_month must be in 1-12")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
