// Package config contains the client configuration with its yaml loader.
package config

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultEndpoint       = "http://127.0.0.1:3030"
	defaultDialTimeout    = 4 * time.Second
	defaultRequestTimeout = 4 * time.Second
	defaultLogLevel       = "info"
)

// Config is the top level struct representing the client configuration.
type Config struct {
	RPC RPC `yaml:"RPC"`
	// KeyStorePath is the path to the bbolt key database. An empty value
	// means an in-memory store.
	KeyStorePath string `yaml:"KeyStorePath"`
	LogLevel     string `yaml:"LogLevel"`
}

// RPC describes the node endpoint and transport timeouts.
type RPC struct {
	Endpoint       string        `yaml:"Endpoint"`
	DialTimeout    time.Duration `yaml:"DialTimeout"`
	RequestTimeout time.Duration `yaml:"RequestTimeout"`
}

// Default returns a configuration with all defaults filled in.
func Default() Config {
	return Config{
		RPC: RPC{
			Endpoint:       defaultEndpoint,
			DialTimeout:    defaultDialTimeout,
			RequestTimeout: defaultRequestTimeout,
		},
		LogLevel: defaultLogLevel,
	}
}

// Load attempts to load the config from the given path. Missing fields get
// their default values.
func Load(path string) (Config, error) {
	configData, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	config := Default()
	err = yaml.Unmarshal(configData, &config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if _, err := config.ZapLevel(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// ZapLevel converts the configured log level into a zap one.
func (c Config) ZapLevel() (zapcore.Level, error) {
	l, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid LogLevel: %w", err)
	}
	return l, nil
}
