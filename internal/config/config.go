// Package config resolves process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultPort is used when PORT is absent or empty.
	DefaultPort = 5000

	envPort = "PORT"
	envFile = ".env"
)

// Config is read once at startup and passed by value to the server.
type Config struct {
	Port int
}

// Addr returns the listen address for all interfaces on the configured port.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads configuration from the process environment. A .env file in the
// working directory is applied first when present; variables already set in
// the environment take precedence over it.
//
// The port range is not checked here. An out-of-range port fails at bind time.
func Load() (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Config{Port: DefaultPort}
	raw := strings.TrimSpace(os.Getenv(envPort))
	if raw == "" {
		return cfg, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse %s %q: %w", envPort, raw, err)
	}
	cfg.Port = port
	return cfg, nil
}
