package config

import (
	"fmt"
	"strings"

	"github.com/haloydev/instver/internal/constants"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds the settings read from INSTVER_* environment variables.
// None of them change what the tool prints on stdout.
type Config struct {
	LogLevel string `koanf:"log_level"`
}

func Default() Config {
	return Config{
		LogLevel: constants.DefaultLogLevel,
	}
}

// Load reads the config from the process environment, e.g. INSTVER_LOG_LEVEL=debug.
func Load() (Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(constants.EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = constants.DefaultLogLevel
	}
	return cfg, nil
}

func envKey(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, constants.EnvPrefix))
}
