package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "KB"

// LoaderOptions controls where configuration is read from.
type LoaderOptions struct {
	// ConfigFile is an explicit yaml config file path. When empty, the
	// default search locations are tried and a missing file is not an
	// error.
	ConfigFile string

	// EnvFile is an explicit .env file path. When empty, ./.env is loaded
	// if present.
	EnvFile string
}

// Load reads configuration from file, .env and environment, applies
// defaults and validates the result.
func Load(opts LoaderOptions) (*Config, error) {
	loadEnvFile(opts.EnvFile)

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKeys(v)

	if file := resolveConfigFile(opts.ConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindKeys registers the known keys so AutomaticEnv picks them up even
// when no config file sets them.
func bindKeys(v *viper.Viper) {
	for _, key := range []string{
		"client.base_url",
		"client.timeout",
		"logging.level",
		"logging.format",
		"logging.output",
		"logging.no_color",
		"logging.caller",
	} {
		_ = v.BindEnv(key)
	}
}

// loadEnvFile loads an explicit or default .env file, ignoring absence.
func loadEnvFile(path string) {
	if path != "" {
		_ = godotenv.Load(path)
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}

// resolveConfigFile returns the explicit path, or the first default
// location that exists.
func resolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, candidate := range []string{"./killbill.yml", "./config/killbill.yml"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
