package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when the configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is the global application configuration
var Config = Default()

// searchPaths are tried in order when no explicit path is given.
var searchPaths = []string{"config.yml", "./config/config.yml"}

// LoadAppConfig loads, overlays and validates the configuration and stores it
// in Config. An explicit path must exist; without one, the search paths are
// tried and defaults are used when none exists.
func LoadAppConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load is LoadAppConfig without touching Config.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	data, err := readConfigFile(path)
	if err != nil {
		return cfg, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	// a missing .env is fine; existing environment wins over it
	_ = godotenv.Load()
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func readConfigFile(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	for _, p := range searchPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
	}
	return nil, nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("WMR_SOURCE"); v != "" {
		cfg.Network.Source = v
	}
	if v := os.Getenv("WMR_LINES"); v != "" {
		cfg.Network.LinesPath = v
	}
	if v := os.Getenv("WMR_STEP_FREE"); v != "" {
		cfg.Network.StepFreePath = v
	}
	if v := os.Getenv("WMR_GTFS"); v != "" {
		cfg.Network.GTFSPath = v
	}
	if v := os.Getenv("WMR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("WMR_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: WMR_PORT %q: %w", ErrInvalid, v, err)
		}
		cfg.Server.Port = port
	}
	return nil
}
