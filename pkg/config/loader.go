package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	mu      sync.RWMutex
	current *Config

	defaultEnvLoaded sync.Once
)

// Load reads the configuration file at path and applies environment overrides.
//
// The file may be YAML or JSON. Relative paths are resolved against the
// working directory. A .env file in the working directory is loaded once per
// process before the environment is read. Variables that are unset or empty
// never replace file values.
func Load(path string) (Config, error) {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	var cfg Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(ErrReadFile, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Join(ErrParseFile, fmt.Errorf("%s: %w", path, err))
	}

	opts := env.Options{Environment: definedEnv()}
	for _, target := range []any{&cfg.HTTP, &cfg.Readiness} {
		if err := env.ParseWithOptions(target, opts); err != nil {
			return Config{}, errors.Join(ErrParsingConfig, err)
		}
	}
	var o overrides
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	o.apply(&cfg)

	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}
	return cfg, nil
}

// Init loads the configuration once per process. Later calls are no-ops
// until Reset.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if current != nil {
		return nil
	}
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	current = &cfg
	return nil
}

// Get returns the configuration stored by Init.
func Get() (Config, error) {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return Config{}, ErrConfigNotLoaded
	}
	return *current, nil
}

// MustGet works like Get but panics if Init has not succeeded.
func MustGet() Config {
	cfg, err := Get()
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// Reset forgets the configuration stored by Init.
// It is intended for tests.
func Reset() {
	mu.Lock()
	current = nil
	mu.Unlock()
}

// LoadEnv loads the given .env files into the process environment.
// With no arguments it loads .env from the working directory.
// Variables already set are not overwritten.
func LoadEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// definedEnv returns the process environment without empty variables,
// so that an empty APP_PORT counts as unset.
func definedEnv() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || v == "" {
			continue
		}
		vars[k] = v
	}
	return vars
}
