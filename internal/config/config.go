package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/pen/catalog"
)

// ErrInvalidLogLevel is returned when log_level is not a level the logger knows.
var ErrInvalidLogLevel = errors.New("config: invalid log level")

// Config decides which pens to draw and how loudly to log while doing it.
type Config struct {
	LogLevel string         `yaml:"log_level"`
	Pens     []catalog.Spec `yaml:"pens"`
}

var levels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true,
	"error": true, "fatal": true, "panic": true, "disabled": true,
}

// Default draws the four demo pens and logs warnings only.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Pens: []catalog.Spec{
			{Size: "small", Color: "red"},
			{Size: "middle", Color: "green"},
			{Size: "big", Color: "red"},
			{Size: "small", Color: "green"},
		},
	}
}

// Load reads a YAML file over the defaults. Fields missing from the file keep
// their default value; a present but empty pens list draws nothing.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// LoadFromEnv starts from PEN_CONFIG (a YAML path) when set, otherwise from
// Default, then applies PEN_LOG_LEVEL.
func LoadFromEnv() (Config, error) { return Resolve("") }

// Resolve is LoadFromEnv with an explicit file path that wins over PEN_CONFIG.
func Resolve(path string) (Config, error) {
	if path == "" {
		path = getenv("PEN_CONFIG", "")
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return Config{}, err
		}
	}
	cfg.LogLevel = getenv("PEN_LOG_LEVEL", cfg.LogLevel)
	return cfg, cfg.Validate()
}

// Validate checks the log level and the shape of every pen spec. Whether the
// keys exist is up to the catalog.
func (c Config) Validate() error {
	if !levels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	for i, p := range c.Pens {
		if _, err := catalog.ParseSpec(p.String()); err != nil {
			return fmt.Errorf("config: pens[%d]: %w", i, err)
		}
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
