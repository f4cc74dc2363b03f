package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by LoadConfig
const FileName = "beanmaker.yaml"

// DefaultClass is the class generated when neither flags nor config name one
const DefaultClass = "org.dcw.FooBar"

// ErrConfigNotFound is returned by LoadConfig when no beanmaker.yaml exists
// in the start directory or any of its parents.
var ErrConfigNotFound = errors.New("no " + FileName + " found")

// Config represents the beanmaker.yaml configuration file
type Config struct {
	// Fields is the default fields file path, relative to the config file
	Fields  string `yaml:"fields,omitempty"`
	Class   string `yaml:"class"`
	Getters bool   `yaml:"getters"`
	Setters bool   `yaml:"setters"`
	Javadoc bool   `yaml:"javadoc"`
	Author  string `yaml:"author,omitempty"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadConfig loads beanmaker.yaml from the current directory or a parent directory
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return loadConfigFromDir(dir)
}

// LoadConfigFromPath loads the configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if cfg.Fields != "" && !filepath.IsAbs(cfg.Fields) {
		cfg.Fields = filepath.Join(filepath.Dir(path), cfg.Fields)
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields
func applyDefaults(cfg *Config) {
	if cfg.Class == "" {
		cfg.Class = DefaultClass
	}
	if cfg.Author == "" {
		cfg.Author = AmbientAuthor()
	}
}

// AmbientAuthor returns the name of the user running the generator
func AmbientAuthor() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(key); name != "" {
			return name
		}
	}
	return "unknown"
}

// loadConfigFromDir searches for beanmaker.yaml in the given directory and its parents
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			cfg, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return cfg, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("%w in %s or any parent directory", ErrConfigNotFound, startDir)
}
