package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the working directory when no explicit
// configuration path is given.
const ConfigFileName = "plain.yml"

// DefaultPrompt is shown before each interactive line.
const DefaultPrompt = "Plain> "

// Config models plain.yml.
type Config struct {
	Path         string `yaml:"-"`
	Prompt       string `yaml:"prompt"`
	Color        bool   `yaml:"color"`
	StrictLexing bool   `yaml:"strict_lexing"`
	LoopLimit    int64  `yaml:"loop_limit"`
	LogLevel     string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Prompt:   DefaultPrompt,
		Color:    true,
		LogLevel: "warning",
	}
}

// LoadConfig reads configuration from path. An empty path means
// ConfigFileName in the working directory, which may be absent.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = ConfigFileName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: resolve %s", path)
	}
	file, err := os.Open(abs)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrap(err, "config")
	}
	defer file.Close()

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "config: parse %s", abs)
	}
	cfg.Path = abs
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config: %s", abs)
	}
	log.Infof("loaded configuration from %s", abs)
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.LoopLimit < 0 {
		result = multierror.Append(result, fmt.Errorf("loop_limit must not be negative (got %d)", c.LoopLimit))
	}
	if strings.TrimSpace(c.LogLevel) != "" {
		if _, err := log.ValidateLevel(c.LogLevel); err != nil {
			result = multierror.Append(result, fmt.Errorf("log_level: %w", err))
		}
	}
	return result.ErrorOrNil()
}
