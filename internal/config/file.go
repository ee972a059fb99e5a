package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/mateconpizza/bma/internal/sys"
	"github.com/mateconpizza/bma/internal/sys/files"
)

var ErrInvalidFormat = errors.New("invalid output format")

// File holds the configuration read from the YAML config file.
type File struct {
	Browser string `yaml:"browser"`  // Force a browser family
	Format  string `yaml:"format"`   // plain|json|pretty
	TempDir string `yaml:"temp_dir"` // Directory for the store copy
}

// Load reads the YAML config file, a missing file returns an empty config.
func Load(p string) (*File, error) {
	f := &File{}
	if p == "" || !files.Exists(p) {
		slog.Debug("config file not found", "path", p)
		return f, nil
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", p, err)
	}

	slog.Debug("config file loaded", "path", p)

	return f, nil
}

// Apply merges the config file, environment and flags into the app config.
// Flags take precedence over environment, environment over the file.
func (c *AppConfig) Apply(f *File) error {
	if f != nil {
		c.Browser = pick(f.Browser, c.Browser)
		c.Format = pick(f.Format, c.Format)
		c.TempDir = pick(f.TempDir, c.TempDir)
	}

	c.Browser = pick(sys.Env(c.Env.Browser, ""), c.Browser)
	c.Format = pick(sys.Env(c.Env.Format, ""), c.Format)

	if c.Flags != nil {
		c.Browser = pick(c.Flags.Browser, c.Browser)
		c.Format = pick(c.Flags.Format, c.Format)
		if c.Flags.JSON {
			c.Format = FormatJSON
		}
	}

	switch c.Format {
	case FormatPlain, FormatJSON, FormatPretty:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
}

// pick returns s if not empty, otherwise def.
func pick(s, def string) string {
	if s != "" {
		return s
	}

	return def
}
