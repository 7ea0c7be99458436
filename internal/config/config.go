// Package config loads the optional .formtree.yaml project file read by the
// CLI. Flag values are layered on top with Apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formtree/pkg/keys"
)

// FileName is the project file looked up in the working directory.
const FileName = ".formtree.yaml"

// Defaults for catalog lookups.
const (
	DefaultDomain     = "forms"
	DefaultLocale     = "en"
	DefaultCatalogDir = "translations"
)

// Config is the CLI project configuration.
type Config struct {
	// Source is the OpenAPI document path or URL.
	Source string `yaml:"source" mapstructure:"source"`

	Keys keys.Options `yaml:"keys" mapstructure:"keys"`

	// Suffixes lists the attributes keys are produced for.
	Suffixes []string `yaml:"suffixes" mapstructure:"suffixes"`

	Catalog Catalog `yaml:"catalog" mapstructure:"catalog"`

	// Presets points at a preset transformer document.
	Presets string `yaml:"presets" mapstructure:"presets"`

	// HTTPTimeout enables URL sources; zero keeps them disabled.
	HTTPTimeout time.Duration `yaml:"httpTimeout" mapstructure:"httpTimeout"`
}

// Catalog locates translation files.
type Catalog struct {
	Dir           string `yaml:"dir" mapstructure:"dir"`
	Domain        string `yaml:"domain" mapstructure:"domain"`
	Locale        string `yaml:"locale" mapstructure:"locale"`
	DefaultLocale string `yaml:"defaultLocale" mapstructure:"defaultLocale"`
	Sanitize      bool   `yaml:"sanitize" mapstructure:"sanitize"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Keys: keys.DefaultOptions(),
		Catalog: Catalog{
			Dir:           DefaultCatalogDir,
			Domain:        DefaultDomain,
			Locale:        DefaultLocale,
			DefaultLocale: DefaultLocale,
		},
	}
}

// Load reads path over Default. A missing file is not an error when
// optional is set.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))
	return cfg.normalize(), nil
}

// Apply decodes overrides (typically the flags a user set) onto cfg. Keys use
// the same names as the YAML file; nested sections are maps.
func (c Config) Apply(overrides map[string]any) (Config, error) {
	if len(overrides) == 0 {
		return c, nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &c,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return c, fmt.Errorf("config: overrides: %w", err)
	}
	if err := decoder.Decode(overrides); err != nil {
		return c, fmt.Errorf("config: overrides: %w", err)
	}
	return c.normalize(), nil
}

func (c *Config) resolvePaths(base string) {
	if base == "" || base == "." {
		return
	}
	if c.Catalog.Dir != "" && !filepath.IsAbs(c.Catalog.Dir) {
		c.Catalog.Dir = filepath.Join(base, c.Catalog.Dir)
	}
	if c.Presets != "" && !filepath.IsAbs(c.Presets) {
		c.Presets = filepath.Join(base, c.Presets)
	}
	if c.Source != "" && !isURL(c.Source) && !filepath.IsAbs(c.Source) {
		c.Source = filepath.Join(base, c.Source)
	}
}

func (c Config) normalize() Config {
	c.Keys = c.Keys.Normalize()
	c.Source = strings.TrimSpace(c.Source)
	if strings.TrimSpace(c.Catalog.Domain) == "" {
		c.Catalog.Domain = DefaultDomain
	}
	if strings.TrimSpace(c.Catalog.Dir) == "" {
		c.Catalog.Dir = DefaultCatalogDir
	}
	if strings.TrimSpace(c.Catalog.DefaultLocale) == "" {
		c.Catalog.DefaultLocale = DefaultLocale
	}
	if strings.TrimSpace(c.Catalog.Locale) == "" {
		c.Catalog.Locale = c.Catalog.DefaultLocale
	}
	return c
}

func isURL(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}
