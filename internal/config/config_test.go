package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formtree/pkg/keys"
)

func TestLoad_MissingOptionalFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName), true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(`
source: api/openapi.yaml
keys:
  separator: /
suffixes: [label, help]
catalog:
  dir: i18n
  locale: es_MX
presets: presets.yaml
httpTimeout: 5s
`), 0o644))

	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "api/openapi.yaml"), cfg.Source)
	assert.Equal(t, keys.Options{Root: "form", Separator: "/", ChildrenKey: "children", PrototypeKey: "prototype"}, cfg.Keys)
	assert.Equal(t, []string{"label", "help"}, cfg.Suffixes)
	assert.Equal(t, Catalog{
		Dir:           filepath.Join(dir, "i18n"),
		Domain:        DefaultDomain,
		Locale:        "es_MX",
		DefaultLocale: DefaultLocale,
	}, cfg.Catalog)
	assert.Equal(t, filepath.Join(dir, "presets.yaml"), cfg.Presets)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestLoad_KeepsURLSources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("source: https://example.com/openapi.yaml\n"), 0o644))

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/openapi.yaml", cfg.Source)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("keys: [unclosed"), 0o644))

	_, err := Load(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestApply_Overrides(t *testing.T) {
	cfg, err := Default().Apply(map[string]any{
		"source":      "petstore.yaml",
		"suffixes":    "label,placeholder",
		"httpTimeout": "250ms",
		"keys":        map[string]any{"root": "forms", "omitRoot": "false"},
		"catalog":     map[string]any{"locale": "fr", "sanitize": "true"},
	})
	require.NoError(t, err)

	assert.Equal(t, "petstore.yaml", cfg.Source)
	assert.Equal(t, []string{"label", "placeholder"}, cfg.Suffixes)
	assert.Equal(t, 250*time.Millisecond, cfg.HTTPTimeout)
	assert.Equal(t, "forms", cfg.Keys.Root)
	assert.Equal(t, ".", cfg.Keys.Separator)
	assert.Equal(t, "fr", cfg.Catalog.Locale)
	assert.Equal(t, DefaultDomain, cfg.Catalog.Domain)
	assert.True(t, cfg.Catalog.Sanitize)
}

func TestApply_RejectsUnknownKeys(t *testing.T) {
	_, err := Default().Apply(map[string]any{"theme": "dark"})
	require.Error(t, err)
}

func TestApply_NoOverrides(t *testing.T) {
	cfg, err := Default().Apply(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApply_OmitRootKeepsDefaultRoot(t *testing.T) {
	cfg, err := Default().Apply(map[string]any{
		"keys": map[string]any{"root": "", "omitRoot": true},
	})
	require.NoError(t, err)
	assert.True(t, cfg.Keys.OmitRoot)
	assert.Equal(t, keys.DefaultRoot, cfg.Keys.Root)
}
