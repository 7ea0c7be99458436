package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

var catalogExtensions = map[string]struct{}{
	".yaml": {},
	".yml":  {},
	".json": {},
}

// FileName returns the conventional catalog file name for domain and locale.
func FileName(domain, locale string) string {
	return domain + "." + CanonicalLocale(locale) + ".yaml"
}

// ParseFileName splits "<domain>.<locale>.<ext>" into its parts. ok is false
// for names that do not follow the convention.
func ParseFileName(name string) (domain, locale string, ok bool) {
	base := path.Base(name)
	ext := path.Ext(base)
	if _, known := catalogExtensions[strings.ToLower(ext)]; !known {
		return "", "", false
	}
	stem := strings.TrimSuffix(base, ext)
	idx := strings.LastIndex(stem, ".")
	if idx <= 0 || idx == len(stem)-1 {
		return "", "", false
	}
	return stem[:idx], CanonicalLocale(stem[idx+1:]), true
}

// LoadFS builds a catalog from every catalog file found in fsys.
func LoadFS(fsys fs.FS, options ...Option) (*Catalog, error) {
	c := New(options...)
	if err := c.LoadFS(fsys); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFS walks fsys and merges every catalog file into c. A key defined twice
// for the same locale, within one load, is an error.
func (c *Catalog) LoadFS(fsys fs.FS) error {
	if fsys == nil {
		return nil
	}

	origin := make(map[string]string)
	return fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		domain, locale, ok := ParseFileName(name)
		if !ok {
			return nil
		}
		if c.domain != "" && domain != c.domain {
			c.logger.Debug("catalog: skipping file from other domain", "file", name, "domain", domain)
			return nil
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", name, err)
		}
		messages, err := Parse(data)
		if err != nil {
			return fmt.Errorf("catalog: parse %s: %w", name, err)
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		for key, message := range messages {
			id := locale + "\x00" + key
			if previous, dup := origin[id]; dup {
				return fmt.Errorf("catalog: key %q for locale %q defined in %s and %s", key, locale, previous, name)
			}
			origin[id] = name
			c.addLocked(locale, key, message)
		}
		c.logger.Debug("catalog: loaded file", "file", name, "locale", locale, "messages", len(messages))
		return nil
	})
}

// Parse decodes a YAML or JSON document into flat dotted keys. Scalar
// mapping keys such as "404" are used as text; lists, non-scalar keys and a
// key spelled both nested and dotted are errors.
func Parse(data []byte) (map[string]string, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	if doc == nil {
		return out, nil
	}
	if err := flatten("", doc, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(full string, raw any, out map[string]string) error {
	switch v := raw.(type) {
	case map[string]any:
		for key, child := range v {
			if err := flatten(join(full, key), child, out); err != nil {
				return err
			}
		}
		return nil
	case map[any]any:
		for key, child := range v {
			name, ok := scalarKey(key)
			if !ok {
				return fmt.Errorf("key under %q is not a scalar: %v", full, key)
			}
			if err := flatten(join(full, name), child, out); err != nil {
				return err
			}
		}
		return nil
	}

	if full == "" {
		return fmt.Errorf("document root must be a mapping, got %T", raw)
	}
	if _, dup := out[full]; dup {
		return fmt.Errorf("key %q is defined more than once", full)
	}
	switch v := raw.(type) {
	case []any:
		return fmt.Errorf("key %q holds a list", full)
	case nil:
		out[full] = ""
	case string:
		out[full] = v
	default:
		out[full] = fmt.Sprint(v)
	}
	return nil
}

func scalarKey(key any) (string, bool) {
	switch k := key.(type) {
	case string:
		return k, true
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(k), true
	}
	return "", false
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
