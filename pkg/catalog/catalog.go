package catalog

import (
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// ErrMissingTranslation is returned by Translate when no locale in the
// fallback chain knows the key.
var ErrMissingTranslation = errors.New("catalog: missing translation")

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLocale sets the last locale consulted by Translate.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) {
		c.defaultLocale = CanonicalLocale(locale)
	}
}

// WithDomain restricts LoadFS to files of a single domain ("forms").
func WithDomain(domain string) Option {
	return func(c *Catalog) {
		c.domain = strings.TrimSpace(domain)
	}
}

// WithSanitizer strips markup from every stored message.
func WithSanitizer() Option {
	return func(c *Catalog) {
		c.policy = bluemonday.StrictPolicy()
	}
}

// WithLogger routes load diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Catalog maps locale to flat key to message. Reads and Add are safe for
// concurrent use.
type Catalog struct {
	mu            sync.RWMutex
	messages      map[string]map[string]string
	defaultLocale string
	domain        string
	policy        *bluemonday.Policy
	logger        *slog.Logger
}

// New returns an empty catalog.
func New(options ...Option) *Catalog {
	c := &Catalog{
		messages: make(map[string]map[string]string),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// DefaultLocale returns the configured default locale.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Add stores message under key for locale, replacing any previous value.
func (c *Catalog) Add(locale, key, message string) {
	locale = CanonicalLocale(locale)
	key = strings.TrimSpace(key)
	if locale == "" || key == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.addLocked(locale, key, message)
}

func (c *Catalog) addLocked(locale, key, message string) {
	bucket, ok := c.messages[locale]
	if !ok {
		bucket = make(map[string]string)
		c.messages[locale] = bucket
	}
	bucket[key] = c.sanitize(message)
}

func (c *Catalog) sanitize(message string) string {
	if c.policy == nil {
		return message
	}
	return html.UnescapeString(c.policy.Sanitize(message))
}

// Lookup returns the message stored for exactly locale and key.
func (c *Catalog) Lookup(locale, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	msg, ok := c.messages[CanonicalLocale(locale)][key]
	return msg, ok
}

// Translate resolves key for locale, falling back to the base language and
// then to the default locale. Args of type map[string]any or
// map[string]string replace %name% placeholders.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrMissingTranslation)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range fallbackChain(locale, c.defaultLocale) {
		if msg, ok := c.messages[candidate][key]; ok {
			return expand(msg, args), nil
		}
	}
	return "", fmt.Errorf("%w: %q (locale %q)", ErrMissingTranslation, key, locale)
}

// Missing returns the keys that have no message in exactly locale, in input
// order without duplicates.
func (c *Catalog) Missing(locale string, keys []string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	bucket := c.messages[CanonicalLocale(locale)]
	seen := make(map[string]struct{}, len(keys))
	var out []string
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := bucket[key]; !ok {
			out = append(out, key)
		}
	}
	return out
}

// Locales lists the locales holding at least one message, sorted.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.messages))
	for locale, bucket := range c.messages {
		if len(bucket) > 0 {
			out = append(out, locale)
		}
	}
	sort.Strings(out)
	return out
}

// Len returns the number of messages stored for locale.
func (c *Catalog) Len(locale string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages[CanonicalLocale(locale)])
}

func expand(message string, args []any) string {
	for _, arg := range args {
		switch params := arg.(type) {
		case map[string]any:
			for name, value := range params {
				message = strings.ReplaceAll(message, "%"+name+"%", fmt.Sprint(value))
			}
		case map[string]string:
			for name, value := range params {
				message = strings.ReplaceAll(message, "%"+name+"%", value)
			}
		}
	}
	return message
}
