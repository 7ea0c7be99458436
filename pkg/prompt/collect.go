// Package prompt asks for translations of missing keys in the terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formtree/pkg/keys"
)

// Collector walks key entries and prompts for a message per key.
type Collector struct {
	driver Driver
	// Confirm asks once before the first prompt.
	Confirm bool
}

// NewCollector returns a Collector using driver, or survey when nil.
func NewCollector(driver Driver) *Collector {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return &Collector{driver: driver, Confirm: true}
}

// Collect prompts for every entry and returns the non-blank answers keyed by
// translation key. Each key is asked once. The entry fallback is offered as
// the default answer. When the user aborts, the answers gathered so far are
// returned with ErrAborted.
func (c *Collector) Collect(ctx context.Context, locale string, entries []keys.KeyEntry) (map[string]string, error) {
	answers := make(map[string]string)
	pending := dedupe(entries)
	if len(pending) == 0 {
		return answers, nil
	}

	if c.Confirm {
		ok, err := c.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%d keys have no %s translation. Translate them now?", len(pending), locale),
			Default: true,
		})
		if err != nil {
			return answers, err
		}
		if !ok {
			return answers, nil
		}
	}

	for _, entry := range pending {
		answer, err := c.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("[%s] %s", locale, entry.Key),
			Default: entry.Fallback,
			Help:    describe(entry),
		})
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return answers, ErrAborted
			}
			return answers, fmt.Errorf("prompt: %s: %w", entry.Key, err)
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			answers[entry.Key] = answer
		}
	}
	return answers, nil
}

func dedupe(entries []keys.KeyEntry) []keys.KeyEntry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]keys.KeyEntry, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.Key]; ok || entry.Key == "" {
			continue
		}
		seen[entry.Key] = struct{}{}
		out = append(out, entry)
	}
	return out
}

func describe(entry keys.KeyEntry) string {
	path := entry.Path
	if path == "" {
		path = "(form)"
	}
	return fmt.Sprintf("%s of field %s", entry.Suffix, path)
}
