package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-formtree/pkg/catalog"
	"github.com/goliatone/go-formtree/pkg/keys"
	"github.com/goliatone/go-formtree/pkg/prompt"
)

// ExtractResult reports what Extract wrote.
type ExtractResult struct {
	File    string
	Added   []string
	Skipped []string
}

// Extract adds the keys of operationID that have no message for the
// configured locale to `<dir>/<domain>.<locale>.yaml`. New keys get the
// field's source text, or the answer typed in interactive mode. Keys without
// any text are reported as skipped. Existing messages are never changed.
func (s *Session) Extract(ctx context.Context, operationID string, interactive bool) (ExtractResult, error) {
	locale := catalog.CanonicalLocale(s.Config.Catalog.Locale)
	result := ExtractResult{
		File: filepath.Join(s.Config.Catalog.Dir, catalog.FileName(s.Config.Catalog.Domain, locale)),
	}

	orch, err := s.Orchestrator(nil)
	if err != nil {
		return result, err
	}
	req, err := s.request(operationID)
	if err != nil {
		return result, err
	}
	entries, err := orch.Keys(ctx, req)
	if err != nil {
		return result, err
	}

	current, err := s.Catalog()
	if err != nil {
		return result, err
	}
	missing := missingEntries(current, locale, entries)
	if len(missing) == 0 {
		s.Logger.Info("cli: nothing to extract", "locale", locale, "operation", operationID)
		return result, nil
	}

	answers := make(map[string]string, len(missing))
	if interactive {
		answers, err = prompt.NewCollector(s.Prompt).Collect(ctx, locale, missing)
		if err != nil && !errors.Is(err, prompt.ErrAborted) {
			return result, err
		}
		if errors.Is(err, prompt.ErrAborted) {
			s.Logger.Warn("cli: interactive extraction aborted, keeping answers so far", "answers", len(answers))
		}
	} else {
		for _, entry := range missing {
			if entry.Fallback != "" {
				answers[entry.Key] = entry.Fallback
			}
		}
	}

	file, err := readCatalogFile(result.File, locale)
	if err != nil {
		return result, err
	}
	for _, entry := range missing {
		message, ok := answers[entry.Key]
		if !ok {
			result.Skipped = append(result.Skipped, entry.Key)
			continue
		}
		file.Add(locale, entry.Key, message)
		result.Added = append(result.Added, entry.Key)
	}
	if len(result.Added) == 0 {
		return result, nil
	}

	data, err := file.Export(locale)
	if err != nil {
		return result, err
	}
	if err := os.MkdirAll(filepath.Dir(result.File), 0o755); err != nil {
		return result, fmt.Errorf("cli: create catalog dir: %w", err)
	}
	if err := os.WriteFile(result.File, data, 0o644); err != nil {
		return result, fmt.Errorf("cli: write %s: %w", result.File, err)
	}
	s.Logger.Info("cli: catalog updated", "file", result.File, "added", len(result.Added), "skipped", len(result.Skipped))
	return result, nil
}

// missingEntries keeps the first entry of every key lacking an exact-locale
// message.
func missingEntries(c *catalog.Catalog, locale string, entries []keys.KeyEntry) []keys.KeyEntry {
	all := make([]string, 0, len(entries))
	byKey := make(map[string]keys.KeyEntry, len(entries))
	for _, entry := range entries {
		if _, seen := byKey[entry.Key]; seen {
			continue
		}
		byKey[entry.Key] = entry
		all = append(all, entry.Key)
	}

	missing := c.Missing(locale, all)
	out := make([]keys.KeyEntry, 0, len(missing))
	for _, key := range missing {
		out = append(out, byKey[key])
	}
	return out
}

// readCatalogFile loads the single file Extract rewrites. The directory-wide
// catalog is not used so messages from other files are not copied into it.
func readCatalogFile(path, locale string) (*catalog.Catalog, error) {
	c := catalog.New()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cli: read %s: %w", path, err)
	}
	messages, err := catalog.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cli: parse %s: %w", path, err)
	}
	for key, message := range messages {
		c.Add(locale, key, message)
	}
	return c, nil
}
