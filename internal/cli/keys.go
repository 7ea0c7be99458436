package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formtree/pkg/keys"
	"github.com/goliatone/go-formtree/pkg/render"
)

// Output formats accepted by WriteKeys.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatReport   = "report"
	FormatMarkdown = "markdown"
)

// Formats lists the supported key output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatReport, FormatMarkdown}

// Operations prints the operation ids of the configured document.
func (s *Session) Operations(ctx context.Context) error {
	orch, err := s.Orchestrator(nil)
	if err != nil {
		return err
	}
	req, err := s.request("")
	if err != nil {
		return err
	}
	ids, err := orch.OperationIDs(ctx, req)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(s.Stdout, id); err != nil {
			return err
		}
	}
	return nil
}

// WriteKeys prints the translation keys of operationID in format.
func (s *Session) WriteKeys(ctx context.Context, operationID, format string) error {
	var translations render.Translator
	if format == FormatReport {
		c, err := s.Catalog()
		if err != nil {
			return err
		}
		translations = c
	}

	orch, err := s.Orchestrator(nil)
	if err != nil {
		return err
	}
	req, err := s.request(operationID)
	if err != nil {
		return err
	}
	entries, err := orch.Keys(ctx, req)
	if err != nil {
		return err
	}
	s.Logger.Debug("cli: keys derived", "operation", operationID, "count", len(entries))

	switch format {
	case "", FormatText:
		return writeText(s.Stdout, entries)
	case FormatJSON:
		enc := json.NewEncoder(s.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case FormatYAML:
		enc := yaml.NewEncoder(s.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case FormatReport:
		return render.Report(s.Stdout, entries, render.ReportOptions{
			Title:      operationID,
			Locale:     s.Config.Catalog.Locale,
			Translator: translations,
		})
	case FormatMarkdown:
		return writeMarkdown(s.Stdout, operationID, entries)
	default:
		return fmt.Errorf("cli: unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

func writeText(w io.Writer, entries []keys.KeyEntry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, entry.Key); err != nil {
			return err
		}
	}
	return nil
}
