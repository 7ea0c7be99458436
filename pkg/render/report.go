package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formtree/pkg/keys"
)

// DefaultReportTemplate lists every key with its source text and, when a
// translator is configured, its translation.
const DefaultReportTemplate = `{% autoescape off %}{{ title }}
{% for row in rows %}
{{ row.Key }}{% if row.Explicit %} (pinned){% endif %}
  field: {{ row.Path|default:"(form)" }} [{{ row.Suffix }}]
{% if row.Fallback %}  source: {{ row.Fallback }}
{% endif %}{% if has_translator %}  {{ locale }}: {% if row.Missing %}MISSING{% else %}{{ translate(row.Key) }}{% endif %}
{% endif %}{% endfor %}
{{ rows|length }} keys{% if has_translator %}, {{ missing }} missing{% endif %}
{% endautoescape %}`

// ReportOptions configures Report.
type ReportOptions struct {
	Title      string
	Locale     string
	Translator Translator
	// Template overrides DefaultReportTemplate (pongo2 syntax).
	Template string
}

type reportRow struct {
	keys.KeyEntry
	Missing bool
}

// Report renders entries as a plain-text key listing. The template receives
// `title`, `locale`, `rows`, `missing`, `has_translator` and a
// `translate(key)` helper bound to the configured locale.
func Report(w io.Writer, entries []keys.KeyEntry, opts ReportOptions) error {
	source := opts.Template
	if strings.TrimSpace(source) == "" {
		source = DefaultReportTemplate
	}
	tpl, err := pongo2.FromString(source)
	if err != nil {
		return fmt.Errorf("render: parse report template: %w", err)
	}

	rows := make([]reportRow, 0, len(entries))
	missing := 0
	for _, entry := range entries {
		row := reportRow{KeyEntry: entry}
		if opts.Translator != nil {
			if msg, err := opts.Translator.Translate(opts.Locale, entry.Key); err != nil || strings.TrimSpace(msg) == "" {
				row.Missing = true
				missing++
			}
		}
		rows = append(rows, row)
	}

	title := opts.Title
	if title == "" {
		title = "Translation keys"
	}

	ctx := pongo2.Context{
		"title":          title,
		"locale":         opts.Locale,
		"rows":           rows,
		"missing":        missing,
		"has_translator": opts.Translator != nil,
		"translate":      translateFunc(opts.Translator, opts.Locale),
	}
	if err := tpl.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("render: execute report template: %w", err)
	}
	return nil
}

func translateFunc(t Translator, locale string) func(key string) string {
	return func(key string) string {
		key = strings.TrimSpace(key)
		if key == "" || t == nil {
			return key
		}
		msg, err := t.Translate(locale, key)
		if err != nil || strings.TrimSpace(msg) == "" {
			return key
		}
		return msg
	}
}
