package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formtree/pkg/keys"
	"github.com/goliatone/go-formtree/pkg/model"
)

// Localization summarises a LocalizeFormModel pass.
type Localization struct {
	Locale     string
	Translated int
	Missing    []keys.KeyEntry
}

// LocalizeFormModel translates the form summary/description and every
// field's label, description, placeholder and help text in place.
//
// Keys come from the field's `*Key` UI hints when present and are derived
// from the field tree otherwise. Once a key resolves it is recorded back in
// the matching hint so renderers can expose it. Missing translations are
// routed through opts.OnMissing; its result is only applied to attributes
// that already had text or whose key was pinned, so blank placeholders do
// not turn into raw keys.
func LocalizeFormModel(form *model.FormModel, opts Options) (Localization, error) {
	result := Localization{Locale: opts.Locale}
	if form == nil {
		return result, nil
	}

	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	entries, err := keys.BuildTrees(*form)
	if err != nil {
		return result, fmt.Errorf("render: localize %q: %w", form.OperationID, err)
	}
	targets := make(map[string]*model.Field, len(entries))
	collectTargets(form.Fields, "", targets)

	for _, entry := range opts.keyBuilder().Keys(entries, opts.suffixes()...) {
		text, ok := translate(opts.Locale, entry, opts.Translator, onMissing)
		if !ok {
			result.Missing = append(result.Missing, entry)
			logger.Debug("render: missing translation", "locale", opts.Locale, "key", entry.Key, "path", entry.Path)
			if entry.Fallback == "" && !entry.Explicit {
				continue
			}
		} else {
			result.Translated++
		}

		if entry.Path == "" {
			applyForm(form, entry, text, ok)
			continue
		}
		if field := targets[entry.Path]; field != nil {
			applyField(field, entry, text, ok)
		}
	}
	return result, nil
}

func translate(locale string, entry keys.KeyEntry, t Translator, onMissing MissingTranslationHandler) (string, bool) {
	params := []any{map[string]any{"default": entry.Fallback}}
	if t == nil {
		return onMissing(locale, entry.Key, params, ErrMissingTranslator), false
	}
	msg, err := t.Translate(locale, entry.Key)
	if err == nil && strings.TrimSpace(msg) != "" {
		return msg, true
	}
	return onMissing(locale, entry.Key, params, err), false
}

// collectTargets indexes fields by the same dotted paths keys.BuildTrees uses.
func collectTargets(fields []model.Field, prefix string, out map[string]*model.Field) {
	for i := range fields {
		field := &fields[i]
		path := field.Name
		if prefix != "" {
			path = prefix + "." + field.Name
		}
		out[path] = field
		for field.Items != nil {
			field = field.Items
			path += keys.ItemsSuffix
			out[path] = field
		}
		collectTargets(field.Nested, path, out)
	}
}

func applyForm(form *model.FormModel, entry keys.KeyEntry, text string, resolved bool) {
	switch entry.Suffix {
	case keys.SuffixLabel:
		form.Summary = text
	case keys.SuffixDescription:
		form.Description = text
	default:
		return
	}
	if resolved {
		form.UIHints = ensureMap(form.UIHints)
		form.UIHints[keys.HintFor(entry.Suffix)] = entry.Key
	}
}

func applyField(field *model.Field, entry keys.KeyEntry, text string, resolved bool) {
	switch entry.Suffix {
	case keys.SuffixLabel:
		field.Label = text
	case keys.SuffixDescription:
		field.Description = text
	case keys.SuffixPlaceholder:
		field.Placeholder = text
	case keys.SuffixHelp:
		field.UIHints = ensureMap(field.UIHints)
		field.UIHints["helpText"] = text
	default:
		return
	}
	if resolved {
		field.UIHints = ensureMap(field.UIHints)
		field.UIHints[keys.HintFor(entry.Suffix)] = entry.Key
	}
}

func ensureMap(in map[string]string) map[string]string {
	if in != nil {
		return in
	}
	return make(map[string]string)
}
