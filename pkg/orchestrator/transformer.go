package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formtree/pkg/keys"
	"github.com/goliatone/go-formtree/pkg/model"
)

// Transformer mutates a FormModel after it is built and before keys are
// derived. Implementations can relabel fields or pin translation keys.
type Transformer interface {
	Transform(ctx context.Context, form *model.FormModel) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *model.FormModel) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *model.FormModel) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// PresetTransformer applies declarative overrides loaded from a YAML or JSON
// document. Field paths use the same notation as key entries, with `[]`
// stepping into collection items:
//
//	uiHints:
//	  labelKey: checkout.title
//	fields:
//	  owner.email:
//	    label: Contact email
//	    keys:
//	      help: checkout.owner.email.help
//	  vaccinations[].date:
//	    placeholder: YYYY-MM-DD
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Metadata map[string]string      `yaml:"metadata" json:"metadata"`
	UIHints  map[string]string      `yaml:"uiHints" json:"uiHints"`
	Fields   map[string]fieldPreset `yaml:"fields" json:"fields"`
}

type fieldPreset struct {
	Label       string            `yaml:"label" json:"label"`
	Description string            `yaml:"description" json:"description"`
	Placeholder string            `yaml:"placeholder" json:"placeholder"`
	Keys        map[string]string `yaml:"keys" json:"keys"`
	Metadata    map[string]string `yaml:"metadata" json:"metadata"`
	UIHints     map[string]string `yaml:"uiHints" json:"uiHints"`
}

// NewPresetTransformer parses a preset document. JSON input is accepted as a
// subset of YAML.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	for path, preset := range document.Fields {
		for suffix := range preset.Keys {
			if !knownSuffix(suffix) {
				return nil, fmt.Errorf("preset transformer: field %q: unknown key suffix %q", path, suffix)
			}
		}
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from fsys.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the presets onto form. Unknown field paths are an error.
func (t *PresetTransformer) Transform(ctx context.Context, form *model.FormModel) error {
	if form == nil {
		return errors.New("preset transformer: form model is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	form.Metadata = mergeStringMap(form.Metadata, t.document.Metadata)
	form.UIHints = mergeStringMap(form.UIHints, t.document.UIHints)

	for path, preset := range t.document.Fields {
		field := form.FieldByPath(path)
		if field == nil {
			return fmt.Errorf("preset transformer: field %q not found", path)
		}
		applyFieldPreset(field, preset)
	}
	return nil
}

func applyFieldPreset(field *model.Field, preset fieldPreset) {
	if preset.Label != "" {
		field.Label = preset.Label
	}
	if preset.Description != "" {
		field.Description = preset.Description
	}
	if preset.Placeholder != "" {
		field.Placeholder = preset.Placeholder
	}
	field.Metadata = mergeStringMap(field.Metadata, preset.Metadata)
	field.UIHints = mergeStringMap(field.UIHints, preset.UIHints)
	for suffix, key := range preset.Keys {
		if key = strings.TrimSpace(key); key == "" {
			continue
		}
		field.UIHints = mergeStringMap(field.UIHints, map[string]string{keys.HintFor(suffix): key})
	}
}

func knownSuffix(suffix string) bool {
	switch suffix {
	case keys.SuffixLabel, keys.SuffixHelp, keys.SuffixPlaceholder, keys.SuffixDescription:
		return true
	}
	return false
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
