package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	formtree "github.com/goliatone/go-formtree"
	"github.com/goliatone/go-formtree/pkg/model"
	pkgopenapi "github.com/goliatone/go-formtree/pkg/openapi"
)

// Violation is one unsupported x-formtree hint.
type Violation struct {
	Location string
	Message  string
}

func (v Violation) String() string {
	return v.Location + " -> " + v.Message
}

// Lint reports x-formtree hints the key layer would ignore, sorted by
// location.
func (s *Session) Lint(ctx context.Context) ([]Violation, error) {
	src, err := s.source()
	if err != nil {
		return nil, err
	}

	loaderOpts := []pkgopenapi.LoaderOption{}
	if s.Config.HTTPTimeout > 0 {
		loaderOpts = append(loaderOpts, pkgopenapi.WithHTTPFallback(s.Config.HTTPTimeout))
	}
	doc, err := formtree.NewLoader(loaderOpts...).Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("cli: lint: %w", err)
	}
	operations, err := formtree.NewParser(pkgopenapi.WithValidation(false)).Operations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("cli: lint: %w", err)
	}

	var result []Violation
	for id, op := range operations {
		base := []string{"operation", id}
		result = append(result, lintExtensions(base, op.Extensions)...)
		result = append(result, lintSchema(append(base, "requestBody"), op.RequestBody)...)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Location == result[j].Location {
			return result[i].Message < result[j].Message
		}
		return result[i].Location < result[j].Location
	})
	return result, nil
}

func lintSchema(path []string, schema pkgopenapi.Schema) []Violation {
	result := lintExtensions(path, schema.Extensions)

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		result = append(result, lintSchema(appendPath(path, "properties."+name), schema.Properties[name])...)
	}
	if schema.Items != nil {
		result = append(result, lintSchema(appendPath(path, "items"), *schema.Items)...)
	}
	return result
}

func lintExtensions(path []string, extensions map[string]any) []Violation {
	value, ok := extensions[model.ExtensionNamespace]
	if !ok {
		return nil
	}
	nested, ok := value.(map[string]any)
	if !ok {
		return []Violation{{
			Location: formatLocation(path),
			Message:  fmt.Sprintf("%s must be an object, found %T", model.ExtensionNamespace, value),
		}}
	}

	var result []Violation
	for key, hint := range nested {
		location := formatLocation(appendPath(path, key))
		if !model.IsAllowedHintKey(key) {
			result = append(result, Violation{
				Location: location,
				Message:  fmt.Sprintf("unsupported hint %q (supported: %s)", key, strings.Join(model.AllowedHintKeys(), ", ")),
			})
			continue
		}
		if _, ok := model.CanonicalizeExtensionValue(hint); !ok {
			result = append(result, Violation{
				Location: location,
				Message:  fmt.Sprintf("value for %q must be a non-empty string, number, or boolean (got %T)", key, hint),
			})
		}
	}
	return result
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
