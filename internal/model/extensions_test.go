package model

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-formtree/pkg/openapi"
)

func TestHintsFromExtensions(t *testing.T) {
	got := HintsFromExtensions(map[string]any{
		ExtensionNamespace: map[string]any{
			"labelKey": " pets.name ",
			"order":    float64(2),
			"hidden":   true,
			"blank":    "  ",
			"nested":   map[string]any{"a": "b"},
		},
		"x-other": map[string]any{"labelKey": "ignored"},
	})

	want := map[string]string{"labelKey": "pets.name", "order": "2", "hidden": "true"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if HintsFromExtensions(nil) != nil {
		t.Fatalf("expected nil hints without extensions")
	}
}

func TestAllowedHintKeys(t *testing.T) {
	want := []string{"descriptionKey", "helpText", "helpTextKey", "labelKey", "placeholder", "placeholderKey"}
	if diff := cmp.Diff(want, AllowedHintKeys()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if IsAllowedHintKey("widget") {
		t.Fatalf("expected widget to be rejected")
	}
}

func TestBuilder_PlaceholderHintFillsField(t *testing.T) {
	op := pkgopenapi.Operation{
		ID: "signup",
		RequestBody: pkgopenapi.Schema{
			Type: "object",
			Properties: map[string]pkgopenapi.Schema{
				"email": {Type: "string", Extensions: map[string]any{
					ExtensionNamespace: map[string]any{"placeholder": "you@example.com"},
				}},
			},
		},
	}

	form, err := New(Options{}).Build(op)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	field := form.Fields[0]
	if field.Placeholder != "you@example.com" || field.UIHints != nil {
		t.Fatalf("expected placeholder moved out of hints, got %+v", field)
	}
}

func TestValidateForm(t *testing.T) {
	cases := []struct {
		name string
		form FormModel
		want string
	}{
		{"missing id", FormModel{}, "operation id is required"},
		{"blank name", FormModel{OperationID: "op", Fields: []Field{{Name: " "}}}, "field name is required"},
		{
			"duplicate",
			FormModel{OperationID: "op", Fields: []Field{{Name: "a", Nested: []Field{{Name: "b"}, {Name: "b"}}}}},
			`duplicate field "a.b"`,
		},
		{"dotted name", FormModel{OperationID: "op", Fields: []Field{{Name: "a.b"}}}, "path separator"},
		{
			"blank item child",
			FormModel{OperationID: "op", Fields: []Field{{Name: "tags", Items: &Field{Name: "tagsItem", Nested: []Field{{}}}}}},
			`under "tags[]"`,
		},
		{
			"duplicate inside nested collection",
			FormModel{OperationID: "op", Fields: []Field{{
				Name: "matrix",
				Items: &Field{Name: "row", Items: &Field{
					Name:   "cell",
					Nested: []Field{{Name: "value"}, {Name: "value"}},
				}},
			}}},
			`duplicate field "matrix[][].value"`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateForm(tc.form)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}

	ok := FormModel{OperationID: "op", Fields: []Field{{Name: "a", Items: &Field{Name: "aItem", Nested: []Field{{Name: "b"}}}}}}
	if err := ValidateForm(ok); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestCutItems(t *testing.T) {
	cases := map[string]struct {
		name  string
		depth int
	}{
		"tags":       {"tags", 0},
		"tags[]":     {"tags", 1},
		"matrix[][]": {"matrix", 2},
		"[]":         {"", 1},
	}
	for in, want := range cases {
		name, depth := CutItems(in)
		if name != want.name || depth != want.depth {
			t.Fatalf("CutItems(%q) = (%q, %d), want (%q, %d)", in, name, depth, want.name, want.depth)
		}
	}
}
