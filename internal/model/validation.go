package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errOperationIDMissing = errors.New("model builder: operation id is required")
	errFieldNameMissing   = errors.New("model builder: field name is required")
)

// ValidateForm checks that every field can be addressed by a key path: names
// are present, unique among siblings and free of the path separators.
func ValidateForm(form FormModel) error {
	if strings.TrimSpace(form.OperationID) == "" {
		return errOperationIDMissing
	}
	return validateFields(form.Fields, "")
}

func validateFields(fields []Field, parent string) error {
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if err := validateName(field.Name, parent); err != nil {
			return err
		}
		if _, dup := seen[field.Name]; dup {
			return fmt.Errorf("model builder: duplicate field %q", joinName(parent, field.Name))
		}
		seen[field.Name] = struct{}{}

		if err := validateChildren(field, joinName(parent, field.Name)); err != nil {
			return err
		}
	}
	return nil
}

// validateChildren descends through Items, one ItemsSuffix per level, until
// it reaches the fields nested under the innermost item.
func validateChildren(field Field, path string) error {
	for field.Items != nil {
		field = *field.Items
		path += ItemsSuffix
	}
	return validateFields(field.Nested, path)
}

func validateName(name, parent string) error {
	if strings.TrimSpace(name) == "" {
		if parent == "" {
			return errFieldNameMissing
		}
		return fmt.Errorf("%w under %q", errFieldNameMissing, parent)
	}
	if strings.Contains(name, ".") || strings.Contains(name, "[]") {
		return fmt.Errorf("model builder: field %q contains a path separator", joinName(parent, name))
	}
	return nil
}

func joinName(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
