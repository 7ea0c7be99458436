package model

import "strings"

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeArray   FieldType = "array"
	FieldTypeObject  FieldType = "object"
)

// Field models an individual input inside a generated form. Objects carry
// their properties in Nested; arrays describe every item through Items.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Format      string            `json:"format,omitempty"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Enum        []any             `json:"enum,omitempty"`
	Nested      []Field           `json:"nested,omitempty"`
	Items       *Field            `json:"items,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty"`
}

// ItemsSuffix marks a step into a collection's item in a field path, as in
// "vaccinations[].date".
const ItemsSuffix = "[]"

// CutItems strips every trailing ItemsSuffix from a path segment and reports
// how many there were: "matrix[][]" gives ("matrix", 2).
func CutItems(segment string) (string, int) {
	depth := 0
	for {
		name, ok := strings.CutSuffix(segment, ItemsSuffix)
		if !ok {
			return segment, depth
		}
		segment = name
		depth++
	}
}

// HasChildren reports whether the field contains nested inputs.
func (f Field) HasChildren() bool {
	return len(f.Nested) > 0 || f.Items != nil
}

// IsCollection reports an array field; its children hang off Items.
func (f Field) IsCollection() bool {
	return f.Type == FieldTypeArray || f.Items != nil
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty"`
}

// FieldByPath returns the field addressed by a dotted path, or nil. Each
// ItemsSuffix on a segment steps one level into a collection's item, so
// "matrix[][]" is the item of matrix's item.
func (m *FormModel) FieldByPath(path string) *Field {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	var current *Field
	scope := m.Fields
	for _, segment := range strings.Split(path, ".") {
		name, depth := CutItems(segment)
		current = nil
		for i := range scope {
			if scope[i].Name == name {
				current = &scope[i]
				break
			}
		}
		if current == nil {
			return nil
		}
		for ; depth > 0; depth-- {
			if current.Items == nil {
				return nil
			}
			current = current.Items
		}
		scope = current.Nested
	}
	return current
}
