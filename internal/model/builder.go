package model

import (
	"fmt"
	"strings"

	pkgopenapi "github.com/goliatone/go-formtree/pkg/openapi"
)

// Options configures the Builder. Zero values take defaults.
type Options struct {
	Labeler Labeler
}

// Builder converts the request body of an OpenAPI operation into a form
// model whose field nesting mirrors the schema.
type Builder struct {
	labeler Labeler
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	b := &Builder{labeler: options.Labeler}
	if b.labeler == nil {
		b.labeler = DefaultLabeler
	}
	return b
}

// Build transforms the request body of op into a FormModel.
func (b *Builder) Build(op pkgopenapi.Operation) (FormModel, error) {
	if strings.TrimSpace(op.ID) == "" {
		return FormModel{}, errOperationIDMissing
	}
	if !op.HasRequestBody() {
		return FormModel{}, fmt.Errorf("model builder: operation %q has no request body schema", op.ID)
	}
	body := op.RequestBody

	form := FormModel{
		OperationID: op.ID,
		Endpoint:    op.Path,
		Method:      strings.ToUpper(op.Method),
		Summary:     op.Summary,
		Description: op.Description,
		UIHints:     HintsFromExtensions(op.Extensions),
	}
	mergeHints(&form.UIHints, HintsFromExtensions(body.Extensions))

	fields, err := b.fieldsFromSchema("", body, true)
	if err != nil {
		return FormModel{}, err
	}
	form.Fields = fields
	if err := ValidateForm(form); err != nil {
		return FormModel{}, err
	}
	return form, nil
}

func (b *Builder) fieldsFromSchema(name string, schema pkgopenapi.Schema, required bool) ([]Field, error) {
	if schema.IsUnresolvedRef() {
		// Unresolved or recursive reference; keep the field so it still gets keys.
		field := b.newField(name, FieldTypeObject, schema, required)
		field.Metadata = map[string]string{"$ref": schema.Ref}
		return []Field{field}, nil
	}

	switch schema.Type {
	case "object", "":
		return b.fieldsFromObject(name, schema, required)
	case "array":
		field, err := b.fieldFromArray(name, schema, required)
		if err != nil {
			return nil, err
		}
		return []Field{field}, nil
	default:
		field := b.newField(name, mapType(schema.Type), schema, required)
		field.Format = schema.Format
		if len(schema.Enum) > 0 {
			field.Enum = append([]any(nil), schema.Enum...)
		}
		return []Field{field}, nil
	}
}

func (b *Builder) fieldsFromObject(name string, schema pkgopenapi.Schema, required bool) ([]Field, error) {
	requiredSet := make(map[string]struct{}, len(schema.Required))
	for _, item := range schema.Required {
		requiredSet[item] = struct{}{}
	}

	var fields []Field
	for _, propName := range schema.PropertyNames() {
		_, isRequired := requiredSet[propName]
		converted, err := b.fieldsFromSchema(propName, schema.Properties[propName], isRequired)
		if err != nil {
			return nil, err
		}
		fields = append(fields, converted...)
	}

	if name == "" {
		return fields, nil
	}

	parent := b.newField(name, FieldTypeObject, schema, required)
	parent.Nested = fields
	return []Field{parent}, nil
}

func (b *Builder) fieldFromArray(name string, schema pkgopenapi.Schema, required bool) (Field, error) {
	if schema.Items == nil {
		return Field{}, fmt.Errorf("model builder: array field %q missing items", name)
	}
	nested, err := b.fieldsFromSchema(name+"Item", *schema.Items, false)
	if err != nil {
		return Field{}, err
	}

	field := b.newField(name, FieldTypeArray, schema, required)
	if len(nested) > 0 {
		item := nested[0]
		field.Items = &item
	}
	return field, nil
}

func (b *Builder) newField(name string, kind FieldType, schema pkgopenapi.Schema, required bool) Field {
	label := strings.TrimSpace(schema.Title)
	if label == "" {
		label = b.labeler(name)
	}
	hints := HintsFromExtensions(schema.Extensions)
	placeholder := hints["placeholder"]
	delete(hints, "placeholder")
	if len(hints) == 0 {
		hints = nil
	}
	return Field{
		Name:        name,
		Type:        kind,
		Required:    required,
		Label:       label,
		Placeholder: placeholder,
		Description: schema.Description,
		UIHints:     hints,
	}
}

func mapType(schemaType string) FieldType {
	switch schemaType {
	case "integer":
		return FieldTypeInteger
	case "number":
		return FieldTypeNumber
	case "boolean":
		return FieldTypeBoolean
	case "array":
		return FieldTypeArray
	case "object":
		return FieldTypeObject
	default:
		return FieldTypeString
	}
}

func mergeHints(dst *map[string]string, src map[string]string) {
	if len(src) == 0 {
		return
	}
	if *dst == nil {
		*dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		(*dst)[key] = value
	}
}
