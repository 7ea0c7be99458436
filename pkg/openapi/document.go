package openapi

import (
	"errors"
	"sort"
	"strings"
)

// Document is a loaded OpenAPI payload together with the source it came from.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument copies raw and pairs it with src.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument is NewDocument for fixtures; it panics on error.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

func (d Document) Source() Source { return d.source }

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location identifies the document in logs and errors.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Operation carries what the form builder needs from an OpenAPI operation:
// identity, docs, the request body schema and x- extensions.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	RequestBody Schema
	Extensions  map[string]any
}

// NewOperation checks the identifying triple. The request body may be empty;
// operations without one simply cannot produce a form.
func NewOperation(id, method, path string, request Schema) (Operation, error) {
	switch {
	case strings.TrimSpace(id) == "":
		return Operation{}, errors.New("openapi: operation id is required")
	case method == "":
		return Operation{}, errors.New("openapi: operation method is required")
	case path == "":
		return Operation{}, errors.New("openapi: operation path is required")
	}
	return Operation{ID: id, Method: method, Path: path, RequestBody: request}, nil
}

// HasRequestBody reports whether the operation carries a form-able body.
func (o Operation) HasRequestBody() bool {
	return !o.RequestBody.IsEmpty()
}

// Schema is the part of a JSON schema that shapes a form tree: objects
// become parents through Properties and arrays become collections through
// Items. Ref is set when a reference was left unresolved or cut to stop a
// cycle.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Title       string
	Description string
	Required    []string
	Properties  map[string]Schema
	Items       *Schema
	Enum        []any
	Extensions  map[string]any
}

// IsEmpty reports a schema with neither a type, a ref nor properties.
func (s Schema) IsEmpty() bool {
	return s.Type == "" && s.Ref == "" && len(s.Properties) == 0
}

// IsUnresolvedRef reports a bare $ref the parser could not, or would not,
// expand.
func (s Schema) IsUnresolvedRef() bool {
	return s.Ref != "" && s.Type == "" && len(s.Properties) == 0
}

// PropertyNames returns the property names in sorted order, which is the
// order fields appear in the form.
func (s Schema) PropertyNames() []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the schema shape compactly, e.g.
// "object{name:string,tags:array[string]}".
func (s Schema) String() string {
	var b strings.Builder
	s.writeShape(&b)
	return b.String()
}

func (s Schema) writeShape(b *strings.Builder) {
	switch {
	case s.IsUnresolvedRef():
		b.WriteString("$ref(" + s.Ref + ")")
	case s.Items != nil:
		b.WriteString("array[")
		s.Items.writeShape(b)
		b.WriteString("]")
	case len(s.Properties) > 0:
		b.WriteString("object{")
		for i, name := range s.PropertyNames() {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(name + ":")
			s.Properties[name].writeShape(b)
		}
		b.WriteString("}")
	case s.Type == "":
		b.WriteString("empty")
	default:
		b.WriteString(s.Type)
	}
}
