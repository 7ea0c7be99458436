package model_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formtree/internal/openapi/parser"
	pkgmodel "github.com/goliatone/go-formtree/pkg/model"
	pkgopenapi "github.com/goliatone/go-formtree/pkg/openapi"
	"github.com/goliatone/go-formtree/pkg/testsupport"
)

func TestBuilder_CreatePet(t *testing.T) {
	operations, err := parser.New(pkgopenapi.NewParserOptions()).Operations(testsupport.Context(), testsupport.PetstoreDoc())
	if err != nil {
		t.Fatalf("operations: %v", err)
	}

	form, err := pkgmodel.NewBuilder().Build(operations["createPet"])
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if diff := cmp.Diff(testsupport.PetForm(), form); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_RejectsOperationsWithoutBody(t *testing.T) {
	op := pkgopenapi.Operation{ID: "listPets", Method: "GET", Path: "/pets"}

	_, err := pkgmodel.NewBuilder().Build(op)
	if err == nil || !strings.Contains(err.Error(), "no request body") {
		t.Fatalf("expected missing body error, got %v", err)
	}
}

func TestBuilder_RequiresOperationID(t *testing.T) {
	op := pkgopenapi.Operation{RequestBody: pkgopenapi.Schema{Type: "object"}}

	if _, err := pkgmodel.NewBuilder().Build(op); err == nil {
		t.Fatalf("expected error for missing operation id")
	}
}

func TestBuilder_ArrayWithoutItems(t *testing.T) {
	op := pkgopenapi.Operation{
		ID: "broken",
		RequestBody: pkgopenapi.Schema{
			Type: "object",
			Properties: map[string]pkgopenapi.Schema{
				"tags": {Type: "array"},
			},
		},
	}

	if _, err := pkgmodel.NewBuilder().Build(op); err == nil {
		t.Fatalf("expected error for array without items")
	}
}

func TestBuilder_UnresolvedReferenceKeepsField(t *testing.T) {
	op := pkgopenapi.Operation{
		ID: "linkParent",
		RequestBody: pkgopenapi.Schema{
			Type: "object",
			Properties: map[string]pkgopenapi.Schema{
				"parent": {Ref: "#/components/schemas/Node"},
			},
		},
	}

	form, err := pkgmodel.NewBuilder().Build(op)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(form.Fields) != 1 {
		t.Fatalf("expected one field, got %d", len(form.Fields))
	}
	field := form.Fields[0]
	if field.Type != pkgmodel.FieldTypeObject || field.Metadata["$ref"] != "#/components/schemas/Node" {
		t.Fatalf("unexpected field %+v", field)
	}
}

func TestBuilder_CustomLabeler(t *testing.T) {
	op := pkgopenapi.Operation{
		ID: "rename",
		RequestBody: pkgopenapi.Schema{
			Type: "object",
			Properties: map[string]pkgopenapi.Schema{
				"nickName": {Type: "string"},
				"title":    {Type: "string", Title: "Headline"},
			},
		},
	}

	form, err := pkgmodel.NewBuilder(pkgmodel.WithLabeler(strings.ToUpper)).Build(op)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if form.Fields[0].Label != "NICKNAME" {
		t.Fatalf("expected labeler output, got %q", form.Fields[0].Label)
	}
	if form.Fields[1].Label != "Headline" {
		t.Fatalf("expected schema title to win, got %q", form.Fields[1].Label)
	}
}

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"name":          "Name",
		"fullName":      "Full Name",
		"photo_urls":    "Photo Urls",
		"address-line2": "Address Line 2",
		"ownerURL":      "Owner URL",
		"userID":        "User ID",
		"HTTPServer":    "HTTP Server",
		"parseXMLInput": "Parse XML Input",
		"ID":            "ID",
		"émailAddress":  "Émail Address",
	}
	for in, want := range cases {
		if got := pkgmodel.DefaultLabeler(in); got != want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultLabeler_Concurrent(t *testing.T) {
	names := []string{"fullName", "photo_urls", "address-line2", "HTTPServer", "émailAddress"}
	want := make([]string, len(names))
	for i, name := range names {
		want[i] = pkgmodel.DefaultLabeler(name)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				n := (g + i) % len(names)
				if got := pkgmodel.DefaultLabeler(names[n]); got != want[n] {
					errs <- fmt.Sprintf("DefaultLabeler(%q) = %q, want %q", names[n], got, want[n])
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

func TestFormModel_FieldByPath(t *testing.T) {
	form := testsupport.PetForm()

	cases := map[string]string{
		"name":                "name",
		"owner.email":         "email",
		"vaccinations[]":      "vaccinationsItem",
		"vaccinations[].date": "date",
	}
	for path, want := range cases {
		field := form.FieldByPath(path)
		if field == nil || field.Name != want {
			t.Fatalf("FieldByPath(%q) = %+v, want %q", path, field, want)
		}
	}

	for _, path := range []string{"", "owner.phone", "name[]", "owner[].email"} {
		if field := form.FieldByPath(path); field != nil {
			t.Fatalf("FieldByPath(%q) expected nil, got %+v", path, field)
		}
	}

	form.FieldByPath("owner.email").Label = "Contact"
	if form.Fields[1].Nested[0].Label != "Contact" {
		t.Fatalf("expected FieldByPath to address the field in place")
	}
	if !form.Fields[4].IsCollection() || form.Fields[1].IsCollection() {
		t.Fatalf("unexpected collection classification")
	}
}

func TestFormModel_FieldByPathNestedCollections(t *testing.T) {
	form := pkgmodel.FormModel{
		OperationID: "op",
		Fields: []pkgmodel.Field{{
			Name: "matrix",
			Type: pkgmodel.FieldTypeArray,
			Items: &pkgmodel.Field{
				Name:  "matrixItem",
				Type:  pkgmodel.FieldTypeArray,
				Items: &pkgmodel.Field{Name: "matrixItemItem", Nested: []pkgmodel.Field{{Name: "value"}}},
			},
		}},
	}

	for path, want := range map[string]string{
		"matrix[]":         "matrixItem",
		"matrix[][]":       "matrixItemItem",
		"matrix[][].value": "value",
	} {
		if field := form.FieldByPath(path); field == nil || field.Name != want {
			t.Fatalf("FieldByPath(%q) = %+v, want %q", path, field, want)
		}
	}
	if field := form.FieldByPath("matrix[][][]"); field != nil {
		t.Fatalf("expected nil past the innermost item, got %+v", field)
	}
}

func TestBuilder_ArrayOfArrays(t *testing.T) {
	op := pkgopenapi.Operation{
		ID: "grid",
		RequestBody: pkgopenapi.Schema{
			Type: "object",
			Properties: map[string]pkgopenapi.Schema{
				"matrix": {Type: "array", Items: &pkgopenapi.Schema{
					Type: "array",
					Items: &pkgopenapi.Schema{
						Type:       "object",
						Properties: map[string]pkgopenapi.Schema{"value": {Type: "number"}},
					},
				}},
			},
		},
	}

	form, err := pkgmodel.NewBuilder().Build(op)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	value := form.FieldByPath("matrix[][].value")
	if value == nil || value.Type != pkgmodel.FieldTypeNumber || value.Label != "Value" {
		t.Fatalf("expected number field under the inner item, got %+v", value)
	}
}
