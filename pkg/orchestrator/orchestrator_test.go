package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	internalLoader "github.com/goliatone/go-formtree/internal/openapi/loader"
	"github.com/goliatone/go-formtree/pkg/catalog"
	"github.com/goliatone/go-formtree/pkg/keys"
	"github.com/goliatone/go-formtree/pkg/model"
	pkgopenapi "github.com/goliatone/go-formtree/pkg/openapi"
	"github.com/goliatone/go-formtree/pkg/orchestrator"
	"github.com/goliatone/go-formtree/pkg/testsupport"
)

func petstoreOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	loader := internalLoader.New(pkgopenapi.NewLoaderOptions(
		pkgopenapi.WithFileSystem(testsupport.PetstoreFS()),
	))
	return orchestrator.New(append([]orchestrator.Option{orchestrator.WithLoader(loader)}, options...)...)
}

func petstoreRequest() orchestrator.Request {
	return orchestrator.Request{
		Source:      testsupport.PetstoreSource(),
		OperationID: "createPet",
	}
}

func TestOrchestrator_OperationIDs(t *testing.T) {
	ids, err := petstoreOrchestrator().OperationIDs(context.Background(), petstoreRequest())
	if err != nil {
		t.Fatalf("operation ids: %v", err)
	}
	if diff := cmp.Diff([]string{"createPet", "listPets"}, ids); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_FormFromSource(t *testing.T) {
	form, err := petstoreOrchestrator().Form(context.Background(), petstoreRequest())
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if diff := cmp.Diff(testsupport.PetForm(), form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_FormFromDocument(t *testing.T) {
	doc := testsupport.PetstoreDoc()
	form, err := orchestrator.New().Form(context.Background(), orchestrator.Request{
		Document:    &doc,
		OperationID: "createPet",
	})
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if form.OperationID != "createPet" || len(form.Fields) != 5 {
		t.Fatalf("unexpected form %+v", form)
	}
}

func TestOrchestrator_Keys(t *testing.T) {
	entries, err := petstoreOrchestrator().Keys(context.Background(), petstoreRequest())
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(entries) != 12 {
		t.Fatalf("expected 12 label keys, got %d", len(entries))
	}
	if entries[3].Key != "form.createPet.children.owner.children.email.label" {
		t.Fatalf("unexpected key %q", entries[3].Key)
	}
}

func TestOrchestrator_KeysWithCustomLayout(t *testing.T) {
	orch := petstoreOrchestrator(orchestrator.WithKeyOptions(keys.Options{
		Root:        "forms",
		Separator:   "/",
		ChildrenKey: "fields",
	}))

	req := petstoreRequest()
	req.Suffixes = []string{keys.SuffixHelp}
	entries, err := orch.Keys(context.Background(), req)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if got := entries[3].Key; got != "forms/createPet/fields/owner/fields/email/help" {
		t.Fatalf("unexpected key %q", got)
	}
	if orch.KeyBuilder().Options().Separator != "/" {
		t.Fatalf("expected key builder to keep custom options")
	}
}

func TestOrchestrator_Localize(t *testing.T) {
	translations := catalog.New(catalog.WithDefaultLocale("en"))
	translations.Add("es", "form.createPet.children.name.label", "Nombre")
	translations.Add("es", "form.createPet.children.name.description", "Nombre de la mascota")
	translations.Add("en", "form.createPet.children.owner.label", "Owner")

	orch := petstoreOrchestrator(orchestrator.WithTranslator(translations))

	req := petstoreRequest()
	req.Locale = "es-AR"
	form, result, err := orch.Localize(context.Background(), req)
	if err != nil {
		t.Fatalf("localize: %v", err)
	}

	if form.Fields[0].Label != "Nombre" || form.Fields[0].Description != "Nombre de la mascota" {
		t.Fatalf("expected spanish name field, got %+v", form.Fields[0])
	}
	if form.Fields[1].UIHints["labelKey"] != "form.createPet.children.owner.label" {
		t.Fatalf("expected default-locale translation to record key, got %v", form.Fields[1].UIHints)
	}
	if result.Locale != "es-AR" || result.Translated != 3 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestOrchestrator_PresetTransformer(t *testing.T) {
	preset, err := orchestrator.NewPresetTransformer([]byte(`
uiHints:
  layout: compact
fields:
  owner.email:
    label: Contact email
    keys:
      label: contact.email
  vaccinations[].date:
    placeholder: YYYY-MM-DD
`))
	if err != nil {
		t.Fatalf("preset: %v", err)
	}

	orch := petstoreOrchestrator(orchestrator.WithSchemaTransformer(preset))
	form, err := orch.Form(context.Background(), petstoreRequest())
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if form.UIHints["layout"] != "compact" {
		t.Fatalf("expected form hint, got %v", form.UIHints)
	}
	if got := form.Fields[4].Items.Nested[0].Placeholder; got != "YYYY-MM-DD" {
		t.Fatalf("expected prototype child placeholder, got %q", got)
	}

	entries, err := orch.Keys(context.Background(), petstoreRequest())
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	want := keys.KeyEntry{Key: "contact.email", Path: "owner.email", Suffix: keys.SuffixLabel, Fallback: "Contact email", Explicit: true}
	if diff := cmp.Diff(want, entries[3]); diff != "" {
		t.Fatalf("pinned entry mismatch (-want +got):\n%s", diff)
	}
}

func TestPresetTransformer_Errors(t *testing.T) {
	if _, err := orchestrator.NewPresetTransformer(nil); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := orchestrator.NewPresetTransformer([]byte(`fields: {name: {keys: {tooltip: x}}}`)); err == nil {
		t.Fatalf("expected error for unknown suffix")
	}

	preset, err := orchestrator.NewPresetTransformer([]byte(`{"fields": {"owner.phone": {"label": "Phone"}}}`))
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	form := testsupport.PetForm()
	if err := preset.Transform(context.Background(), &form); err == nil || !strings.Contains(err.Error(), "owner.phone") {
		t.Fatalf("expected missing field error, got %v", err)
	}
}

func TestOrchestrator_TransformerErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	orch := petstoreOrchestrator(orchestrator.WithSchemaTransformer(
		orchestrator.TransformerFunc(func(context.Context, *model.FormModel) error { return boom }),
	))

	_, err := orch.Form(context.Background(), petstoreRequest())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped transformer error, got %v", err)
	}
}

func TestOrchestrator_Errors(t *testing.T) {
	orch := petstoreOrchestrator()
	ctx := context.Background()

	cases := []struct {
		name string
		req  orchestrator.Request
		want string
	}{
		{"missing operation id", orchestrator.Request{Source: testsupport.PetstoreSource()}, "operation id is required"},
		{"unknown operation", orchestrator.Request{Source: testsupport.PetstoreSource(), OperationID: "deletePet"}, `operation "deletePet" not found`},
		{"no request body", orchestrator.Request{Source: testsupport.PetstoreSource(), OperationID: "listPets"}, "build form model"},
		{"no source", orchestrator.Request{OperationID: "createPet"}, "requires a document or source"},
		{"missing file", orchestrator.Request{Source: pkgopenapi.SourceFromFS("missing.yaml"), OperationID: "createPet"}, "load document"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := orch.Form(ctx, tc.req)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := orch.Keys(cancelled, petstoreRequest()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
