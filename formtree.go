// Package formtree derives translation keys for the fields of OpenAPI request
// forms. Each field is described by an ordered tree of nodes from the form
// root to the field, and the key is rendered from that tree:
//
//	form.createPet.children.owner.children.email.label
//
// The root package re-exports the orchestrator for callers that only need a
// single entry point; the building blocks live under pkg/.
package formtree

import (
	"context"

	internalLoader "github.com/goliatone/go-formtree/internal/openapi/loader"
	internalParser "github.com/goliatone/go-formtree/internal/openapi/parser"
	"github.com/goliatone/go-formtree/pkg/keys"
	"github.com/goliatone/go-formtree/pkg/model"
	pkgopenapi "github.com/goliatone/go-formtree/pkg/openapi"
	"github.com/goliatone/go-formtree/pkg/orchestrator"
	"github.com/goliatone/go-formtree/pkg/render"
)

// KeyEntry aliases keys.KeyEntry.
type KeyEntry = keys.KeyEntry

// KeyOptions aliases keys.Options.
type KeyOptions = keys.Options

// Localization aliases render.Localization.
type Localization = render.Localization

// NewLoader returns the kin-openapi backed document loader. Pass it to
// orchestrator.WithLoader to read from an fs.FS or enable URL sources.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalLoader.New(pkgopenapi.NewLoaderOptions(options...))
}

// NewParser returns the operation parser. Validation is on by default.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	return internalParser.New(pkgopenapi.NewParserOptions(options...))
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Keys loads source and returns the label keys of every field of the
// operation.
func Keys(ctx context.Context, source pkgopenapi.Source, operationID string, options ...orchestrator.Option) ([]KeyEntry, error) {
	return KeysFor(ctx, source, operationID, nil, options...)
}

// KeysFor is Keys with an explicit attribute list.
func KeysFor(ctx context.Context, source pkgopenapi.Source, operationID string, suffixes []string, options ...orchestrator.Option) ([]KeyEntry, error) {
	return orchestrator.New(options...).Keys(ctx, orchestrator.Request{
		Source:      source,
		OperationID: operationID,
		Suffixes:    suffixes,
	})
}

// KeysFromDocument derives label keys from a pre-loaded document, bypassing
// the loader stage.
func KeysFromDocument(ctx context.Context, doc pkgopenapi.Document, operationID string, options ...orchestrator.Option) ([]KeyEntry, error) {
	return orchestrator.New(options...).Keys(ctx, orchestrator.Request{
		Document:    &doc,
		OperationID: operationID,
	})
}

// Localize builds the form of the operation and translates it into locale
// using the translator configured with orchestrator.WithTranslator.
func Localize(ctx context.Context, source pkgopenapi.Source, operationID, locale string, options ...orchestrator.Option) (model.FormModel, Localization, error) {
	return orchestrator.New(options...).Localize(ctx, orchestrator.Request{
		Source:      source,
		OperationID: operationID,
		Locale:      locale,
	})
}
