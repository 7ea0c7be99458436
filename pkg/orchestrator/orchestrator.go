package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	internalLoader "github.com/goliatone/go-formtree/internal/openapi/loader"
	internalParser "github.com/goliatone/go-formtree/internal/openapi/parser"
	"github.com/goliatone/go-formtree/pkg/keys"
	"github.com/goliatone/go-formtree/pkg/model"
	pkgopenapi "github.com/goliatone/go-formtree/pkg/openapi"
	"github.com/goliatone/go-formtree/pkg/render"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom form model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithKeyOptions sets the layout of derived translation keys.
func WithKeyOptions(opts keys.Options) Option {
	return func(o *Orchestrator) {
		o.keys = keys.NewBuilder(opts)
	}
}

// WithKeyBuilder injects a preconfigured key builder.
func WithKeyBuilder(builder *keys.Builder) Option {
	return func(o *Orchestrator) {
		o.keys = builder
	}
}

// WithTranslator sets the translator used by Localize.
func WithTranslator(translator render.Translator) Option {
	return func(o *Orchestrator) {
		o.translator = translator
	}
}

// WithMissingTranslationHandler overrides how Localize fills attributes whose
// key has no translation.
func WithMissingTranslationHandler(handler render.MissingTranslationHandler) Option {
	return func(o *Orchestrator) {
		o.onMissing = handler
	}
}

// WithSchemaTransformer registers a Transformer that runs after the form model
// is built and before keys are derived.
func WithSchemaTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Request describes one pass over an OpenAPI operation.
type Request struct {
	// Source is loaded when Document is nil.
	Source   pkgopenapi.Source
	Document *pkgopenapi.Document

	OperationID string

	// Locale is only used by Localize.
	Locale string

	// Suffixes selects the attributes keys are produced for. Empty means
	// labels only for Keys and every attribute for Localize.
	Suffixes []string
}

// Orchestrator coordinates the pipeline from OpenAPI document to form model,
// translation keys and localized form model. Missing dependencies are filled
// with the built-in implementations.
type Orchestrator struct {
	loader      pkgopenapi.Loader
	parser      pkgopenapi.Parser
	builder     model.Builder
	keys        *keys.Builder
	translator  render.Translator
	onMissing   render.MissingTranslationHandler
	transformer Transformer
	logger      *slog.Logger
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// OperationIDs lists the operations of the requested document, sorted.
func (o *Orchestrator) OperationIDs(ctx context.Context, req Request) ([]string, error) {
	operations, err := o.operations(ctx, req)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Form loads the document, builds the form model of req.OperationID and runs
// the configured transformer over it.
func (o *Orchestrator) Form(ctx context.Context, req Request) (model.FormModel, error) {
	if strings.TrimSpace(req.OperationID) == "" {
		return model.FormModel{}, errors.New("orchestrator: operation id is required")
	}

	operations, err := o.operations(ctx, req)
	if err != nil {
		return model.FormModel{}, err
	}
	operation, ok := operations[req.OperationID]
	if !ok {
		return model.FormModel{}, fmt.Errorf("orchestrator: operation %q not found", req.OperationID)
	}

	form, err := o.builder.Build(operation)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: build form model: %w", err)
	}
	if err := o.applyTransformer(ctx, &form); err != nil {
		return model.FormModel{}, err
	}
	o.logger.Debug("orchestrator: form built", "operation", form.OperationID, "fields", len(form.Fields))
	return form, nil
}

// Keys returns the translation keys of every field of the requested form.
func (o *Orchestrator) Keys(ctx context.Context, req Request) ([]keys.KeyEntry, error) {
	form, err := o.Form(ctx, req)
	if err != nil {
		return nil, err
	}
	entries, err := o.keys.FormKeys(form, req.Suffixes...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: derive keys: %w", err)
	}
	return entries, nil
}

// Localize builds the requested form and translates it into req.Locale.
func (o *Orchestrator) Localize(ctx context.Context, req Request) (model.FormModel, render.Localization, error) {
	form, err := o.Form(ctx, req)
	if err != nil {
		return model.FormModel{}, render.Localization{}, err
	}

	result, err := render.LocalizeFormModel(&form, render.Options{
		Locale:     req.Locale,
		Translator: o.translator,
		OnMissing:  o.onMissing,
		Keys:       o.keys,
		Suffixes:   req.Suffixes,
		Logger:     o.logger,
	})
	if err != nil {
		return model.FormModel{}, render.Localization{}, fmt.Errorf("orchestrator: localize form: %w", err)
	}
	o.logger.Debug("orchestrator: form localized",
		"operation", form.OperationID,
		"locale", req.Locale,
		"translated", result.Translated,
		"missing", len(result.Missing),
	)
	return form, result, nil
}

// KeyBuilder exposes the key builder in use.
func (o *Orchestrator) KeyBuilder() *keys.Builder {
	return o.keys
}

func (o *Orchestrator) operations(ctx context.Context, req Request) (map[string]pkgopenapi.Operation, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse operations: %w", err)
	}
	return operations, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: request requires a document or source")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	o.logger.Debug("orchestrator: document loaded", "source", req.Source.Location(), "bytes", len(doc.Raw()))
	return doc, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, form *model.FormModel) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, form); err != nil {
		return fmt.Errorf("orchestrator: transform form: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithLoaderLogger(o.logger)))
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.keys == nil {
		o.keys = keys.NewBuilder(keys.DefaultOptions())
	}
}
