package model

import (
	"github.com/goliatone/go-formtree/internal/model"
	pkgopenapi "github.com/goliatone/go-formtree/pkg/openapi"
)

// Builder converts OpenAPI operations into form models.
type Builder interface {
	Build(op pkgopenapi.Operation) (FormModel, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	labeler Labeler
}

// WithLabeler overrides how labels, and so label key fallbacks, are derived
// from field names.
func WithLabeler(labeler Labeler) BuilderOption {
	return func(opts *builderOptions) {
		opts.labeler = labeler
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return model.New(model.Options{Labeler: cfg.labeler})
}
