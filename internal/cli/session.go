// Package cli holds the logic behind the formtree command line. Commands in
// cmd/formtree-cli parse flags into a config.Config and call into a Session.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	formtree "github.com/goliatone/go-formtree"
	"github.com/goliatone/go-formtree/internal/config"
	"github.com/goliatone/go-formtree/internal/logging"
	"github.com/goliatone/go-formtree/pkg/catalog"
	pkgopenapi "github.com/goliatone/go-formtree/pkg/openapi"
	"github.com/goliatone/go-formtree/pkg/orchestrator"
	"github.com/goliatone/go-formtree/pkg/prompt"
)

// Session carries the resolved configuration and IO of one CLI invocation.
type Session struct {
	Config config.Config
	Logger *slog.Logger
	Stdout io.Writer
	// Prompt drives --interactive extraction; nil uses survey.
	Prompt prompt.Driver
}

// NewSession returns a Session writing to os.Stdout.
func NewSession(cfg config.Config, logger *slog.Logger) *Session {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Session{Config: cfg, Logger: logger, Stdout: os.Stdout}
}

func (s *Session) source() (pkgopenapi.Source, error) {
	if s.Config.Source == "" {
		return nil, errors.New("cli: no OpenAPI source configured (use --source or set source in " + config.FileName + ")")
	}
	return pkgopenapi.ParseSource(s.Config.Source)
}

// Catalog loads the translation files of the configured directory. A missing
// directory yields an empty catalog.
func (s *Session) Catalog() (*catalog.Catalog, error) {
	opts := []catalog.Option{
		catalog.WithDomain(s.Config.Catalog.Domain),
		catalog.WithDefaultLocale(s.Config.Catalog.DefaultLocale),
		catalog.WithLogger(s.Logger),
	}
	if s.Config.Catalog.Sanitize {
		opts = append(opts, catalog.WithSanitizer())
	}

	info, err := os.Stat(s.Config.Catalog.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		s.Logger.Debug("cli: catalog directory missing", "dir", s.Config.Catalog.Dir)
		return catalog.New(opts...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cli: catalog dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cli: catalog dir %s is not a directory", s.Config.Catalog.Dir)
	}
	return catalog.LoadFS(os.DirFS(s.Config.Catalog.Dir), opts...)
}

// Orchestrator builds the pipeline described by the configuration.
func (s *Session) Orchestrator(translator *catalog.Catalog) (*orchestrator.Orchestrator, error) {
	loaderOpts := []pkgopenapi.LoaderOption{pkgopenapi.WithLoaderLogger(s.Logger)}
	if s.Config.HTTPTimeout > 0 {
		loaderOpts = append(loaderOpts, pkgopenapi.WithHTTPFallback(s.Config.HTTPTimeout))
	}

	options := []orchestrator.Option{
		orchestrator.WithLoader(formtree.NewLoader(loaderOpts...)),
		orchestrator.WithKeyOptions(s.Config.Keys),
		orchestrator.WithLogger(s.Logger),
	}
	if translator != nil {
		options = append(options, orchestrator.WithTranslator(translator))
	}
	if s.Config.Presets != "" {
		data, err := os.ReadFile(s.Config.Presets)
		if err != nil {
			return nil, fmt.Errorf("cli: presets: %w", err)
		}
		preset, err := orchestrator.NewPresetTransformer(data)
		if err != nil {
			return nil, fmt.Errorf("cli: presets %s: %w", s.Config.Presets, err)
		}
		options = append(options, orchestrator.WithSchemaTransformer(preset))
	}
	return orchestrator.New(options...), nil
}

func (s *Session) request(operationID string) (orchestrator.Request, error) {
	src, err := s.source()
	if err != nil {
		return orchestrator.Request{}, err
	}
	return orchestrator.Request{
		Source:      src,
		OperationID: operationID,
		Locale:      s.Config.Catalog.Locale,
		Suffixes:    s.Config.Suffixes,
	}, nil
}
