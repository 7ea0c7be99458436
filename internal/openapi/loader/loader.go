package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	pkgopenapi "github.com/goliatone/go-formtree/pkg/openapi"
)

// ErrDocumentTooLarge is returned when a payload exceeds the configured cap.
var ErrDocumentTooLarge = errors.New("openapi loader: document too large")

// Loader implements pkgopenapi.Loader over files, an fs.FS and HTTP.
type Loader struct {
	fs       fs.FS
	http     *http.Client
	timeout  time.Duration
	maxBytes int64
	logger   *slog.Logger
}

var _ pkgopenapi.Loader = (*Loader)(nil)

// New constructs a Loader from resolved options. URL sources stay disabled
// unless a client or the HTTP fallback is configured.
func New(options pkgopenapi.LoaderOptions) *Loader {
	l := &Loader{
		fs:       options.FileSystem,
		timeout:  options.RequestTimeout,
		maxBytes: options.MaxDocumentBytes,
		logger:   options.Logger,
	}
	if l.maxBytes <= 0 {
		l.maxBytes = pkgopenapi.DefaultMaxDocumentBytes
	}
	if l.logger == nil {
		l.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if l.timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = l.timeout
		}
		l.http = &clone
	case options.AllowHTTPFallback:
		l.http = &http.Client{Timeout: l.timeout}
	}
	return l
}

// Load reads the document addressed by src.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if src == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Document{}, err
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case pkgopenapi.SourceKindFile:
		data, err = loadFile(src.Location(), l.maxBytes)
	case pkgopenapi.SourceKindFS:
		data, err = loadFromFS(l.fs, src.Location(), l.maxBytes)
	case pkgopenapi.SourceKindURL:
		if l.http == nil {
			return pkgopenapi.Document{}, errors.New("openapi loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout, l.maxBytes)
	default:
		err = fmt.Errorf("openapi loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgopenapi.Document{}, err
	}

	l.logger.Debug("openapi loader: document read", "kind", src.Kind(), "location", src.Location(), "bytes", len(data))
	return pkgopenapi.NewDocument(src, data)
}
