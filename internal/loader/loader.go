// Package loader fetches the match document once from a URL or a file.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/oddspulse/internal/logging"
	"github.com/rshade/oddspulse/internal/match"
)

// DefaultSource is the document location used when none is configured.
const DefaultSource = "data.json"

// ErrUnexpectedStatus is returned when an HTTP source answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the client used for http:// and https:// sources.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		l.client = c
	}
}

// Loader retrieves the match collection. The fetch runs at most once; later
// calls to Load return the first outcome.
type Loader struct {
	source string
	client *http.Client

	once       sync.Once
	collection match.Collection
	err        error
}

// New creates a Loader for source. An empty source means DefaultSource.
func New(source string, opts ...Option) *Loader {
	if source == "" {
		source = DefaultSource
	}
	l := &Loader{
		source: source,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the configured document location.
func (l *Loader) Source() string {
	return l.source
}

// IsRemote reports whether the source is fetched over HTTP.
func (l *Loader) IsRemote() bool {
	return isRemote(l.source)
}

// Load fetches and decodes the document on first call.
func (l *Loader) Load(ctx context.Context) (match.Collection, error) {
	l.once.Do(func() {
		l.collection, l.err = l.fetch(ctx)
	})
	return l.collection, l.err
}

func (l *Loader) fetch(ctx context.Context) (match.Collection, error) {
	log := logging.ComponentLogger(*logging.FromContext(ctx), "loader")
	log.Debug().Ctx(ctx).Str("source", l.source).Msg("fetching match document")

	body, err := l.open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := body.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Msg("closing match document")
		}
	}()

	records, err := match.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", l.source, err)
	}

	if validateErr := records.Validate(); validateErr != nil {
		log.Warn().Ctx(ctx).Err(validateErr).Str("source", l.source).
			Msg("match document has duplicate ids, first occurrence wins")
	}

	log.Info().Ctx(ctx).
		Str("source", l.source).
		Int("matches", len(records)).
		Msg("match document loaded")
	return records, nil
}

func (l *Loader) open(ctx context.Context) (io.ReadCloser, error) {
	if !l.IsRemote() {
		f, err := os.Open(l.source)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", l.source, err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", l.source, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", l.source, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, l.source, resp.StatusCode)
	}
	return resp.Body, nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// LogFailure records an absorbed load failure. The caller decides what the
// user sees; this only makes the failure diagnosable.
func LogFailure(log zerolog.Logger, source string, err error) {
	if err == nil {
		return
	}
	log.Warn().Err(err).Str("source", source).Msg("match document unavailable, continuing with empty collection")
}
