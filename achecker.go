// Package achecker checks web pages for accessibility problems with the
// AChecker web service and returns a normalized report: an overall status,
// the definite errors and the potential problems, with noise filtered out and
// readable messages in place of the service's message identifiers.
package achecker

import (
	"context"
	"time"

	remote "github.com/a11ykit/achecker-client/internal/achecker"
	"github.com/a11ykit/achecker-client/internal/checker"
	"github.com/a11ykit/achecker-client/internal/config"
	"github.com/a11ykit/achecker-client/internal/messages"
	"github.com/a11ykit/achecker-client/internal/observability"
	"github.com/a11ykit/achecker-client/internal/report"
	"github.com/a11ykit/achecker-client/internal/validate"

	"go.uber.org/zap"
)

type (
	// Options selects the page, the web service ID and the guideline profile.
	Options = checker.Options

	Report      = report.Report
	ErrorItem   = report.ErrorItem
	WarningItem = report.WarningItem

	// Fetcher retrieves the raw report body. Supply one with WithFetcher to
	// replace the built-in HTTP client.
	Fetcher = remote.Fetcher
	Request = remote.Request

	FetchError = checker.FetchError
	ParseError = report.ParseError
)

// DefaultGuide is used when Options.Guide is empty.
const DefaultGuide = validate.DefaultGuide

var (
	ErrMissingURI        = checker.ErrMissingURI
	ErrInvalidURI        = checker.ErrInvalidURI
	ErrMissingCredential = checker.ErrMissingCredential
	ErrInvalidCredential = checker.ErrInvalidCredential
)

type Option func(*settings)

type settings struct {
	cfg     *config.Config
	fetcher Fetcher
	catalog *messages.Catalog
	logger  *observability.Logger
}

// WithEndpoint points the client at another checking service endpoint.
func WithEndpoint(endpoint string) Option {
	return func(s *settings) { s.cfg.Endpoint = endpoint }
}

// WithFallbackEndpoint sets a mirror tried when the primary endpoint fails.
func WithFallbackEndpoint(endpoint string) Option {
	return func(s *settings) { s.cfg.FallbackEndpoint = endpoint }
}

func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.cfg.Timeout = d }
}

// WithRetries sets how many times a failed fetch is attempted and the
// initial back-off between attempts.
func WithRetries(attempts int, wait time.Duration) Option {
	return func(s *settings) {
		s.cfg.Retries = attempts
		s.cfg.RetryWait = wait
	}
}

func WithFetcher(f Fetcher) Option {
	return func(s *settings) { s.fetcher = f }
}

// WithMessages replaces the built-in ignore list and message table.
func WithMessages(ignore []string, table map[string]string) Option {
	return func(s *settings) { s.catalog = messages.New(ignore, table) }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = observability.NewFromZap(l) }
}

// Client is safe for concurrent use.
type Client struct {
	checker *checker.Checker
}

func New(opts ...Option) *Client {
	s := &settings{cfg: config.Defaults()}
	for _, o := range opts {
		o(s)
	}

	if s.catalog == nil {
		s.catalog = messages.Default()
	}
	if s.fetcher == nil {
		s.fetcher = remote.NewFetcher(s.cfg, s.logger)
	}

	return &Client{checker: checker.New(s.fetcher, s.catalog, s.logger)}
}

// Validate checks o.URI and returns its report. Validation failures are
// reported without contacting the service.
func (c *Client) Validate(ctx context.Context, o Options) (Report, error) {
	return c.checker.Validate(ctx, o)
}

var defaultClient = New()

// Validate checks a page with a client built from the defaults.
func Validate(ctx context.Context, o Options) (Report, error) {
	return defaultClient.Validate(ctx, o)
}
