package achecker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/a11ykit/achecker-client/internal/observability"
	"github.com/a11ykit/achecker-client/internal/retry"
)

// maxErrorBody caps the part of a non-2xx body kept in StatusError.
const maxErrorBody = 4096

// StatusError is returned for non-2xx responses. Body holds at most the first
// maxErrorBody bytes; InvalidCredential is set when the marker appears
// anywhere in the full body.
type StatusError struct {
	StatusCode        int
	Body              string
	InvalidCredential bool
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("achecker status %d: %s", e.StatusCode, e.Body)
}

type ClientOptions struct {
	Timeout   time.Duration
	Attempts  int
	RetryWait time.Duration
	Logger    *observability.Logger
}

// Client calls the checking service over HTTP.
type Client struct {
	endpoint  string
	label     string
	http      *http.Client
	attempts  int
	retryWait time.Duration
	logger    *observability.Logger
}

func NewClient(endpoint string, o ClientOptions) *Client {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Attempts <= 0 {
		o.Attempts = 1
	}

	label := endpoint
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		label = u.Host
	}

	return &Client{
		endpoint:  endpoint,
		label:     label,
		http:      &http.Client{Timeout: o.Timeout},
		attempts:  o.Attempts,
		retryWait: o.RetryWait,
		logger:    o.Logger,
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch issues GET endpoint?uri=&id=&output=rest&guide= and returns the body.
// Transport failures and 5xx responses are retried; other statuses are not.
func (c *Client) Fetch(ctx context.Context, r Request) (string, error) {

	target, err := c.requestURL(r)
	if err != nil {
		return "", err
	}

	var body string

	err = retry.Do(ctx, c.attempts, c.retryWait, func() error {
		start := time.Now()
		b, err := c.get(ctx, target)
		observability.FetchLatency.WithLabelValues(c.label).Observe(time.Since(start).Seconds())

		if err != nil {
			observability.FetchErrors.WithLabelValues(c.label).Inc()
			c.logger.Warn("achecker request failed",
				"endpoint", c.label,
				"err", err,
			)
			return err
		}

		body = b
		return nil
	})
	if err != nil {
		return "", err
	}

	c.logger.Debug("achecker report fetched",
		"endpoint", c.label,
		"uri", r.URI,
		"bytes", len(body),
	)

	return body, nil
}

func (c *Client) requestURL(r Request) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse achecker endpoint: %w", err)
	}

	q := u.Query()
	q.Set("uri", r.URI)
	q.Set("id", r.ID)
	q.Set("output", OutputREST)
	q.Set("guide", r.Guide)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (c *Client) get(ctx context.Context, target string) (string, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", retry.Permanent(fmt.Errorf("build achecker request: %w", err))
	}

	req.Header.Set("Accept", "text/xml, application/xml")

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(res.Body)
		serr := &StatusError{
			StatusCode:        res.StatusCode,
			Body:              string(msg[:min(len(msg), maxErrorBody)]),
			InvalidCredential: bytes.Contains(msg, []byte(InvalidCredentialMarker)),
		}
		if res.StatusCode >= 500 {
			return "", serr
		}
		return "", retry.Permanent(serr)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read achecker response: %w", err)
	}

	return string(b), nil
}
