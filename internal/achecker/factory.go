package achecker

import (
	"github.com/a11ykit/achecker-client/internal/config"
	"github.com/a11ykit/achecker-client/internal/observability"
)

// NewFetcher builds the fetcher chain described by cfg: an HTTP client behind
// a circuit breaker, with an optional mirror fallback.
func NewFetcher(cfg *config.Config, logger *observability.Logger) Fetcher {

	opts := ClientOptions{
		Timeout:   cfg.Timeout,
		Attempts:  cfg.Retries,
		RetryWait: cfg.RetryWait,
		Logger:    logger,
	}

	maxReq := uint32(1)
	if cfg.BreakerMaxRequest > 0 {
		maxReq = uint32(cfg.BreakerMaxRequest)
	}

	var f Fetcher = NewCircuitBreaker(
		NewClient(cfg.Endpoint, opts),
		maxReq,
		cfg.BreakerTimeout,
	)

	if cfg.FallbackEndpoint != "" {
		f = NewFallback(f, NewClient(cfg.FallbackEndpoint, opts))
	}

	return f
}
