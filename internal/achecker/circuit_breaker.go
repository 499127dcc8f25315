package achecker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

type CircuitBreakerFetcher struct {
	fetcher Fetcher
	cb      *gobreaker.CircuitBreaker
}

func NewCircuitBreaker(f Fetcher, maxRequests uint32, timeout time.Duration) *CircuitBreakerFetcher {

	settings := gobreaker.Settings{
		Name:         "achecker",
		MaxRequests:  maxRequests,
		Interval:     0,
		Timeout:      timeout,
		IsSuccessful: healthy,
	}

	return &CircuitBreakerFetcher{
		fetcher: f,
		cb:      gobreaker.NewCircuitBreaker(settings),
	}
}

func (c *CircuitBreakerFetcher) Fetch(
	ctx context.Context,
	r Request,
) (string, error) {

	out, err := c.cb.Execute(func() (interface{}, error) {
		return c.fetcher.Fetch(ctx, r)
	})

	if err != nil {
		return "", err
	}

	body, ok := out.(string)
	if !ok {
		return "", fmt.Errorf("unexpected circuit breaker response type")
	}

	return body, nil
}

func (c *CircuitBreakerFetcher) State() gobreaker.State {
	return c.cb.State()
}

// healthy reports whether err leaves the checking service in good standing.
// Only transport failures and 5xx responses count against the breaker; a 4xx,
// a refused web service ID or a caller cancellation concern one request.
func healthy(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}

	var serr *StatusError
	if errors.As(err, &serr) {
		return serr.StatusCode < 500 || serr.InvalidCredential
	}

	return false
}
