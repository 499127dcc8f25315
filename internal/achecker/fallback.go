package achecker

import (
	"context"
	"errors"
)

// FallbackFetcher tries a mirror when the primary endpoint fails.
type FallbackFetcher struct {
	primary   Fetcher
	secondary Fetcher
}

func NewFallback(p1, p2 Fetcher) *FallbackFetcher {
	return &FallbackFetcher{
		primary:   p1,
		secondary: p2,
	}
}

func (f *FallbackFetcher) Fetch(
	ctx context.Context,
	r Request,
) (string, error) {

	body, err := f.primary.Fetch(ctx, r)
	if err == nil {
		return body, nil
	}

	if ctx.Err() != nil {
		return "", err
	}

	body, err2 := f.secondary.Fetch(ctx, r)
	if err2 != nil {
		return "", errors.Join(err, err2)
	}

	return body, nil
}
