package checker

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/a11ykit/achecker-client/internal/achecker"
	"github.com/a11ykit/achecker-client/internal/observability"
	"github.com/a11ykit/achecker-client/internal/report"
	"github.com/a11ykit/achecker-client/internal/validate"
)

type Options = validate.Options

// Checker validates a page through the remote checking service and returns
// the normalized report. It holds no mutable state and is safe for
// concurrent use.
type Checker struct {
	fetcher achecker.Fetcher
	catalog report.Catalog
	logger  *observability.Logger
}

func New(f achecker.Fetcher, cat report.Catalog, logger *observability.Logger) *Checker {
	return &Checker{
		fetcher: f,
		catalog: cat,
		logger:  logger,
	}
}

// Validate checks o, fetches the report and normalizes it. Exactly one of
// the report and the error is meaningful.
func (c *Checker) Validate(ctx context.Context, o Options) (report.Report, error) {
	if err := validate.Validate(o); err != nil {
		observability.Checks.WithLabelValues(observability.OutcomeInvalidInput).Inc()
		return report.Report{}, err
	}

	o = validate.Normalize(o)
	start := time.Now()

	raw, err := c.fetcher.Fetch(ctx, achecker.Request{
		URI:   o.URI,
		ID:    o.ID,
		Guide: o.Guide,
	})
	if err != nil && rejectedCredential(err) {
		observability.Checks.WithLabelValues(observability.OutcomeInvalidCredential).Inc()
		c.logger.Warn("web service ID rejected", "uri", o.URI, "err", err)
		return report.Report{}, ErrInvalidCredential
	}
	if err != nil {
		observability.Checks.WithLabelValues(observability.OutcomeFetchError).Inc()
		c.logger.Error("fetch report failed", "uri", o.URI, "err", err)
		return report.Report{}, &FetchError{Err: err}
	}

	if strings.Contains(raw, InvalidCredentialMarker) {
		observability.Checks.WithLabelValues(observability.OutcomeInvalidCredential).Inc()
		c.logger.Warn("web service ID rejected", "uri", o.URI)
		return report.Report{}, ErrInvalidCredential
	}

	rep, classified, err := report.Generate(raw, c.catalog)
	if err != nil {
		observability.Checks.WithLabelValues(observability.OutcomeParseError).Inc()
		c.logger.Error("parse report failed", "uri", o.URI, "err", err)
		return report.Report{}, err
	}

	observability.Checks.WithLabelValues(observability.OutcomeOK).Inc()
	observability.Findings.WithLabelValues(observability.KindError).Add(float64(len(rep.Errors)))
	observability.Findings.WithLabelValues(observability.KindPotentialProblem).Add(float64(len(rep.PotentialProblems)))
	observability.Findings.WithLabelValues(observability.KindIgnored).Add(float64(classified.Ignored))
	observability.Findings.WithLabelValues(observability.KindDropped).Add(float64(classified.Dropped))

	c.logger.Info("report generated",
		"uri", o.URI,
		"guide", o.Guide,
		"status", rep.Status,
		"errors", len(rep.Errors),
		"potential_problems", len(rep.PotentialProblems),
		"took", time.Since(start),
	)

	return rep, nil
}

// rejectedCredential reports whether a non-2xx response carried the invalid
// ID marker. The marker wins over the status code.
func rejectedCredential(err error) bool {
	var serr *achecker.StatusError
	if !errors.As(err, &serr) {
		return false
	}
	return serr.InvalidCredential || strings.Contains(serr.Body, InvalidCredentialMarker)
}

// IsInputError reports whether err is a local validation failure.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingURI) ||
		errors.Is(err, ErrInvalidURI) ||
		errors.Is(err, ErrMissingCredential)
}
