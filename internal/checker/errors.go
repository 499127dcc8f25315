package checker

import (
	"errors"
	"fmt"

	"github.com/a11ykit/achecker-client/internal/achecker"
	"github.com/a11ykit/achecker-client/internal/report"
	"github.com/a11ykit/achecker-client/internal/validate"
)

const InvalidCredentialMarker = achecker.InvalidCredentialMarker

var (
	ErrMissingURI        = validate.ErrMissingURI
	ErrInvalidURI        = validate.ErrInvalidURI
	ErrMissingCredential = validate.ErrMissingCredential
	ErrInvalidCredential = errors.New("invalid web service ID; get your ID from http://achecker.ca/profile/")
)

// FetchError wraps a failure to retrieve the report from the checking service.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch report: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type ParseError = report.ParseError
