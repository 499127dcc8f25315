package report

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
)

var errMissingStatus = errors.New("summary status missing")

// ParseError reports a response that could not be parsed as a result set.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse report: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes sanitized text into a ParsedReport. Results is never nil and
// keeps document order.
func Parse(sanitized string) (*ParsedReport, error) {
	dec := xml.NewDecoder(strings.NewReader(sanitized))
	dec.CharsetReader = charset.NewReaderLabel

	var p ParsedReport
	if err := dec.Decode(&p); err != nil {
		return nil, &ParseError{Err: err}
	}

	if strings.TrimSpace(p.Summary.Status) == "" {
		return nil, &ParseError{Err: errMissingStatus}
	}

	if p.Results == nil {
		p.Results = []ResultEntry{}
	}

	return &p, nil
}
