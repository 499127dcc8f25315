package validate

import (
	"errors"
	"net/url"
	"strings"
)

// DefaultGuide is the guideline profile used when none is given.
const DefaultGuide = "WCAG2-AA"

var (
	ErrMissingURI        = errors.New("no URI provided to test")
	ErrInvalidURI        = errors.New("invalid URL supplied")
	ErrMissingCredential = errors.New("no AChecker web service ID provided; register at http://achecker.ca/register.php to get an ID")
)

// KnownGuides lists the guideline profiles the checking service accepts.
var KnownGuides = []string{
	"BITV1",
	"508",
	"STANCA",
	"WCAG1-A",
	"WCAG1-AA",
	"WCAG1-AAA",
	"WCAG2-A",
	"WCAG2-AA",
	"WCAG2-AAA",
}

type Options struct {
	URI   string
	ID    string
	Guide string
}

// Validate checks the options in order, stopping at the first failure.
func Validate(o Options) error {
	if o.URI == "" {
		return ErrMissingURI
	}
	if !IsWebURI(o.URI) {
		return ErrInvalidURI
	}
	if o.ID == "" {
		return ErrMissingCredential
	}
	return nil
}

// Normalize returns the options to send to the checking service: the URI with
// a scheme and the guide defaulted.
func Normalize(o Options) Options {
	o.URI = NormalizeURI(o.URI)
	if strings.TrimSpace(o.Guide) == "" {
		o.Guide = DefaultGuide
	}
	return o
}

// IsWebURI reports whether s is an absolute http or https URI with a host.
func IsWebURI(s string) bool {
	if s != strings.TrimSpace(s) || strings.ContainsAny(s, " \t\r\n\"<>\\^`{|}") {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return false
	}

	if u.Opaque != "" || u.Hostname() == "" {
		return false
	}

	if port := u.Port(); port != "" {
		for _, r := range port {
			if r < '0' || r > '9' {
				return false
			}
		}
	}

	return true
}

// NormalizeURI prefixes http:// when s carries no scheme.
func NormalizeURI(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if strings.HasPrefix(s, "//") {
		return "http:" + s
	}
	if i := strings.Index(s, "://"); i > 0 && !strings.ContainsAny(s[:i], "/?#") {
		return s
	}
	return "http://" + s
}
