package core

import "github.com/a11ykit/achecker-client/internal/report"

// Entry is one checked page and its report.
type Entry struct {
	URI           string `json:"uri" yaml:"uri"`
	Guide         string `json:"guide,omitempty" yaml:"guide,omitempty"`
	report.Report `yaml:",inline"`
}
