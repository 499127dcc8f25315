package junit

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/a11ykit/achecker-client/internal/render/core"
)

// WriteReport writes one testsuite per page. Errors are failures and
// potential problems are skipped testcases.
func WriteReport(w io.Writer, entries []core.Entry) error {
	raw, err := xml.MarshalIndent(build(entries), "", "\t")
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}

func build(entries []core.Entry) *Report {
	r := &Report{Testsuites: []*Testsuite{}}

	for _, e := range entries {
		ts := &Testsuite{Name: e.URI}

		for _, f := range e.Errors {
			ts.Testcases = append(ts.Testcases, &Testcase{
				Name: fmt.Sprintf("%s:%s %s", f.Line, f.Column, f.Message),
				Failure: &Failure{
					Message: f.Message,
					Text:    f.Solution,
				},
			})
			ts.Failures++
		}

		for _, p := range e.PotentialProblems {
			ts.Testcases = append(ts.Testcases, &Testcase{
				Name:    fmt.Sprintf("%s:%s %s", p.Line, p.Column, p.Message),
				Skipped: &Skipped{Message: p.Source},
			})
			ts.Skipped++
		}

		ts.Tests = len(ts.Testcases)
		r.Testsuites = append(r.Testsuites, ts)
	}

	return r
}
