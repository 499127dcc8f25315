package render_test

import (
	"bytes"
	"encoding/json"
	"encoding/xml"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/a11ykit/achecker-client/internal/render"
	"github.com/a11ykit/achecker-client/internal/render/core"
	"github.com/a11ykit/achecker-client/internal/render/junit"
	"github.com/a11ykit/achecker-client/internal/report"
)

func sampleEntry() core.Entry {
	return core.Entry{
		URI:   "http://example.com",
		Guide: "WCAG2-AA",
		Report: report.Report{
			Status: "FAIL",
			Errors: []report.ErrorItem{
				{Line: "3", Column: "1", Message: "The page has no title element.", Solution: "Add a title."},
			},
			PotentialProblems: []report.WarningItem{
				{Line: "9", Column: "4", Message: "Use em or CSS instead of the i element.", Source: "i"},
			},
		},
	}
}

func passingEntry() core.Entry {
	return core.Entry{
		URI:    "http://example.org",
		Report: report.Assemble("PASS", nil, nil),
	}
}

var _ = Describe("Formatter", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = new(bytes.Buffer)
	})

	Context("json", func() {
		It("writes a single report in the public shape", func() {
			Expect(render.CreateReport(buf, "json", false, []core.Entry{sampleEntry()})).To(Succeed())

			var got map[string]any
			Expect(json.Unmarshal(buf.Bytes(), &got)).To(Succeed())
			Expect(got).To(HaveKeyWithValue("status", "FAIL"))
			Expect(got).To(HaveKey("errors"))
			Expect(got).To(HaveKey("potentialProblems"))
			Expect(got).NotTo(HaveKey("uri"))

			errs := got["errors"].([]any)
			Expect(errs).To(HaveLen(1))
			Expect(errs[0]).To(HaveKeyWithValue("solution", "Add a title."))
			Expect(errs[0]).To(HaveKeyWithValue("line", "3"))

			warnings := got["potentialProblems"].([]any)
			Expect(warnings[0]).To(HaveKeyWithValue("source", "i"))
		})

		It("writes empty lists rather than null", func() {
			Expect(render.CreateReport(buf, "json", false, []core.Entry{passingEntry()})).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(`"errors": []`))
			Expect(buf.String()).To(ContainSubstring(`"potentialProblems": []`))
		})

		It("writes several pages as an array carrying the uri", func() {
			Expect(render.CreateReport(buf, "json", false, []core.Entry{sampleEntry(), passingEntry()})).To(Succeed())

			var got []map[string]any
			Expect(json.Unmarshal(buf.Bytes(), &got)).To(Succeed())
			Expect(got).To(HaveLen(2))
			Expect(got[1]).To(HaveKeyWithValue("uri", "http://example.org"))
			Expect(got[1]).To(HaveKeyWithValue("status", "PASS"))
		})
	})

	Context("yaml", func() {
		It("inlines the report next to the uri", func() {
			Expect(render.CreateReport(buf, "yaml", false, []core.Entry{sampleEntry()})).To(Succeed())

			var got []map[string]any
			Expect(yaml.Unmarshal(buf.Bytes(), &got)).To(Succeed())
			Expect(got).To(HaveLen(1))
			Expect(got[0]).To(HaveKeyWithValue("uri", "http://example.com"))
			Expect(got[0]).To(HaveKeyWithValue("status", "FAIL"))
			Expect(got[0]).To(HaveKey("potentialProblems"))
		})
	})

	Context("text", func() {
		It("lists findings without color codes", func() {
			Expect(render.CreateReport(buf, "text", false, []core.Entry{sampleEntry()})).To(Succeed())

			out := buf.String()
			Expect(out).To(ContainSubstring("URI: http://example.com (WCAG2-AA)"))
			Expect(out).To(ContainSubstring("Status: FAIL"))
			Expect(out).To(ContainSubstring("[3:1] The page has no title element."))
			Expect(out).To(ContainSubstring("> Add a title."))
			Expect(out).To(ContainSubstring("Potential problems (1)"))
			Expect(out).To(ContainSubstring("Summary: 1 error(s), 1 potential problem(s) across 1 page(s)"))
			Expect(out).NotTo(ContainSubstring("\x1b["))
		})

		It("reports clean pages", func() {
			Expect(render.CreateReport(buf, "", false, []core.Entry{passingEntry()})).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("No issues found"))
		})
	})

	Context("junit-xml", func() {
		It("writes failures and skipped cases", func() {
			Expect(render.CreateReport(buf, "junit-xml", false, []core.Entry{sampleEntry()})).To(Succeed())
			Expect(buf.String()).To(HavePrefix("<?xml"))

			var got junit.Report
			Expect(xml.Unmarshal(buf.Bytes(), &got)).To(Succeed())
			Expect(got.Testsuites).To(HaveLen(1))

			ts := got.Testsuites[0]
			Expect(ts.Name).To(Equal("http://example.com"))
			Expect(ts.Tests).To(Equal(2))
			Expect(ts.Failures).To(Equal(1))
			Expect(ts.Skipped).To(Equal(1))
			Expect(ts.Testcases[0].Failure).NotTo(BeNil())
			Expect(ts.Testcases[0].Failure.Text).To(Equal("Add a title."))
			Expect(ts.Testcases[1].Skipped).NotTo(BeNil())
		})
	})

	It("rejects unknown formats", func() {
		Expect(render.CreateReport(buf, "pdf", false, nil)).NotTo(Succeed())
	})
})
