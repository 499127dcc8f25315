package report

// Assemble builds the final report. Nil lists become empty ones so the
// encoded shape is stable.
func Assemble(status string, errs []ErrorItem, warnings []WarningItem) Report {
	if errs == nil {
		errs = []ErrorItem{}
	}
	if warnings == nil {
		warnings = []WarningItem{}
	}
	return Report{
		Status:            status,
		Errors:            errs,
		PotentialProblems: warnings,
	}
}

// Generate runs sanitize, parse, classify and assemble over a raw response.
func Generate(raw string, cat Catalog) (Report, Classified, error) {
	parsed, err := Parse(Sanitize(raw))
	if err != nil {
		return Report{}, Classified{}, err
	}

	c := Classify(parsed, cat)

	return Assemble(parsed.Summary.Status, c.Errors, c.Warnings), c, nil
}
