package report

import "strings"

// Classified holds the entries that survived classification, plus counts of
// the ones that did not.
type Classified struct {
	Errors   []ErrorItem
	Warnings []WarningItem
	Ignored  int
	Dropped  int
}

// Classify buckets entries into errors and potential problems in document
// order. Entries without a message, or whose resolved message is in the
// ignore set, are skipped. Unknown result types are dropped.
func Classify(p *ParsedReport, cat Catalog) Classified {
	out := Classified{
		Errors:   []ErrorItem{},
		Warnings: []WarningItem{},
	}
	if p == nil {
		return out
	}
	if cat == nil {
		cat = passthrough{}
	}

	for _, r := range p.Results {
		if strings.TrimSpace(r.ErrorMsg) == "" {
			out.Ignored++
			continue
		}

		msg := cat.Resolve(r.ErrorMsg)
		if cat.Ignored(msg) {
			out.Ignored++
			continue
		}

		switch r.ResultType {
		case TypeError:
			out.Errors = append(out.Errors, ErrorItem{
				Line:     r.LineNum,
				Column:   r.ColumnNum,
				Message:  msg,
				Solution: r.Repair,
			})
		case TypePotentialProblem:
			out.Warnings = append(out.Warnings, WarningItem{
				Line:    r.LineNum,
				Column:  r.ColumnNum,
				Message: msg,
				Source:  r.ErrorSourceCode,
			})
		default:
			out.Dropped++
		}
	}

	return out
}

type passthrough struct{}

func (passthrough) Resolve(raw string) string { return raw }

func (passthrough) Ignored(string) bool { return false }
