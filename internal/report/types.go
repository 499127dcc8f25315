package report

import "encoding/xml"

// Result types the checking service reports. Anything else is dropped.
const (
	TypeError            = "Error"
	TypePotentialProblem = "Potential Problem"
)

// ParsedReport is the structural form of a checking service response.
type ParsedReport struct {
	XMLName xml.Name      `xml:"resultset"`
	Summary Summary       `xml:"summary"`
	Results []ResultEntry `xml:"results>result"`
}

type Summary struct {
	Status                 string   `xml:"status"`
	SessionID              string   `xml:"sessionID"`
	NumOfErrors            string   `xml:"NumOfErrors"`
	NumOfLikelyProblems    string   `xml:"NumOfLikelyProblems"`
	NumOfPotentialProblems string   `xml:"NumOfPotentialProblems"`
	Guidelines             []string `xml:"guidelines>guideline"`
}

// ResultEntry is one finding as reported, before classification. Values are
// kept as the text found in the document.
type ResultEntry struct {
	ResultType      string `xml:"resultType"`
	LineNum         string `xml:"lineNum"`
	ColumnNum       string `xml:"columnNum"`
	ErrorMsg        string `xml:"errorMsg"`
	ErrorSourceCode string `xml:"errorSourceCode"`
	Repair          string `xml:"repair"`
	SequenceID      string `xml:"sequenceID"`
	DecisionPass    string `xml:"decisionPass"`
	DecisionFail    string `xml:"decisionFail"`
}

type ErrorItem struct {
	Line     string `json:"line" yaml:"line"`
	Column   string `json:"column" yaml:"column"`
	Message  string `json:"message" yaml:"message"`
	Solution string `json:"solution" yaml:"solution"`
}

type WarningItem struct {
	Line    string `json:"line" yaml:"line"`
	Column  string `json:"column" yaml:"column"`
	Message string `json:"message" yaml:"message"`
	Source  string `json:"source" yaml:"source"`
}

// Report is the normalized result of one check.
type Report struct {
	Status            string        `json:"status" yaml:"status"`
	Errors            []ErrorItem   `json:"errors" yaml:"errors"`
	PotentialProblems []WarningItem `json:"potentialProblems" yaml:"potentialProblems"`
}

// Catalog resolves raw message identifiers and decides which resolved
// messages are suppressed.
type Catalog interface {
	Resolve(raw string) string
	Ignored(resolved string) bool
}
