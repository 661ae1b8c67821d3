package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind tells which half of a Result is populated.
type Kind string

const (
	KindReport Kind = "report"
	KindText   Kind = "text"
)

// GroupReport is the model's assessment of one group.
type GroupReport struct {
	GroupID      string  `json:"classId"`
	RiskScore    float64 `json:"riskScore"`
	BalanceScore float64 `json:"balanceScore"`
	Comment      string  `json:"comment"`
}

// Report is the structured reply requested from the model.
type Report struct {
	OverallScore    float64       `json:"overallScore"`
	OverallComment  string        `json:"overallComment"`
	Groups          []GroupReport `json:"classes"`
	Recommendations []string      `json:"recommendations"`
}

// Result is either a structured report or free text (an unparseable reply
// or a user-facing error message, which may contain **bold** markers).
type Result struct {
	Kind   Kind    `json:"kind"`
	Report *Report `json:"report,omitempty"`
	Text   string  `json:"text,omitempty"`
}

// NoAnalysisMessage is returned when the model produces nothing.
const NoAnalysisMessage = "Could not produce an analysis."

// TextResult wraps free text.
func TextResult(text string) Result {
	return Result{Kind: KindText, Text: text}
}

// ParseResult decodes a model reply. Text that is not a valid report is kept
// verbatim as a text result.
func ParseResult(raw string) Result {
	text := strings.TrimSpace(raw)
	if text == "" {
		return TextResult(NoAnalysisMessage)
	}

	body := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(text, "```json"), "```"))
	var r Report
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return TextResult(raw)
	}
	return Result{Kind: KindReport, Report: &r}
}

var boldMarkers = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Flatten renders r as plain text, one line per spreadsheet row.
func (r Result) Flatten() string {
	if r.Kind != KindReport || r.Report == nil {
		return boldMarkers.ReplaceAllString(r.Text, "$1")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[Overall score]: %s\n", score(r.Report.OverallScore))
	fmt.Fprintf(&b, "[Overall comment]: %s\n\n", r.Report.OverallComment)

	b.WriteString("[Details]\n")
	for _, g := range r.Report.Groups {
		fmt.Fprintf(&b, "Class %s (risk: %s, balance: %s): %s\n",
			g.GroupID, score(g.RiskScore), score(g.BalanceScore), g.Comment)
	}

	b.WriteString("\n[Recommendations]\n")
	for i, rec := range r.Report.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}
	return b.String()
}

func score(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
