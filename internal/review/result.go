// Package review audits generated documents, repairs rejected ones, and
// runs the bounded validate/fix loop that gates what leaves the pipeline.
package review

import "fmt"

// Status is a review verdict.
type Status string

const (
	StatusPass   Status = "PASS"
	StatusReject Status = "REJECT"
)

// Metrics are the audit's 0-100 quality scores.
type Metrics struct {
	Readability   int `json:"readability"`
	CognitiveLoad int `json:"cognitive_load"`
	Register      int `json:"register"`
}

// Issue is one concrete problem found in a document.
type Issue struct {
	// Location names where the problem is, e.g. "step 3, block 2".
	Location     string `json:"location"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	SuggestedFix string `json:"suggested_fix,omitempty"`
}

// Result is a full review verdict. A REJECT always carries at least one
// issue.
type Result struct {
	Status  Status  `json:"status"`
	Metrics Metrics `json:"metrics"`
	Issues  []Issue `json:"issues"`
}

// Passed reports whether the document was accepted.
func (r Result) Passed() bool {
	return r.Status == StatusPass
}

// ErrExhausted is returned when a document still fails review after the
// maximum number of fix attempts. It carries the final verdict so callers
// can report why.
type ErrExhausted struct {
	Attempts int
	Result   Result
}

func (e *ErrExhausted) Error() string {
	return fmt.Sprintf("document rejected after %d fix attempts (%d open issues)",
		e.Attempts, len(e.Result.Issues))
}
