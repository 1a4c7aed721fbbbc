package jsonschemaform

import (
	"sort"
	"strings"
)

// ErrorDetail describes a single keyword failure: the value the keyword
// required, the value actually seen, and a human-readable message.
// Combinator failures additionally carry the failing branch reports.
type ErrorDetail struct {
	// Required is the keyword's configured constraint (e.g. the minimum
	// length, the allowed enum set).
	Required any `json:"requiredValue,omitempty"`

	// Actual is the offending value, or a derived measure of it (e.g. the
	// actual string length for minLength).
	Actual any `json:"actualValue,omitempty"`

	// Message is the human-readable description of the failure.
	Message string `json:"message,omitempty"`

	// Branches holds per-branch sub-reports for combinator failures
	// (anyOf, oneOf). Empty for plain keyword failures.
	Branches []ErrorReport `json:"branches,omitempty"`
}

// ErrorReport maps a JSON Schema keyword name to the detail of its failure.
// A nil report means valid; a non-nil report is never empty. Validation
// failure is an ordinary return value, never a Go error.
type ErrorReport map[string]ErrorDetail

// NewReport builds a single-keyword report.
func NewReport(keyword string, required, actual any, message string) ErrorReport {
	return ErrorReport{keyword: {Required: required, Actual: actual, Message: message}}
}

// Merge unions another report into this one. Keys already present are kept;
// later contributors do not overwrite earlier ones. Either side may be nil.
// The merged report is returned (the receiver when possible).
func (r ErrorReport) Merge(other ErrorReport) ErrorReport {
	if len(other) == 0 {
		return r
	}
	if r == nil {
		r = make(ErrorReport, len(other))
	}
	for k, detail := range other {
		if _, exists := r[k]; !exists {
			r[k] = detail
		}
	}
	return r
}

// Keywords returns the failed keyword names in sorted order.
func (r ErrorReport) Keywords() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String joins the per-keyword messages into one line, in keyword order.
func (r ErrorReport) String() string {
	if len(r) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r))
	for _, k := range r.Keywords() {
		msg := r[k].Message
		if msg == "" {
			msg = "constraint violated"
		}
		parts = append(parts, k+": "+msg)
	}
	return strings.Join(parts, "; ")
}
