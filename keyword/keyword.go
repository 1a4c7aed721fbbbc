// Package keyword implements one checker factory per JSON Schema validation
// keyword. Each factory captures its configuration at construction time and
// returns an immutable jsf.Checker; the returned checkers are pure, hold no
// per-invocation state, and are safe for concurrent use.
//
// Common contract: a value that is absent, null, or the empty string is not
// checked (it is valid under every keyword except required), and keywords
// fail open on non-applicable types, mirroring HTML forms semantics: string
// keywords skip numbers, numeric keywords skip strings, and so on. The
// invert flag is a strict boolean complement of validity, including for
// empty values.
//
// Misconfiguration (an invalid pattern, a non-finite multipleOf factor) is
// reported as a construction-time error from the factory, never as a
// call-time report.
package keyword

import (
	jsf "github.com/saif-khaled/angular2-json-schema-form"
)

// verdict applies the invert contract: a passing check returns nil, a
// failing one returns report(). Inversion swaps the two outcomes.
func verdict(valid, invert bool, report func() jsf.ErrorReport) jsf.ErrorReport {
	if valid != invert {
		return nil
	}
	return report()
}

// emptyVerdict handles the shared absent-data rule: empty values are valid
// under every keyword (except required, which has its own handling).
// Returns the verdict and true when the value was empty.
func emptyVerdict(v jsf.Value, invert bool, keyword string) (jsf.ErrorReport, bool) {
	if !v.IsEmpty() {
		return nil, false
	}
	return verdict(true, invert, func() jsf.ErrorReport {
		return jsf.NewReport(keyword, nil, v.Interface(), "empty value unexpectedly present under inverted "+keyword)
	}), true
}

// NullChecker returns a checker that accepts every value. It is the result
// of compiling an empty schema and the fail-open stand-in for unsupported
// constructs.
func NullChecker() jsf.Checker {
	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		return verdict(true, invert, func() jsf.ErrorReport {
			return jsf.NewReport("null", nil, c.Value().Interface(), "value unexpectedly valid under inverted null checker")
		})
	})
}
