// Package combinator merges checkers with JSON Schema logical semantics:
// allOf, anyOf, oneOf, and not, plus async sequencing. A combinator tree is
// a static expression evaluated fresh on every call; no state persists
// between invocations.
//
// Branch checkers always run uninverted; the combinator derives its own
// validity from branch validity and applies the outer invert flag itself.
// This keeps the invert contract (strict complement of validity) intact at
// every level of the tree.
package combinator

import (
	"fmt"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
	"github.com/saif-khaled/angular2-json-schema-form/pool"
)

// AllOf returns a checker that is valid iff every branch is valid. On
// failure the report is the union of all failing branch reports; keys
// contributed first win.
func AllOf(checkers ...jsf.Checker) jsf.Checker {
	return conjunction("allOf", checkers)
}

// Compose is an alias for AllOf retained for naming compatibility with
// conventional forms-validators APIs. It differs only in how an inverted
// failure is labeled, not in logic.
func Compose(checkers ...jsf.Checker) jsf.Checker {
	return conjunction("compose", checkers)
}

func conjunction(keyword string, checkers []jsf.Checker) jsf.Checker {
	branches := make([]jsf.Checker, len(checkers))
	copy(branches, checkers)

	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		var merged jsf.ErrorReport
		for _, branch := range branches {
			merged = merged.Merge(branch.Check(c, false))
		}

		valid := merged == nil
		if valid != invert {
			return nil
		}
		if invert {
			return jsf.NewReport(keyword, nil, c.Value().Interface(),
				fmt.Sprintf("value must fail at least one of %d schemas", len(branches)))
		}
		return merged
	})
}

// AnyOf returns a checker that is valid iff at least one branch is valid.
// When every branch fails, the report unions all branch reports and adds an
// anyOf entry carrying the per-branch sub-reports.
func AnyOf(checkers ...jsf.Checker) jsf.Checker {
	branches := make([]jsf.Checker, len(checkers))
	copy(branches, checkers)

	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		reports := make([]jsf.ErrorReport, 0, len(branches))
		anyValid := false
		for _, branch := range branches {
			report := branch.Check(c, false)
			if report == nil {
				anyValid = true
			} else {
				reports = append(reports, report)
			}
		}

		if anyValid != invert {
			return nil
		}
		if invert {
			return jsf.NewReport("anyOf", nil, c.Value().Interface(),
				fmt.Sprintf("value must fail all %d schemas", len(branches)))
		}

		merged := jsf.ErrorReport{}
		for _, report := range reports {
			merged = merged.Merge(report)
		}
		merged["anyOf"] = jsf.ErrorDetail{
			Actual:   c.Value().Interface(),
			Message:  fmt.Sprintf("value matches none of %d schemas", len(branches)),
			Branches: reports,
		}
		return merged
	})
}

// OneOf returns a checker that is valid iff exactly one branch is valid.
// Zero valid branches reports like anyOf; two or more valid branches report
// how many passed and which.
func OneOf(checkers ...jsf.Checker) jsf.Checker {
	branches := make([]jsf.Checker, len(checkers))
	copy(branches, checkers)

	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		reports := make([]jsf.ErrorReport, 0, len(branches))
		passed := pool.AcquireIntSlice()
		defer pool.ReleaseIntSlice(passed)
		for i, branch := range branches {
			report := branch.Check(c, false)
			if report == nil {
				*passed = append(*passed, i)
			} else {
				reports = append(reports, report)
			}
		}

		valid := len(*passed) == 1
		if valid != invert {
			return nil
		}
		if invert {
			return jsf.NewReport("oneOf", 1, c.Value().Interface(),
				fmt.Sprintf("value must not match exactly one of %d schemas", len(branches)))
		}

		if len(*passed) == 0 {
			merged := jsf.ErrorReport{}
			for _, report := range reports {
				merged = merged.Merge(report)
			}
			merged["oneOf"] = jsf.ErrorDetail{
				Required: 1,
				Actual:   0,
				Message:  fmt.Sprintf("0 of %d oneOf schemas valid", len(branches)),
				Branches: reports,
			}
			return merged
		}

		indexes := make([]int, len(*passed))
		copy(indexes, *passed)
		return jsf.NewReport("oneOf", 1, len(indexes),
			fmt.Sprintf("%d of %d oneOf schemas valid (branches %v)", len(indexes), len(branches), indexes))
	})
}

// Not returns a checker that is valid iff the inner checker, invoked with
// invert=true, returns nil. A failure replaces the inner report with a
// synthetic not entry. Double negation is logically the identity but
// discouraged: the resulting messages are hard to read.
func Not(inner jsf.Checker) jsf.Checker {
	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		if inner.Check(c, !invert) == nil {
			return nil
		}
		if invert {
			return jsf.NewReport("not", nil, c.Value().Interface(), "value must match the negated schema")
		}
		return jsf.NewReport("not", nil, c.Value().Interface(), "value must not match the negated schema")
	})
}
