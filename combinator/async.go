package combinator

import (
	"context"

	"github.com/sourcegraph/conc"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
)

// ComposeAsync runs all checkers to completion sequentially and merges their
// reports. There is no short-circuit: every checker observes the control even
// when an earlier one already failed. A non-nil error from a checker aborts
// the run; validation findings travel in the report, errors mean the check
// itself could not execute.
func ComposeAsync(checkers ...jsf.AsyncChecker) jsf.AsyncChecker {
	branches := make([]jsf.AsyncChecker, len(checkers))
	copy(branches, checkers)

	return jsf.AsyncCheckerFunc(func(ctx context.Context, c jsf.Control, invert bool) (jsf.ErrorReport, error) {
		var merged jsf.ErrorReport
		for _, branch := range branches {
			report, err := branch.Check(ctx, c, false)
			if err != nil {
				return nil, err
			}
			merged = merged.Merge(report)
		}
		return asyncVerdict(merged, c, invert)
	})
}

// ComposeAsyncParallel behaves like ComposeAsync but runs the checkers
// concurrently. Reports merge in declaration order regardless of completion
// order, so the combined report is deterministic.
func ComposeAsyncParallel(checkers ...jsf.AsyncChecker) jsf.AsyncChecker {
	branches := make([]jsf.AsyncChecker, len(checkers))
	copy(branches, checkers)

	return jsf.AsyncCheckerFunc(func(ctx context.Context, c jsf.Control, invert bool) (jsf.ErrorReport, error) {
		reports := make([]jsf.ErrorReport, len(branches))
		errs := make([]error, len(branches))

		var wg conc.WaitGroup
		for i, branch := range branches {
			i, branch := i, branch
			wg.Go(func() {
				reports[i], errs[i] = branch.Check(ctx, c, false)
			})
		}
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}

		var merged jsf.ErrorReport
		for _, report := range reports {
			merged = merged.Merge(report)
		}
		return asyncVerdict(merged, c, invert)
	})
}

func asyncVerdict(merged jsf.ErrorReport, c jsf.Control, invert bool) (jsf.ErrorReport, error) {
	valid := merged == nil
	if valid != invert {
		return nil, nil
	}
	if invert {
		return jsf.NewReport("composeAsync", nil, c.Value().Interface(),
			"value must fail at least one async check"), nil
	}
	return merged, nil
}
