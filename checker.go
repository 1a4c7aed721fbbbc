package jsonschemaform

import "context"

// Checker is a compiled validation predicate. Check returns nil when the
// control's value is valid, or a non-empty report describing each failed
// keyword.
//
// The invert flag is a strict boolean complement of validity: for every
// checker c and control x, c.Check(x, true) is nil exactly when
// c.Check(x, false) is non-nil. Inversion is used internally by the not and
// oneOf combinators; ordinary callers pass false.
//
// Checkers are immutable after construction and hold no per-invocation
// state, so a single checker may be invoked concurrently.
type Checker interface {
	Check(c Control, invert bool) ErrorReport
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(c Control, invert bool) ErrorReport

// Check calls the wrapped function.
func (f CheckerFunc) Check(c Control, invert bool) ErrorReport {
	return f(c, invert)
}

// AsyncChecker is a checker whose verdict needs to be awaited, e.g. a
// remote uniqueness lookup. The error return is reserved for infrastructure
// failures (network, cancelled context); validation failure is still an
// ErrorReport. The core defines no cancellation of its own beyond honoring
// the context.
type AsyncChecker interface {
	Check(ctx context.Context, c Control, invert bool) (ErrorReport, error)
}

// AsyncCheckerFunc adapts a plain function to the AsyncChecker interface.
type AsyncCheckerFunc func(ctx context.Context, c Control, invert bool) (ErrorReport, error)

// Check calls the wrapped function.
func (f AsyncCheckerFunc) Check(ctx context.Context, c Control, invert bool) (ErrorReport, error) {
	return f(ctx, c, invert)
}

// Async lifts a synchronous checker into the async contract.
func Async(inner Checker) AsyncChecker {
	return AsyncCheckerFunc(func(ctx context.Context, c Control, invert bool) (ErrorReport, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return inner.Check(c, invert), nil
	})
}
