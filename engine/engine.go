// Package engine exposes the high-level validator: draft selection, schema
// compilation with caching, single and batch validation, and metrics.
package engine

import (
	"context"
	"fmt"
	"time"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
	"github.com/saif-khaled/angular2-json-schema-form/combinator"
	"github.com/saif-khaled/angular2-json-schema-form/compiler"
	"github.com/saif-khaled/angular2-json-schema-form/pkg/logger"
	"github.com/saif-khaled/angular2-json-schema-form/worker"
)

// Validator validates instances against JSON Schema documents.
type Validator struct {
	draft    jsf.Draft
	options  jsf.Options
	compiler *compiler.Compiler
	metrics  *jsf.Metrics
}

// New creates a Validator for the given draft. An unrecognized draft is an
// error; use jsf.DefaultDraft when in doubt.
func New(draft jsf.Draft, opts ...jsf.Option) (*Validator, error) {
	if !draft.IsValid() {
		return nil, fmt.Errorf("unsupported draft %q", draft)
	}

	options := jsf.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	comp, err := compiler.New(func(o *jsf.Options) { *o = *options })
	if err != nil {
		return nil, err
	}

	v := &Validator{
		draft:    draft,
		options:  *options,
		compiler: comp,
	}
	if options.CollectMetrics {
		v.metrics = jsf.NewMetrics()
		comp.SetMetrics(v.metrics)
	}

	logger.Debug("validator created: draft=%s workers=%d", draft, options.WorkerCount)
	return v, nil
}

// Draft returns the draft this validator targets.
func (v *Validator) Draft() jsf.Draft { return v.draft }

// Compile builds a checker for schema without validating anything. Use it to
// surface schema errors up front or to share one checker across calls.
func (v *Validator) Compile(schema map[string]any) (jsf.Checker, error) {
	return v.compiler.Compile(schema)
}

// Validate checks instance against schema. A nil report means the instance
// is valid. The error return covers schema problems and context
// cancellation, not validation findings.
func (v *Validator) Validate(ctx context.Context, schema map[string]any, instance any) (jsf.ErrorReport, error) {
	checker, err := v.compiler.Compile(schema)
	if err != nil {
		return nil, err
	}
	return v.run(ctx, checker, jsf.FromAny(instance))
}

// ValidateControl checks a form control tree against schema and stores the
// resulting report on the control. It returns the report as well.
func (v *Validator) ValidateControl(ctx context.Context, schema map[string]any, control jsf.Control) (jsf.ErrorReport, error) {
	checker, err := v.compiler.Compile(schema)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	report := checker.Check(control, false)
	v.record(report, time.Since(start))

	control.SetErrors(report)
	return report, nil
}

// checkerValidator adapts a compiled checker to the worker pool interface.
type checkerValidator struct {
	v       *Validator
	checker jsf.Checker
}

func (cv checkerValidator) ValidateValue(ctx context.Context, instance jsf.Value) (jsf.ErrorReport, error) {
	return cv.v.run(ctx, cv.checker, instance)
}

// ValidateBatch validates every instance against schema using the
// configured worker pool. The returned reports line up with the input
// slice; a nil entry means that instance is valid.
func (v *Validator) ValidateBatch(ctx context.Context, schema map[string]any, instances []any) ([]jsf.ErrorReport, error) {
	checker, err := v.compiler.Compile(schema)
	if err != nil {
		return nil, err
	}

	pool := worker.NewPool(checkerValidator{v: v, checker: checker}, v.options.WorkerCount)
	defer pool.Close()

	// Submit from a separate goroutine so result channels drain while jobs
	// queue; batches larger than the pool buffers would deadlock otherwise.
	go func() {
		for i, instance := range instances {
			if !pool.Submit(worker.Job{
				ID:       fmt.Sprintf("batch-%d", i),
				Index:    i,
				Instance: jsf.FromAny(instance),
			}) {
				return
			}
		}
	}()

	reports := make([]jsf.ErrorReport, len(instances))
	for received := 0; received < len(instances); received++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case result := <-pool.Results():
			if result.Err != nil {
				return nil, fmt.Errorf("job %s: %w", result.ID, result.Err)
			}
			if result.Index >= 0 && result.Index < len(reports) {
				reports[result.Index] = result.Report
			}
		}
	}
	return reports, nil
}

// ComposeAsync combines async checkers using the validator's concurrency
// setting: sequential by default, parallel when the ParallelAsync option is
// on. Either way every checker runs to completion and the merged report is
// deterministic.
func (v *Validator) ComposeAsync(checkers ...jsf.AsyncChecker) jsf.AsyncChecker {
	if v.options.ParallelAsync {
		return combinator.ComposeAsyncParallel(checkers...)
	}
	return combinator.ComposeAsync(checkers...)
}

// Metrics returns the validator's metrics collector, or nil when metrics
// collection is disabled.
func (v *Validator) Metrics() *jsf.Metrics { return v.metrics }

func (v *Validator) run(ctx context.Context, checker jsf.Checker, instance jsf.Value) (jsf.ErrorReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	report := checker.Check(jsf.NewControl(instance), false)
	v.record(report, time.Since(start))
	return report, nil
}

func (v *Validator) record(report jsf.ErrorReport, elapsed time.Duration) {
	if v.metrics == nil {
		return
	}
	v.metrics.RecordValidation(elapsed, report == nil)
}
