package worker

import jsf "github.com/saif-khaled/angular2-json-schema-form"

// Job is one instance to validate.
type Job struct {
	// ID is a caller-chosen identifier carried through to the result.
	ID string

	// Index is the job's position in its batch. Results arrive out of
	// order; the index lets callers restore submission order.
	Index int

	// Instance is the value to validate.
	Instance jsf.Value
}

// JobResult is the outcome of one Job.
type JobResult struct {
	// ID matches the Job.ID that produced this result.
	ID string

	// Index matches Job.Index.
	Index int

	// Report holds the validation findings. Nil means the instance is
	// valid.
	Report jsf.ErrorReport

	// Err is set when validation itself could not run.
	Err error

	// Duration is the time taken to validate, in nanoseconds.
	Duration int64
}

// BatchResult aggregates results from multiple jobs.
type BatchResult struct {
	// Results contains all job results, in completion order.
	Results []*JobResult

	// TotalJobs is the number of jobs submitted.
	TotalJobs int

	// CompletedJobs is the number of jobs completed (including errors).
	CompletedJobs int

	// TotalDuration is the total time for all validations, in
	// nanoseconds.
	TotalDuration int64
}

// HasErrors reports whether any job failed validation or errored.
func (br *BatchResult) HasErrors() bool {
	for _, r := range br.Results {
		if r.Err != nil || r.Report != nil {
			return true
		}
	}
	return false
}

// ErrorCount returns the total number of keyword failures across all
// results.
func (br *BatchResult) ErrorCount() int {
	count := 0
	for _, r := range br.Results {
		count += len(r.Report)
	}
	return count
}
