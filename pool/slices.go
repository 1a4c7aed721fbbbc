// Package pool provides pooled scratch slices used on validation hot paths.
package pool

import "sync"

// stringSlicePool backs missing-key accumulation in the dependencies and
// required keyword checkers.
var stringSlicePool = sync.Pool{
	New: func() any {
		s := make([]string, 0, 16)
		return &s
	},
}

// AcquireStringSlice gets an empty string slice from the pool.
func AcquireStringSlice() *[]string {
	s := stringSlicePool.Get().(*[]string)
	*s = (*s)[:0]
	return s
}

// ReleaseStringSlice returns a string slice to the pool. The slice must not
// be referenced after release; copy it first if the data lives on.
func ReleaseStringSlice(s *[]string) {
	if s == nil {
		return
	}
	// Don't keep oversized slices
	if cap(*s) <= 256 {
		stringSlicePool.Put(s)
	}
}

// intSlicePool backs passing-branch accumulation in the oneOf combinator.
var intSlicePool = sync.Pool{
	New: func() any {
		s := make([]int, 0, 8)
		return &s
	},
}

// AcquireIntSlice gets an empty int slice from the pool.
func AcquireIntSlice() *[]int {
	s := intSlicePool.Get().(*[]int)
	*s = (*s)[:0]
	return s
}

// ReleaseIntSlice returns an int slice to the pool.
func ReleaseIntSlice(s *[]int) {
	if s == nil {
		return
	}
	if cap(*s) <= 256 {
		intSlicePool.Put(s)
	}
}
