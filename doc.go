// Package jsonschemaform provides a composable JSON Schema validation core.
//
// The package is built around small, reusable checkers: each checker
// implements exactly one JSON Schema validation keyword (type, enum, const,
// minLength, pattern, minimum, multipleOf, ...) and a set of combinators
// merges checkers with schema-level logic (allOf, anyOf, oneOf, not).
// Checkers are pure and read-only, so a compiled checker tree is safe to
// share across goroutines.
//
// # Quick Start
//
//	import (
//	    jsf "github.com/saif-khaled/angular2-json-schema-form"
//	    "github.com/saif-khaled/angular2-json-schema-form/engine"
//	)
//
//	validator, err := engine.New(jsf.Draft2020_12)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := validator.Validate(ctx, schemaDoc, instance)
//	if report != nil {
//	    for keyword, detail := range report {
//	        fmt.Println(keyword, detail.Message)
//	    }
//	}
//
// A nil report means the value is valid; a non-nil report maps each failed
// keyword to the required value, the actual value, and a message.
//
// # Building Checkers By Hand
//
// The keyword and combinator packages expose the factories directly, for
// hosts that compile schemas themselves:
//
//	c := combinator.OneOf(
//	    keyword.MustType("string"),
//	    keyword.MustType("number"),
//	)
//	report := c.Check(control, false)
//
// Every checker takes an invert flag as its second parameter. Inversion is
// a strict boolean complement of validity and exists for the not/oneOf
// combinators; ordinary callers pass false.
//
// # Semantics
//
// The keyword checkers follow the HTML-forms reading of JSON Schema used by
// schema-driven form libraries:
//
//   - Absent data is not checked: a checker other than required treats an
//     absent, null, or empty-string value as valid.
//   - Keywords fail open on non-applicable types: minLength on a number is
//     valid, minimum on a string is valid.
//   - pattern matches anywhere in the string by default; a flag restores
//     whole-string anchoring.
//   - enum and const match after an explicit string/number/boolean/null
//     coercion table.
//   - Unknown format tags are treated as valid.
//
// # Performance Features
//
//   - Worker Pool: parallel batch validation in the engine package
//   - Generic LRU cache for compiled patterns and compiled schemas
//   - Lock-free metrics with per-keyword timing
//   - Optional parallel dispatch of async checker branches
package jsonschemaform
