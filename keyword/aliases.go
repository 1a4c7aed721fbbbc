package keyword

import (
	jsf "github.com/saif-khaled/angular2-json-schema-form"
)

// Convenience aliases kept for drop-in compatibility with a conventional
// forms-validators API. Each delegates to the canonical keyword factory.

// Min is an alias for an inclusive MinimumChecker.
func Min(min float64) jsf.Checker {
	return MinimumChecker(min, false)
}

// Max is an alias for an inclusive MaximumChecker.
func Max(max float64) jsf.Checker {
	return MaximumChecker(max, false)
}

// RequiredTrue requires the value to be the boolean true, e.g. a checked
// consent box. Alias for ConstChecker(true).
func RequiredTrue() jsf.Checker {
	return ConstChecker(jsf.Bool(true))
}

// Email is an alias for FormatChecker("email").
func Email() jsf.Checker {
	return FormatChecker("email")
}
