package keyword

import (
	"fmt"
	"unicode/utf8"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
)

// MinLengthChecker returns a checker requiring strings of at least min
// characters (Unicode code points). Non-string values are valid; that
// mirrors HTML forms semantics for non-applicable types.
func MinLengthChecker(min int) jsf.Checker {
	return lengthChecker("minLength", min, func(length int) bool {
		return length >= min
	})
}

// MaxLengthChecker returns a checker requiring strings of at most max
// characters. Non-string values are valid.
func MaxLengthChecker(max int) jsf.Checker {
	return lengthChecker("maxLength", max, func(length int) bool {
		return length <= max
	})
}

func lengthChecker(keyword string, bound int, ok func(length int) bool) jsf.Checker {
	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		if report, empty := emptyVerdict(v, invert, keyword); empty {
			return report
		}
		if v.Kind() != jsf.KindString {
			return verdict(true, invert, func() jsf.ErrorReport {
				return jsf.NewReport(keyword, bound, v.Interface(), "non-string value unexpectedly valid under inverted "+keyword)
			})
		}

		length := utf8.RuneCountInString(v.Str())
		return verdict(ok(length), invert, func() jsf.ErrorReport {
			if invert {
				return jsf.NewReport(keyword, bound, length,
					fmt.Sprintf("string length %d must violate %s %d", length, keyword, bound))
			}
			return jsf.NewReport(keyword, bound, length,
				fmt.Sprintf("string length %d violates %s %d", length, keyword, bound))
		})
	})
}
