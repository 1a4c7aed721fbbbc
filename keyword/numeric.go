package keyword

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
)

// MinimumChecker returns a checker requiring numeric values >= min, or
// strictly > min when exclusive is set. Non-numeric values are always
// valid, per the HTML forms precedent for non-applicable types.
func MinimumChecker(min float64, exclusive bool) jsf.Checker {
	keyword := "minimum"
	if exclusive {
		keyword = "exclusiveMinimum"
	}
	return rangeChecker(keyword, min, func(n float64) bool {
		if exclusive {
			return n > min
		}
		return n >= min
	})
}

// MaximumChecker returns a checker requiring numeric values <= max, or
// strictly < max when exclusive is set. Non-numeric values are valid.
func MaximumChecker(max float64, exclusive bool) jsf.Checker {
	keyword := "maximum"
	if exclusive {
		keyword = "exclusiveMaximum"
	}
	return rangeChecker(keyword, max, func(n float64) bool {
		if exclusive {
			return n < max
		}
		return n <= max
	})
}

// ExclusiveMinimumChecker is the standalone numeric form of
// exclusiveMinimum introduced in draft 6.
func ExclusiveMinimumChecker(min float64) jsf.Checker {
	return MinimumChecker(min, true)
}

// ExclusiveMaximumChecker is the standalone numeric form of
// exclusiveMaximum introduced in draft 6.
func ExclusiveMaximumChecker(max float64) jsf.Checker {
	return MaximumChecker(max, true)
}

func rangeChecker(keyword string, bound float64, ok func(n float64) bool) jsf.Checker {
	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		if report, empty := emptyVerdict(v, invert, keyword); empty {
			return report
		}
		if v.Kind() != jsf.KindNumber {
			return verdict(true, invert, func() jsf.ErrorReport {
				return jsf.NewReport(keyword, bound, v.Interface(), "non-numeric value unexpectedly valid under inverted "+keyword)
			})
		}

		n := v.Num()
		return verdict(ok(n), invert, func() jsf.ErrorReport {
			if invert {
				return jsf.NewReport(keyword, bound, n,
					fmt.Sprintf("%v must violate %s %v", n, keyword, bound))
			}
			return jsf.NewReport(keyword, bound, n,
				fmt.Sprintf("%v violates %s %v", n, keyword, bound))
		})
	})
}

// MultipleOfChecker returns a checker requiring numeric values to be an
// exact multiple of factor. The remainder is computed in decimal arithmetic
// so that e.g. 0.3 is a multiple of 0.1. A non-finite or zero factor is a
// construction-time error. Non-numeric values are valid.
func MultipleOfChecker(factor float64) (jsf.Checker, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor == 0 {
		return nil, fmt.Errorf("multipleOf: factor must be a non-zero finite number, got %v", factor)
	}
	decFactor := decimal.NewFromFloat(factor)

	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		if report, empty := emptyVerdict(v, invert, "multipleOf"); empty {
			return report
		}
		if v.Kind() != jsf.KindNumber {
			return verdict(true, invert, func() jsf.ErrorReport {
				return jsf.NewReport("multipleOf", factor, v.Interface(), "non-numeric value unexpectedly valid under inverted multipleOf")
			})
		}

		n := v.Num()
		valid := !math.IsNaN(n) && !math.IsInf(n, 0) &&
			decimal.NewFromFloat(n).Mod(decFactor).IsZero()
		return verdict(valid, invert, func() jsf.ErrorReport {
			if invert {
				return jsf.NewReport("multipleOf", factor, n,
					fmt.Sprintf("%v must not be a multiple of %v", n, factor))
			}
			return jsf.NewReport("multipleOf", factor, n,
				fmt.Sprintf("%v is not a multiple of %v", n, factor))
		})
	}), nil
}
