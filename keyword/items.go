package keyword

import (
	"fmt"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
)

// MinItemsChecker returns a checker requiring array values with at least
// min elements. Non-array values are valid.
func MinItemsChecker(min int) jsf.Checker {
	return itemCountChecker("minItems", min, func(count int) bool {
		return count >= min
	})
}

// MaxItemsChecker returns a checker requiring array values with at most
// max elements. Non-array values are valid.
func MaxItemsChecker(max int) jsf.Checker {
	return itemCountChecker("maxItems", max, func(count int) bool {
		return count <= max
	})
}

func itemCountChecker(keyword string, bound int, ok func(count int) bool) jsf.Checker {
	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		if report, empty := emptyVerdict(v, invert, keyword); empty {
			return report
		}
		if v.Kind() != jsf.KindArray {
			return verdict(true, invert, func() jsf.ErrorReport {
				return jsf.NewReport(keyword, bound, v.Interface(), "non-array value unexpectedly valid under inverted "+keyword)
			})
		}

		count := len(v.Items())
		return verdict(ok(count), invert, func() jsf.ErrorReport {
			if invert {
				return jsf.NewReport(keyword, bound, count,
					fmt.Sprintf("item count %d must violate %s %d", count, keyword, bound))
			}
			return jsf.NewReport(keyword, bound, count,
				fmt.Sprintf("item count %d violates %s %d", count, keyword, bound))
		})
	})
}

// UniqueItemsChecker returns a checker requiring every pair of array
// elements to differ under deep equality. Non-array values are valid.
func UniqueItemsChecker() jsf.Checker {
	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		if report, empty := emptyVerdict(v, invert, "uniqueItems"); empty {
			return report
		}
		if v.Kind() != jsf.KindArray {
			return verdict(true, invert, func() jsf.ErrorReport {
				return jsf.NewReport("uniqueItems", true, v.Interface(), "non-array value unexpectedly valid under inverted uniqueItems")
			})
		}

		items := v.Items()
		firstDup := -1
		for i := 1; i < len(items) && firstDup < 0; i++ {
			for j := 0; j < i; j++ {
				if items[i].Equal(items[j]) {
					firstDup = i
					break
				}
			}
		}

		return verdict(firstDup < 0, invert, func() jsf.ErrorReport {
			if invert {
				return jsf.NewReport("uniqueItems", true, v.Interface(), "items must contain a duplicate")
			}
			return jsf.NewReport("uniqueItems", true, items[firstDup].Interface(),
				fmt.Sprintf("duplicate item at index %d", firstDup))
		})
	})
}

// ContainsChecker is a stub: the contains keyword is a known limitation of
// this validator and currently fails open (every value is valid). It exists
// so compiled schemas using contains keep composing; do not rely on it to
// reject anything.
func ContainsChecker() jsf.Checker {
	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		return verdict(true, invert, func() jsf.ErrorReport {
			return jsf.NewReport("contains", nil, c.Value().Interface(), "value unexpectedly valid under inverted contains")
		})
	})
}
