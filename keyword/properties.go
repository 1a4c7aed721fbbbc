package keyword

import (
	"fmt"
	"sort"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
	"github.com/saif-khaled/angular2-json-schema-form/pool"
)

// MinPropertiesChecker returns a checker requiring object values with at
// least min members. Non-object values are valid.
func MinPropertiesChecker(min int) jsf.Checker {
	return propertyCountChecker("minProperties", min, func(count int) bool {
		return count >= min
	})
}

// MaxPropertiesChecker returns a checker requiring object values with at
// most max members. Non-object values are valid.
func MaxPropertiesChecker(max int) jsf.Checker {
	return propertyCountChecker("maxProperties", max, func(count int) bool {
		return count <= max
	})
}

func propertyCountChecker(keyword string, bound int, ok func(count int) bool) jsf.Checker {
	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		if report, empty := emptyVerdict(v, invert, keyword); empty {
			return report
		}
		if v.Kind() != jsf.KindObject {
			return verdict(true, invert, func() jsf.ErrorReport {
				return jsf.NewReport(keyword, bound, v.Interface(), "non-object value unexpectedly valid under inverted "+keyword)
			})
		}

		count := len(v.Fields())
		return verdict(ok(count), invert, func() jsf.ErrorReport {
			if invert {
				return jsf.NewReport(keyword, bound, count,
					fmt.Sprintf("member count %d must violate %s %d", count, keyword, bound))
			}
			return jsf.NewReport(keyword, bound, count,
				fmt.Sprintf("member count %d violates %s %d", count, keyword, bound))
		})
	})
}

// DependenciesChecker returns a checker for the property-list form of the
// dependencies keyword: for each declared key that is present with a
// non-empty value, every listed sibling key must also be present and
// non-empty.
//
// The nested-schema form of dependencies is a known limitation of this
// validator and is not handled here; the compiler treats schema-form
// entries as fail-open. Non-object values are valid.
func DependenciesChecker(deps map[string][]string) jsf.Checker {
	declared := make(map[string][]string, len(deps))
	keys := make([]string, 0, len(deps))
	for key, siblings := range deps {
		copied := make([]string, len(siblings))
		copy(copied, siblings)
		declared[key] = copied
		keys = append(keys, key)
	}
	// Deterministic evaluation and report ordering.
	sort.Strings(keys)

	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		if report, empty := emptyVerdict(v, invert, "dependencies"); empty {
			return report
		}
		if v.Kind() != jsf.KindObject {
			return verdict(true, invert, func() jsf.ErrorReport {
				return jsf.NewReport("dependencies", declared, v.Interface(), "non-object value unexpectedly valid under inverted dependencies")
			})
		}

		fields := v.Fields()
		missing := pool.AcquireStringSlice()
		defer pool.ReleaseStringSlice(missing)
		for _, key := range keys {
			field, present := fields[key]
			if !present || field.IsEmpty() {
				continue
			}
			for _, sibling := range declared[key] {
				if sib, ok := fields[sibling]; !ok || sib.IsEmpty() {
					*missing = append(*missing, sibling)
				}
			}
		}

		valid := len(*missing) == 0
		return verdict(valid, invert, func() jsf.ErrorReport {
			if invert {
				return jsf.NewReport("dependencies", declared, v.Interface(), "all dependent members unexpectedly present")
			}
			out := make([]string, len(*missing))
			copy(out, *missing)
			return jsf.NewReport("dependencies", declared, out,
				fmt.Sprintf("missing dependent members: %v", out))
		})
	})
}
