package keyword

import (
	"fmt"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
	"github.com/saif-khaled/angular2-json-schema-form/pool"
)

// RequiredChecker returns a checker that fails when the control's value is
// absent, null, or the empty string. This is the one keyword that targets
// absence itself.
func RequiredChecker() jsf.Checker {
	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		return verdict(!v.IsEmpty(), invert, func() jsf.ErrorReport {
			if invert {
				return jsf.NewReport("required", false, v.Interface(), "value must be blank")
			}
			return jsf.NewReport("required", true, v.Interface(), "value is required")
		})
	})
}

// CheckRequired runs the required check directly against a control,
// returning nil when a non-empty value is present.
func CheckRequired(c jsf.Control) jsf.ErrorReport {
	return RequiredChecker().Check(c, false)
}

// RequiredKeysChecker returns a checker over object-shaped values that
// fails unless every named member is present and non-empty. This is the
// JSON Schema array form of required; non-object values are valid.
func RequiredKeysChecker(keys []string) jsf.Checker {
	required := make([]string, len(keys))
	copy(required, keys)

	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		if report, empty := emptyVerdict(v, invert, "required"); empty {
			return report
		}
		if v.Kind() != jsf.KindObject {
			return verdict(true, invert, func() jsf.ErrorReport {
				return jsf.NewReport("required", required, v.Interface(), "non-object value unexpectedly valid under inverted required")
			})
		}

		fields := v.Fields()
		missing := pool.AcquireStringSlice()
		defer pool.ReleaseStringSlice(missing)
		for _, key := range required {
			if field, ok := fields[key]; !ok || field.IsEmpty() {
				*missing = append(*missing, key)
			}
		}

		valid := len(*missing) == 0
		return verdict(valid, invert, func() jsf.ErrorReport {
			if invert {
				return jsf.NewReport("required", required, v.Interface(), "all required members unexpectedly present")
			}
			out := make([]string, len(*missing))
			copy(out, *missing)
			return jsf.NewReport("required", required, out,
				fmt.Sprintf("missing required members: %v", out))
		})
	})
}

// Required is the legacy dual-mode entry point kept for drop-in
// compatibility with conventional forms-validators APIs. Its behavior
// depends on the argument:
//
//	Required()            -> jsf.Checker (same as RequiredChecker)
//	Required(true)        -> jsf.Checker (same as RequiredChecker)
//	Required(false)       -> jsf.Checker that accepts everything
//	Required(control)     -> jsf.ErrorReport, executed immediately
//
// New code should call RequiredChecker or CheckRequired directly; this shim
// only dispatches to them.
func Required(arg ...any) any {
	if len(arg) == 0 {
		return RequiredChecker()
	}
	switch a := arg[0].(type) {
	case nil:
		return RequiredChecker()
	case bool:
		if !a {
			return NullChecker()
		}
		return RequiredChecker()
	case jsf.Control:
		return CheckRequired(a)
	default:
		return RequiredChecker()
	}
}
