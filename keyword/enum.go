package keyword

import (
	"fmt"
	"strconv"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
)

// EnumChecker returns a checker that passes when the value matches any
// entry in the allowed set under the coercion table (see looselyEqual).
func EnumChecker(allowed []jsf.Value) jsf.Checker {
	set := make([]jsf.Value, len(allowed))
	copy(set, allowed)

	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		if report, empty := emptyVerdict(v, invert, "enum"); empty {
			return report
		}

		valid := false
		for _, entry := range set {
			if looselyEqual(v, entry) {
				valid = true
				break
			}
		}

		return verdict(valid, invert, func() jsf.ErrorReport {
			required := make([]any, len(set))
			for i, entry := range set {
				required[i] = entry.Interface()
			}
			if invert {
				return jsf.NewReport("enum", required, v.Interface(), "value must not be one of the allowed set")
			}
			return jsf.NewReport("enum", required, v.Interface(),
				fmt.Sprintf("value %s is not one of the allowed set", v))
		})
	})
}

// ConstChecker returns a checker requiring the value to match a single
// constant under the same coercion rule as enum.
func ConstChecker(want jsf.Value) jsf.Checker {
	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		if report, empty := emptyVerdict(v, invert, "const"); empty {
			return report
		}

		return verdict(looselyEqual(v, want), invert, func() jsf.ErrorReport {
			if invert {
				return jsf.NewReport("const", want.Interface(), v.Interface(),
					fmt.Sprintf("value must not equal %s", want))
			}
			return jsf.NewReport("const", want.Interface(), v.Interface(),
				fmt.Sprintf("value %s does not equal %s", v, want))
		})
	})
}

// looselyEqual implements the enum/const matching table. Same-kind values
// compare with deep equality; across kinds the only coercions are through
// string rendering of primitives:
//
//	string  ~ number : the string parses as exactly that number
//	string  ~ boolean: the string is "true" or "false" accordingly
//	string  ~ null   : the string is "null"
//
// Numbers never coerce to booleans or null, and arrays/objects only match
// their own kind. The table is deliberately explicit instead of relying on
// any ambient language coercion.
func looselyEqual(a, b jsf.Value) bool {
	if a.Kind() == b.Kind() {
		return a.Equal(b)
	}
	// Normalize so the string side is first.
	if b.Kind() == jsf.KindString {
		a, b = b, a
	}
	if a.Kind() != jsf.KindString {
		return false
	}

	s := a.Str()
	switch b.Kind() {
	case jsf.KindNumber:
		f, err := strconv.ParseFloat(s, 64)
		return err == nil && f == b.Num()
	case jsf.KindBool:
		return (s == "true" && b.Boolean()) || (s == "false" && !b.Boolean())
	case jsf.KindNull:
		return s == "null"
	default:
		return false
	}
}
