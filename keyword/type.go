package keyword

import (
	"fmt"
	"strings"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
)

// typeNames is the closed set of JSON Schema type names.
var typeNames = map[string]bool{
	"string":  true,
	"number":  true,
	"integer": true,
	"boolean": true,
	"null":    true,
	"array":   true,
	"object":  true,
}

// TypeChecker returns a checker that passes when the value's type matches
// any of the given JSON Schema type names. A number satisfies "integer"
// only when it has no fractional component. An unknown type name is a
// construction-time error.
func TypeChecker(types ...string) (jsf.Checker, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("type: at least one type name required")
	}
	allowed := make([]string, len(types))
	for i, name := range types {
		if !typeNames[name] {
			return nil, fmt.Errorf("type: unknown type name %q", name)
		}
		allowed[i] = name
	}

	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		if report, empty := emptyVerdict(v, invert, "type"); empty {
			return report
		}

		valid := false
		for _, name := range allowed {
			if isOfType(v, name) {
				valid = true
				break
			}
		}

		return verdict(valid, invert, func() jsf.ErrorReport {
			required := any(allowed[0])
			if len(allowed) > 1 {
				required = allowed
			}
			if invert {
				return jsf.NewReport("type", required, v.Interface(),
					fmt.Sprintf("value must not be of type %s", strings.Join(allowed, "|")))
			}
			return jsf.NewReport("type", required, v.Interface(),
				fmt.Sprintf("value of type %s, expected %s", v.Kind(), strings.Join(allowed, "|")))
		})
	}), nil
}

// MustType is TypeChecker for statically known type names; it panics on an
// unknown name.
func MustType(types ...string) jsf.Checker {
	c, err := TypeChecker(types...)
	if err != nil {
		panic(err)
	}
	return c
}

// isOfType reports whether the value matches one JSON Schema type name.
func isOfType(v jsf.Value, name string) bool {
	switch name {
	case "string":
		return v.Kind() == jsf.KindString
	case "number":
		return v.Kind() == jsf.KindNumber
	case "integer":
		return v.IsInteger()
	case "boolean":
		return v.Kind() == jsf.KindBool
	case "null":
		return v.Kind() == jsf.KindNull
	case "array":
		return v.Kind() == jsf.KindArray
	case "object":
		return v.Kind() == jsf.KindObject
	default:
		return false
	}
}
