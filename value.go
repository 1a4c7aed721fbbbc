package jsonschemaform

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind identifies the variant held by a Value.
type Kind int

// Value kinds. KindAbsent means "no value at all" (an unset control), which
// is distinct from an explicit JSON null.
const (
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON Schema name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a closed tagged union over the JSON value space. Checkers switch
// exhaustively on Kind instead of reflecting over interface{} values.
// The zero Value is Absent.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	arr  []Value
	obj  map[string]Value
}

// Absent returns the no-value variant.
func Absent() Value { return Value{} }

// Null returns the JSON null variant.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64. JSON has a single number type; integers are
// numbers without a fractional component.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps an ordered sequence.
func Array(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// Object wraps a keyed mapping.
func Object(fields map[string]Value) Value { return Value{kind: KindObject, obj: fields} }

// FromAny converts a JSON-decoded Go value (the output of json.Unmarshal or
// a YAML decoder) into a Value. Unrecognized Go types become Absent.
func FromAny(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null()
	case Value:
		return val
	case bool:
		return Bool(val)
	case float64:
		return Number(val)
	case float32:
		return Number(float64(val))
	case int:
		return Number(float64(val))
	case int64:
		return Number(float64(val))
	case uint64:
		return Number(float64(val))
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return String(val.String())
		}
		return Number(f)
	case string:
		return String(val)
	case []any:
		items := make([]Value, len(val))
		for i, item := range val {
			items[i] = FromAny(item)
		}
		return Array(items...)
	case map[string]any:
		fields := make(map[string]Value, len(val))
		for k, item := range val {
			fields[k] = FromAny(item)
		}
		return Object(fields)
	default:
		return Absent()
	}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether the value counts as "absent data" for validation:
// absent, null, or the empty string. Keywords other than required treat
// empty values as valid.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindAbsent, KindNull:
		return true
	case KindString:
		return v.str == ""
	default:
		return false
	}
}

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string { return v.str }

// Num returns the numeric payload. Valid only for KindNumber.
func (v Value) Num() float64 { return v.num }

// Boolean returns the boolean payload. Valid only for KindBool.
func (v Value) Boolean() bool { return v.b }

// Items returns the elements of an array value. Valid only for KindArray.
func (v Value) Items() []Value { return v.arr }

// Fields returns the members of an object value. Valid only for KindObject.
func (v Value) Fields() map[string]Value { return v.obj }

// IsInteger reports whether the value is a number with no fractional
// component. NaN and infinities are not integers.
func (v Value) IsInteger() bool {
	if v.kind != KindNumber {
		return false
	}
	if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		return false
	}
	return v.num == math.Trunc(v.num)
}

// Interface converts the Value back into the plain Go shape that
// json.Marshal understands. Absent converts to nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindAbsent, KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		items := make([]any, len(v.arr))
		for i, item := range v.arr {
			items[i] = item.Interface()
		}
		return items
	case KindObject:
		fields := make(map[string]any, len(v.obj))
		for k, item := range v.obj {
			fields[k] = item.Interface()
		}
		return fields
	default:
		return nil
	}
}

// Equal performs deep equality. Absent equals only Absent; there is no
// cross-kind coercion here (enum/const coercion lives in the keyword
// package).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindAbsent, KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num == other.num
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, item := range v.obj {
			otherItem, ok := other.obj[k]
			if !ok || !item.Equal(otherItem) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the value for diagnostics. Long payloads are truncated.
func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "<absent>"
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return strconv.Quote(truncate(v.str, 50))
	case KindArray:
		parts := make([]string, 0, len(v.arr))
		for _, item := range v.arr {
			parts = append(parts, item.String())
		}
		return "[" + strings.Join(parts, ",") + "]"
	case KindObject:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%q:%s", k, v.obj[k].String()))
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return "<unknown>"
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Back the cut up to a rune boundary so the result stays valid UTF-8.
	cut := max - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
