// Package compiler turns JSON Schema documents into checker trees. The
// compiler handles the structural walk and keyword dispatch; the leaf
// semantics live in the keyword and combinator packages.
package compiler

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
	"github.com/saif-khaled/angular2-json-schema-form/cache"
	"github.com/saif-khaled/angular2-json-schema-form/combinator"
	"github.com/saif-khaled/angular2-json-schema-form/keyword"
	"github.com/saif-khaled/angular2-json-schema-form/pkg/logger"
)

// Compiler builds checkers from schema documents. Compiled results are
// memoized by the schema's canonical JSON rendering, so repeated compiles of
// the same schema are cheap.
type Compiler struct {
	options jsf.Options
	cache   *cache.Cache[string, jsf.Checker]
	meta    *metaChecker
	metrics *jsf.Metrics
}

// SetMetrics attaches a metrics collector; compile cache hits and misses
// are recorded on it. Nil detaches.
func (c *Compiler) SetMetrics(m *jsf.Metrics) { c.metrics = m }

// New returns a Compiler configured by opts.
func New(opts ...jsf.Option) (*Compiler, error) {
	options := jsf.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	c := &Compiler{
		options: *options,
		cache:   cache.New[string, jsf.Checker](options.SchemaCacheSize),
	}
	keyword.SetPatternCacheCapacity(options.PatternCacheSize)
	if options.MetaSchemaCheck {
		meta, err := newMetaChecker()
		if err != nil {
			return nil, fmt.Errorf("meta-schema setup: %w", err)
		}
		c.meta = meta
	}
	return c, nil
}

// Compile builds a checker for schema. Malformed keyword arguments (bad
// regex patterns, unknown type names, non-finite multipleOf factors) surface
// here rather than at check time.
func (c *Compiler) Compile(schema map[string]any) (jsf.Checker, error) {
	key, err := cacheKey(schema)
	if err != nil {
		return nil, fmt.Errorf("schema not serializable: %w", err)
	}
	if cached, ok := c.cache.Get(key); ok {
		if c.metrics != nil {
			c.metrics.RecordCacheHit()
		}
		return cached, nil
	}
	if c.metrics != nil {
		c.metrics.RecordCacheMiss()
	}

	if c.meta != nil {
		if err := c.meta.check(schema); err != nil {
			return nil, fmt.Errorf("schema rejected by meta-schema: %w", err)
		}
	}

	checker, err := c.compile(schema)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, checker)
	return checker, nil
}

func cacheKey(schema map[string]any) (string, error) {
	// json.Marshal sorts map keys, so equal schemas share a key.
	raw, err := json.Marshal(schema)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (c *Compiler) compile(schema map[string]any) (jsf.Checker, error) {
	checkers := make([]jsf.Checker, 0, len(schema))

	// Walk keywords in sorted order so error reports from composite
	// failures are stable across runs.
	keys := make([]string, 0, len(schema))
	for k := range schema {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, kw := range keys {
		arg := schema[kw]
		checker, err := c.compileKeyword(schema, kw, arg)
		if err != nil {
			return nil, fmt.Errorf("keyword %q: %w", kw, err)
		}
		if checker != nil {
			checkers = append(checkers, c.instrument(kw, checker))
		}
	}

	switch len(checkers) {
	case 0:
		return keyword.NullChecker(), nil
	case 1:
		return checkers[0], nil
	default:
		return combinator.AllOf(checkers...), nil
	}
}

// instrument wraps checker with per-keyword timing. The metrics pointer is
// read at check time, so collectors attached after compilation still see
// cached checker trees.
func (c *Compiler) instrument(kw string, checker jsf.Checker) jsf.Checker {
	return jsf.CheckerFunc(func(ctrl jsf.Control, invert bool) jsf.ErrorReport {
		m := c.metrics
		if m == nil {
			return checker.Check(ctrl, invert)
		}
		start := time.Now()
		report := checker.Check(ctrl, invert)
		m.RecordKeyword(kw, time.Since(start), report != nil)
		return report
	})
}

func (c *Compiler) compileKeyword(schema map[string]any, kw string, arg any) (jsf.Checker, error) {
	switch kw {
	case "type":
		types, err := stringList(arg)
		if err != nil {
			return nil, err
		}
		return keyword.TypeChecker(types...)

	case "enum":
		list, ok := arg.([]any)
		if !ok {
			return nil, fmt.Errorf("want array, got %T", arg)
		}
		allowed := make([]jsf.Value, len(list))
		for i, item := range list {
			allowed[i] = jsf.FromAny(item)
		}
		return keyword.EnumChecker(allowed), nil

	case "const":
		return keyword.ConstChecker(jsf.FromAny(arg)), nil

	case "minLength":
		n, err := intArg(arg)
		if err != nil {
			return nil, err
		}
		return keyword.MinLengthChecker(n), nil

	case "maxLength":
		n, err := intArg(arg)
		if err != nil {
			return nil, err
		}
		return keyword.MaxLengthChecker(n), nil

	case "pattern":
		pattern, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("want string, got %T", arg)
		}
		return keyword.PatternChecker(pattern, c.options.WholeStringPattern)

	case "format":
		tag, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("want string, got %T", arg)
		}
		return keyword.FormatChecker(tag), nil

	case "minimum":
		min, err := numArg(arg)
		if err != nil {
			return nil, err
		}
		// Draft-4 spells exclusivity as a boolean sibling.
		exclusive, err := boolSibling(schema, "exclusiveMinimum")
		if err != nil {
			return nil, err
		}
		return keyword.MinimumChecker(min, exclusive), nil

	case "maximum":
		max, err := numArg(arg)
		if err != nil {
			return nil, err
		}
		exclusive, err := boolSibling(schema, "exclusiveMaximum")
		if err != nil {
			return nil, err
		}
		return keyword.MaximumChecker(max, exclusive), nil

	case "exclusiveMinimum":
		if _, ok := arg.(bool); ok {
			return nil, nil // handled under minimum
		}
		bound, err := numArg(arg)
		if err != nil {
			return nil, err
		}
		return keyword.ExclusiveMinimumChecker(bound), nil

	case "exclusiveMaximum":
		if _, ok := arg.(bool); ok {
			return nil, nil
		}
		bound, err := numArg(arg)
		if err != nil {
			return nil, err
		}
		return keyword.ExclusiveMaximumChecker(bound), nil

	case "multipleOf":
		factor, err := numArg(arg)
		if err != nil {
			return nil, err
		}
		return keyword.MultipleOfChecker(factor)

	case "minProperties":
		n, err := intArg(arg)
		if err != nil {
			return nil, err
		}
		return keyword.MinPropertiesChecker(n), nil

	case "maxProperties":
		n, err := intArg(arg)
		if err != nil {
			return nil, err
		}
		return keyword.MaxPropertiesChecker(n), nil

	case "dependencies":
		return c.compileDependencies(arg)

	case "required":
		switch v := arg.(type) {
		case bool:
			if v {
				return keyword.RequiredChecker(), nil
			}
			return nil, nil
		case []any:
			keys, err := stringList(v)
			if err != nil {
				return nil, err
			}
			return keyword.RequiredKeysChecker(keys), nil
		default:
			return nil, fmt.Errorf("want bool or array, got %T", arg)
		}

	case "minItems":
		n, err := intArg(arg)
		if err != nil {
			return nil, err
		}
		return keyword.MinItemsChecker(n), nil

	case "maxItems":
		n, err := intArg(arg)
		if err != nil {
			return nil, err
		}
		return keyword.MaxItemsChecker(n), nil

	case "uniqueItems":
		on, ok := arg.(bool)
		if !ok {
			return nil, fmt.Errorf("want bool, got %T", arg)
		}
		if !on {
			return nil, nil
		}
		return keyword.UniqueItemsChecker(), nil

	case "contains":
		logger.Warn("contains keyword is not enforced; schema accepted without it")
		return keyword.ContainsChecker(), nil

	case "allOf":
		branches, err := c.compileBranches(arg)
		if err != nil {
			return nil, err
		}
		return combinator.AllOf(branches...), nil

	case "anyOf":
		branches, err := c.compileBranches(arg)
		if err != nil {
			return nil, err
		}
		return combinator.AnyOf(branches...), nil

	case "oneOf":
		branches, err := c.compileBranches(arg)
		if err != nil {
			return nil, err
		}
		return combinator.OneOf(branches...), nil

	case "not":
		sub, ok := arg.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("want object, got %T", arg)
		}
		inner, err := c.compile(sub)
		if err != nil {
			return nil, err
		}
		return combinator.Not(inner), nil

	case "properties":
		return c.compileProperties(arg)

	case "items":
		return c.compileItems(arg)

	default:
		// Annotation keywords ($schema, title, description, default,
		// definitions, ...) and anything unrecognized carry no
		// constraint.
		return nil, nil
	}
}

func (c *Compiler) compileDependencies(arg any) (jsf.Checker, error) {
	raw, ok := arg.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("want object, got %T", arg)
	}
	deps := make(map[string][]string, len(raw))
	for name, spec := range raw {
		switch v := spec.(type) {
		case []any:
			keys, err := stringList(v)
			if err != nil {
				return nil, fmt.Errorf("dependency %q: %w", name, err)
			}
			deps[name] = keys
		case map[string]any:
			// Schema-form dependencies are accepted but not enforced.
			logger.Warn("schema-form dependency %q is not enforced", name)
		default:
			return nil, fmt.Errorf("dependency %q: want array or object, got %T", name, spec)
		}
	}
	if len(deps) == 0 {
		return nil, nil
	}
	return keyword.DependenciesChecker(deps), nil
}

func (c *Compiler) compileProperties(arg any) (jsf.Checker, error) {
	raw, ok := arg.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("want object, got %T", arg)
	}
	checkers := make(map[string]jsf.Checker, len(raw))
	for name, spec := range raw {
		sub, ok := spec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("property %q: want object, got %T", name, spec)
		}
		checker, err := c.compile(sub)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		checkers[name] = checker
	}

	names := make([]string, 0, len(checkers))
	for name := range checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	return jsf.CheckerFunc(func(ctrl jsf.Control, invert bool) jsf.ErrorReport {
		value := ctrl.Value()
		if value.Kind() != jsf.KindObject {
			if !invert {
				return nil
			}
			return jsf.NewReport("properties", nil, value.Interface(),
				"non-object unexpectedly valid under inverted properties")
		}

		var merged jsf.ErrorReport
		for _, name := range names {
			child := childControl(ctrl, value, name)
			if report := checkers[name].Check(child, false); report != nil {
				merged = merged.Merge(jsf.NewReport(
					"properties."+name, nil, child.Value().Interface(), report.String()))
			}
		}

		valid := merged == nil
		if valid != invert {
			return nil
		}
		if invert {
			return jsf.NewReport("properties", nil, value.Interface(),
				"at least one property must be invalid")
		}
		return merged
	}), nil
}

// childControl resolves a named member of ctrl. Host-provided group
// controls hand out their own children so reports land on live controls;
// plain value controls get a detached wrapper per field.
func childControl(ctrl jsf.Control, value jsf.Value, name string) jsf.Control {
	if group, ok := ctrl.(jsf.GroupControl); ok {
		if child := group.Child(name); child != nil {
			return child
		}
	}
	if child, present := value.Fields()[name]; present {
		return jsf.NewControl(child)
	}
	return jsf.NewControl(jsf.Absent())
}

func (c *Compiler) compileItems(arg any) (jsf.Checker, error) {
	sub, ok := arg.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("want object, got %T", arg)
	}
	item, err := c.compile(sub)
	if err != nil {
		return nil, err
	}

	return jsf.CheckerFunc(func(ctrl jsf.Control, invert bool) jsf.ErrorReport {
		value := ctrl.Value()
		if value.Kind() != jsf.KindArray {
			if !invert {
				return nil
			}
			return jsf.NewReport("items", nil, value.Interface(),
				"non-array unexpectedly valid under inverted items")
		}

		var merged jsf.ErrorReport
		for i, child := range itemControls(ctrl, value) {
			report := item.Check(child, false)
			if report != nil {
				merged = merged.Merge(jsf.NewReport(
					fmt.Sprintf("items[%d]", i), nil, child.Value().Interface(), report.String()))
			}
		}

		valid := merged == nil
		if valid != invert {
			return nil
		}
		if invert {
			return jsf.NewReport("items", nil, value.Interface(),
				"at least one item must be invalid")
		}
		return merged
	}), nil
}

func itemControls(ctrl jsf.Control, value jsf.Value) []jsf.Control {
	if array, ok := ctrl.(jsf.ArrayControl); ok {
		if items := array.Items(); items != nil {
			return items
		}
	}
	elems := value.Items()
	out := make([]jsf.Control, len(elems))
	for i, elem := range elems {
		out[i] = jsf.NewControl(elem)
	}
	return out
}

func (c *Compiler) compileBranches(arg any) ([]jsf.Checker, error) {
	list, ok := arg.([]any)
	if !ok {
		return nil, fmt.Errorf("want array, got %T", arg)
	}
	branches := make([]jsf.Checker, len(list))
	for i, item := range list {
		sub, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("branch %d: want object, got %T", i, item)
		}
		checker, err := c.compile(sub)
		if err != nil {
			return nil, fmt.Errorf("branch %d: %w", i, err)
		}
		branches[i] = checker
	}
	return branches, nil
}

func stringList(arg any) ([]string, error) {
	switch v := arg.(type) {
	case string:
		return []string{v}, nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: want string, got %T", i, item)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("want string or array of strings, got %T", arg)
	}
}

func numArg(arg any) (float64, error) {
	switch v := arg.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	default:
		return 0, fmt.Errorf("want number, got %T", arg)
	}
}

func intArg(arg any) (int, error) {
	n, err := numArg(arg)
	if err != nil {
		return 0, err
	}
	if n != float64(int(n)) {
		return 0, fmt.Errorf("want integer, got %v", n)
	}
	return int(n), nil
}

func boolSibling(schema map[string]any, key string) (bool, error) {
	raw, present := schema[key]
	if !present {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, nil // numeric form compiles on its own
	}
	return b, nil
}
