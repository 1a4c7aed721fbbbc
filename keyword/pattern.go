package keyword

import (
	"fmt"
	"regexp"
	"sync"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
	"github.com/saif-khaled/angular2-json-schema-form/cache"
)

const defaultPatternCacheSize = 256

// patternCache holds compiled patterns keyed by source plus anchoring mode.
// Checker trees are compiled once and reused, but schemas often repeat the
// same pattern across properties. The cache is shared by every engine in
// the process.
var (
	patternCache    = cache.New[string, *regexp.Regexp](defaultPatternCacheSize)
	patternCacheMu  sync.Mutex
	patternCacheCap = defaultPatternCacheSize
)

// SetPatternCacheCapacity grows the shared pattern cache. The engine
// applies its configured cache size here at construction; because the
// cache is process-wide, the largest capacity requested wins and requests
// to shrink are ignored.
func SetPatternCacheCapacity(capacity int) {
	patternCacheMu.Lock()
	defer patternCacheMu.Unlock()
	if capacity <= patternCacheCap {
		return
	}
	patternCacheCap = capacity
	patternCache.Resize(capacity)
}

// PatternChecker returns a checker matching string values against pattern.
// By default the pattern may match anywhere in the string, a deliberate
// deviation from the platform-default whole-string behavior; wholeString
// restores full anchoring. An invalid pattern is a construction-time error.
// Non-string values are valid.
func PatternChecker(pattern string, wholeString bool) (jsf.Checker, error) {
	source := pattern
	if wholeString {
		source = "^(?:" + pattern + ")$"
	}

	// Compile eagerly so misconfiguration fails at construction, then keep
	// the result cached for identical patterns elsewhere in the schema.
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	cached := patternCache.GetOrSet(source, func() *regexp.Regexp { return re })

	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		if report, empty := emptyVerdict(v, invert, "pattern"); empty {
			return report
		}
		if v.Kind() != jsf.KindString {
			return verdict(true, invert, func() jsf.ErrorReport {
				return jsf.NewReport("pattern", pattern, v.Interface(), "non-string value unexpectedly valid under inverted pattern")
			})
		}

		return verdict(cached.MatchString(v.Str()), invert, func() jsf.ErrorReport {
			if invert {
				return jsf.NewReport("pattern", pattern, v.Str(),
					fmt.Sprintf("string must not match pattern %q", pattern))
			}
			return jsf.NewReport("pattern", pattern, v.Str(),
				fmt.Sprintf("string does not match pattern %q", pattern))
		})
	}), nil
}

// MustPattern is PatternChecker for statically known patterns; it panics on
// a bad pattern.
func MustPattern(pattern string, wholeString bool) jsf.Checker {
	c, err := PatternChecker(pattern, wholeString)
	if err != nil {
		panic(err)
	}
	return c
}
