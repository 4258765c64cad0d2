package semver

import (
	"strings"

	"github.com/tuckertucker/tkr-pkgcore/pkg/lru"
)

const defaultCacheSize = 1000

// Engine memoizes Parse, ParseRange, and Satisfies behind three independent
// LRU caches, keyed so that strict and loose parses (and the
// IncludePrerelease variants of satisfaction checks) never collide. A zero
// Engine is not usable; construct one with NewEngine.
type Engine struct {
	versions  *lru.Cache[string, Version]
	ranges    *lru.Cache[string, Range]
	satisfies *lru.Cache[string, bool]
}

// NewEngine creates an Engine whose three caches are each bounded to size
// entries.
func NewEngine(size int) *Engine {
	return &Engine{
		versions:  lru.New[string, Version](size),
		ranges:    lru.New[string, Range](size),
		satisfies: lru.New[string, bool](size),
	}
}

// Default is the package-level Engine used by the CachedParse,
// CachedParseRange, and CachedSatisfies helpers.
var Default = NewEngine(defaultCacheSize)

func versionKey(input string, opts Options) string {
	if opts.Loose {
		return "loose:" + input
	}
	return input
}

func rangeKey(input string, opts Options) string {
	key := input
	if opts.Loose {
		key = "loose:" + key
	}
	if opts.IncludePrerelease {
		key = "pre:" + key
	}
	return key
}

func satisfiesKey(v Version, input string, opts Options) string {
	var b strings.Builder
	if opts.Loose {
		b.WriteString("loose:")
	}
	if opts.IncludePrerelease {
		b.WriteString("pre:")
	}
	b.WriteString(v.String())
	b.WriteByte('@')
	b.WriteString(input)
	return b.String()
}

// Parse is Parse memoized on this Engine.
func (e *Engine) Parse(input string, opts Options) (Version, bool) {
	key := versionKey(input, opts)
	if v, ok := e.versions.Get(key); ok {
		return v, true
	}
	v, ok := Parse(input, opts)
	if ok {
		e.versions.Set(key, v)
	}
	return v, ok
}

// ParseRange is ParseRange memoized on this Engine.
func (e *Engine) ParseRange(input string, opts Options) (Range, bool) {
	key := rangeKey(input, opts)
	if r, ok := e.ranges.Get(key); ok {
		return r, true
	}
	r, ok := ParseRange(input, opts)
	if ok {
		e.ranges.Set(key, r)
	}
	return r, ok
}

// Satisfies checks whether version satisfies rangeInput, memoizing both the
// underlying range parse and the satisfaction result keyed on
// "«version»@«range»".
func (e *Engine) Satisfies(version string, rangeInput string, opts Options) (bool, error) {
	v, err := New(version, opts)
	if err != nil {
		return false, err
	}

	sKey := satisfiesKey(v, rangeInput, opts)
	if ok, hit := e.satisfies.Get(sKey); hit {
		return ok, nil
	}

	r, ok := e.ParseRange(rangeInput, opts)
	if !ok {
		return false, &ParseError{Input: rangeInput}
	}

	result := Satisfies(v, r, opts)
	e.satisfies.Set(sKey, result)
	return result, nil
}

// Stats returns hit/miss/eviction snapshots for the version, range, and
// satisfaction caches, in that order.
func (e *Engine) Stats() (versions, ranges, satisfiesStats lru.Stats) {
	return e.versions.Stats(), e.ranges.Stats(), e.satisfies.Stats()
}

// CachedParse, CachedParseRange, and CachedSatisfies delegate to Default, the
// package-level Engine, for callers that don't need isolated cache instances.
func CachedParse(input string, opts Options) (Version, bool) {
	return Default.Parse(input, opts)
}

func CachedParseRange(input string, opts Options) (Range, bool) {
	return Default.ParseRange(input, opts)
}

func CachedSatisfies(version, rangeInput string, opts Options) (bool, error) {
	return Default.Satisfies(version, rangeInput, opts)
}
