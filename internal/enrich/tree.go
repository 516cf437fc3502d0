// Package enrich holds the per-facility enrichment bundle fetched by the
// external collaborators, keyed by source type, plus the safe nested
// lookup used by every calculator.
package enrich

import "strconv"

// Tree is an arbitrary nested attribute tree from one enrichment source.
// Any key may be absent; lookups return an explicit ok flag instead of
// panicking or inventing zero values.
type Tree map[string]any

// Get walks the path through nested maps. The second return is false
// when any step is missing or not a map.
func (t Tree) Get(path ...string) (any, bool) {
	var cur any = map[string]any(t)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// String returns the string at path.
func (t Tree) String(path ...string) (string, bool) {
	v, ok := t.Get(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Float returns the number at path. JSON decodes all numbers as float64;
// YAML may produce ints, and string-typed numbers from scraped sources
// are parsed leniently.
func (t Tree) Float(path ...string) (float64, bool) {
	v, ok := t.Get(path...)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int returns the integer at path, truncating floats.
func (t Tree) Int(path ...string) (int, bool) {
	f, ok := t.Float(path...)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Bool returns the boolean at path. Absence is "unknown", never false.
func (t Tree) Bool(path ...string) (bool, bool) {
	v, ok := t.Get(path...)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Strings returns the list of strings at path. Non-string elements are
// skipped.
func (t Tree) Strings(path ...string) ([]string, bool) {
	v, ok := t.Get(path...)
	if !ok {
		return nil, false
	}
	raw, ok := v.([]any)
	if !ok {
		// yaml.v3 and typed fixtures may already hold []string.
		if ss, ok := v.([]string); ok {
			return ss, true
		}
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}
