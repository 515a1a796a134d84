package tokens

import (
	"reflect"
	"strings"

	"github.com/samber/lo"
)

// ValueAt walks ctx one dotted segment at a time and returns the value found,
// or nil as soon as a segment is absent or the current node is not a map.
// It accepts any map keyed by strings (named map types included) and never
// panics, whatever the shape of ctx.
func ValueAt(ctx any, path string) any {
	if ctx == nil || path == "" {
		return nil
	}
	current := ctx
	for seg := range strings.SplitSeq(path, ".") {
		next, ok := child(current, seg)
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// child returns node[key] for map nodes.
func child(node any, key string) (any, bool) {
	switch m := node.(type) {
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case map[string]string:
		v, ok := m[key]
		return v, ok
	case nil:
		return nil, false
	}

	v := reflect.ValueOf(node)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Map || v.IsNil() {
		return nil, false
	}

	keyType := v.Type().Key()
	var k reflect.Value
	switch keyType.Kind() {
	case reflect.String:
		k = reflect.ValueOf(key).Convert(keyType)
	case reflect.Interface:
		k = reflect.ValueOf(key)
		if !k.Type().Implements(keyType) {
			return nil, false
		}
	default:
		return nil, false
	}

	e := v.MapIndex(k)
	if !e.IsValid() {
		return nil, false
	}
	return e.Interface(), true
}

// HasValue reports whether v counts as filled in: nil, nil pointers,
// whitespace-only strings and empty slices do not; zero and false do.
func HasValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(x) != ""
	case []any:
		return len(x) > 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return HasValue(rv.Elem().Interface())
	case reflect.String:
		return strings.TrimSpace(rv.String()) != ""
	case reflect.Slice, reflect.Array:
		return rv.Len() > 0
	default:
		return true
	}
}

// HasValueAt is HasValue(ValueAt(ctx, path)).
func HasValueAt(ctx any, path string) bool {
	return HasValue(ValueAt(ctx, path))
}

// MissingRequired returns the paths in input order that have no value in ctx.
func MissingRequired(paths []string, ctx any) []string {
	return lo.Filter(paths, func(p string, _ int) bool {
		return !HasValueAt(ctx, p)
	})
}
