package questionnaire

import (
	"reflect"
	"sort"
	"strings"
)

// FormValues maps a link id to a scalar answer, a []any of answers or a
// nested FormValues for groups.
type FormValues map[string]any

// Form is the mutable value holder fields are bound to. Paths are dot-joined
// link id chains, e.g. "personal.birthDate".
type Form struct {
	values FormValues
}

func NewForm(values FormValues) *Form {
	if values == nil {
		values = FormValues{}
	}
	return &Form{values: values}
}

func (f *Form) Values() FormValues {
	return f.values
}

func (f *Form) Value(path string) any {
	var current any = f.values
	for _, key := range splitPath(path) {
		m, ok := asMap(current)
		if !ok {
			return nil
		}
		current = m[key]
	}
	return current
}

// SetValue stores value at path, creating intermediate groups when missing.
func (f *Form) SetValue(path string, value any) {
	keys := splitPath(path)
	if len(keys) == 0 {
		return
	}

	current := map[string]any(f.values)
	for _, key := range keys[:len(keys)-1] {
		next, ok := asMap(current[key])
		if !ok {
			next = FormValues{}
			current[key] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

func JoinPath(parent, linkID string) string {
	if parent == "" {
		return linkID
	}
	return parent + "." + linkID
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// asMap accepts both FormValues and plain decoded JSON objects.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case FormValues:
		return m, m != nil
	case map[string]any:
		return m, m != nil
	}
	return nil, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// FindNestedValue looks key up in values, descending depth-first into nested
// groups when it is not found at the current level. Keys are visited in
// sorted order.
func FindNestedValue(values map[string]any, key string) (any, bool) {
	if value, ok := values[key]; ok {
		return value, true
	}

	for _, k := range sortedKeys(values) {
		nested, ok := asMap(values[k])
		if !ok {
			continue
		}
		if value, found := FindNestedValue(nested, key); found {
			return value, true
		}
	}
	return nil, false
}

// IsFalsy reports whether v counts as "no answer".
func IsFalsy(v any) bool {
	if v == nil {
		return true
	}

	switch value := v.(type) {
	case string:
		return value == ""
	case bool:
		return !value
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || f != f
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
