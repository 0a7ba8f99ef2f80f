package manifest

import "fmt"

// Value is a manifest value: either a single string or an ordered list of
// strings.
type Value struct {
	text   string
	items  []string
	isList bool
}

// String returns a scalar string value.
func String(s string) Value {
	return Value{text: s}
}

// List returns a list value holding items in order.
func List(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{items: cp, isList: true}
}

// IsList reports whether v holds a list.
func (v Value) IsList() bool { return v.isList }

// Text returns the scalar string. It is empty for list values.
func (v Value) Text() string { return v.text }

// Items returns a copy of the list items. It is nil for scalar values.
func (v Value) Items() []string {
	if !v.isList {
		return nil
	}
	cp := make([]string, len(v.items))
	copy(cp, v.items)
	return cp
}

func (v Value) clone() Value {
	if v.isList {
		return List(v.items...)
	}
	return v
}

// raw returns the plain Go value handed to the TOML encoder.
func (v Value) raw() any {
	if v.isList {
		return v.Items()
	}
	return v.text
}

// valueFromRaw converts a decoded TOML value into a Value. Only strings and
// arrays of strings are accepted.
func valueFromRaw(raw any) (Value, error) {
	switch x := raw.(type) {
	case string:
		return String(x), nil
	case []any:
		items := make([]string, 0, len(x))
		for i, it := range x {
			s, ok := it.(string)
			if !ok {
				return Value{}, fmt.Errorf("%w: element %d is %T, want string", ErrValueKind, i, it)
			}
			items = append(items, s)
		}
		return List(items...), nil
	default:
		return Value{}, fmt.Errorf("%w: got %T, want string or array of strings", ErrValueKind, raw)
	}
}
