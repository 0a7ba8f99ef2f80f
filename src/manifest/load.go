package manifest

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a TOML manifest. Every table and key must be part of the
// schema; the result is in canonical order regardless of the input order.
func Parse(data []byte) (*Manifest, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	sections := make(map[Table]map[string]any, len(raw))
	for _, name := range sortedKeys(raw) {
		t, ok := ParseTable(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
		}
		fields, ok := raw[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q is %T, want a table", ErrUnknownTable, name, raw[name])
		}
		for _, kname := range sortedKeys(fields) {
			k, ok := ParseKey(kname)
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s", ErrUnknownKey, name, kname)
			}
			if owner, _ := k.Table(); owner != t {
				return nil, fmt.Errorf("%w: %s is not in [%s]", ErrKeyNotInTable, kname, name)
			}
		}
		sections[t] = fields
	}

	m := New()
	for _, t := range Tables() {
		fields, ok := sections[t]
		if !ok {
			continue
		}
		for _, k := range KeysOf(t) {
			rv, ok := fields[k.String()]
			if !ok {
				continue
			}
			v, err := valueFromRaw(rv)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", t, k, err)
			}
			if err := m.Set(t, k, v); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
