package manifest

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Manifest is an ordered nimbus.toml document. Tables and keys serialize in
// the order they were first set.
type Manifest struct {
	tables []section
}

type section struct {
	table  Table
	fields []field
}

type field struct {
	key   Key
	value Value
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{}
}

// Default builds the manifest written by init: every schema key with its
// default value, and project.name set to projectName. No name inference
// happens here; an empty projectName is written as-is.
func Default(projectName string) *Manifest {
	m := New()
	for _, e := range keys {
		v := e.def.clone()
		if e.key == Name {
			v = String(projectName)
		}
		// Schema entries are valid by construction.
		_ = m.Set(e.table, e.key, v)
	}
	return m
}

// Set stores v under t.k. The key must belong to t and v must have the
// same kind (scalar or list) as the key's default.
func (m *Manifest) Set(t Table, k Key, v Value) error {
	if !knownTable(t) {
		return fmt.Errorf("%w: %d", ErrUnknownTable, int(t))
	}
	e, ok := lookupKey(k)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownKey, int(k))
	}
	if e.table != t {
		return fmt.Errorf("%w: %s is not in [%s]", ErrKeyNotInTable, k, t)
	}
	if e.def.IsList() != v.IsList() {
		return fmt.Errorf("%w: %s.%s", ErrValueKind, t, k)
	}

	s := m.section(t)
	for i := range s.fields {
		if s.fields[i].key == k {
			s.fields[i].value = v.clone()
			return nil
		}
	}
	s.fields = append(s.fields, field{key: k, value: v.clone()})
	return nil
}

// Get returns the value stored under t.k.
func (m *Manifest) Get(t Table, k Key) (Value, bool) {
	for _, s := range m.tables {
		if s.table != t {
			continue
		}
		for _, f := range s.fields {
			if f.key == k {
				return f.value.clone(), true
			}
		}
	}
	return Value{}, false
}

// Tables returns the tables present in m, in order.
func (m *Manifest) Tables() []Table {
	out := make([]Table, 0, len(m.tables))
	for _, s := range m.tables {
		out = append(out, s.table)
	}
	return out
}

// Keys returns the keys set in t, in order.
func (m *Manifest) Keys(t Table) []Key {
	for _, s := range m.tables {
		if s.table == t {
			out := make([]Key, 0, len(s.fields))
			for _, f := range s.fields {
				out = append(out, f.key)
			}
			return out
		}
	}
	return nil
}

// ProjectName is a shortcut for project.name.
func (m *Manifest) ProjectName() string {
	v, _ := m.Get(Project, Name)
	return v.Text()
}

// MarshalTOML encodes m as TOML, one [table] section per table with keys in
// insertion order.
func (m *Manifest) MarshalTOML() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	for i, s := range m.tables {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "[%s]\n", s.table)
		for _, f := range s.fields {
			// A single-entry map keeps the encoder from reordering keys.
			if err := enc.Encode(map[string]any{f.key.String(): f.value.raw()}); err != nil {
				return nil, fmt.Errorf("encoding %s.%s: %w", s.table, f.key, err)
			}
		}
	}
	return buf.Bytes(), nil
}

func (m *Manifest) section(t Table) *section {
	for i := range m.tables {
		if m.tables[i].table == t {
			return &m.tables[i]
		}
	}
	m.tables = append(m.tables, section{table: t})
	return &m.tables[len(m.tables)-1]
}
