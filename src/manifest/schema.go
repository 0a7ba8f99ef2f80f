package manifest

// Table identifies a top-level section of nimbus.toml.
type Table int

const (
	Project Table = iota
	Build
)

// Key identifies a field inside a table. Each key belongs to exactly one
// table; see Key.Table.
type Key int

const (
	Name Key = iota
	Version
	Authors
	Compiler
	Standard
	BuildType
)

// ConfigFile is the manifest file name at the project root.
const ConfigFile = "nimbus.toml"

// Defaults written into a freshly generated manifest.
const (
	DefaultVersion   = "0.1.0"
	DefaultAuthor    = "Your Name <you@example.com>"
	DefaultCompiler  = "clang++"
	DefaultStandard  = "c++20"
	DefaultBuildType = "Debug"
)

type tableEntry struct {
	table Table
	name  string
}

type keyEntry struct {
	table Table
	key   Key
	name  string
	def   Value
}

// tables and keys are the single source of truth for names, ordering,
// key ownership and default values. Everything else in this file is
// derived from them.
var tables = []tableEntry{
	{Project, "project"},
	{Build, "build"},
}

var keys = []keyEntry{
	{Project, Name, "name", String("")},
	{Project, Version, "version", String(DefaultVersion)},
	{Project, Authors, "authors", List(DefaultAuthor)},
	{Build, Compiler, "compiler", String(DefaultCompiler)},
	{Build, Standard, "standard", String(DefaultStandard)},
	{Build, BuildType, "build_type", String(DefaultBuildType)},
}

// Tables returns every table in serialization order.
func Tables() []Table {
	out := make([]Table, 0, len(tables))
	for _, e := range tables {
		out = append(out, e.table)
	}
	return out
}

// Keys returns every key in serialization order.
func Keys() []Key {
	out := make([]Key, 0, len(keys))
	for _, e := range keys {
		out = append(out, e.key)
	}
	return out
}

// KeysOf returns the keys owned by t in serialization order.
func KeysOf(t Table) []Key {
	var out []Key
	for _, e := range keys {
		if e.table == t {
			out = append(out, e.key)
		}
	}
	return out
}

func (t Table) String() string {
	for _, e := range tables {
		if e.table == t {
			return e.name
		}
	}
	return ""
}

func (k Key) String() string {
	if e, ok := lookupKey(k); ok {
		return e.name
	}
	return ""
}

// Table returns the table that owns k.
func (k Key) Table() (Table, bool) {
	e, ok := lookupKey(k)
	return e.table, ok
}

// Default returns the value a generated manifest holds for k. The default
// for Name is empty; callers substitute the project name.
func (k Key) Default() Value {
	e, _ := lookupKey(k)
	return e.def.clone()
}

// ParseTable maps a canonical table name back to its Table.
func ParseTable(name string) (Table, bool) {
	for _, e := range tables {
		if e.name == name {
			return e.table, true
		}
	}
	return 0, false
}

// ParseKey maps a canonical key name back to its Key.
func ParseKey(name string) (Key, bool) {
	for _, e := range keys {
		if e.name == name {
			return e.key, true
		}
	}
	return 0, false
}

func lookupKey(k Key) (keyEntry, bool) {
	for _, e := range keys {
		if e.key == k {
			return e, true
		}
	}
	return keyEntry{}, false
}

func knownTable(t Table) bool {
	for _, e := range tables {
		if e.table == t {
			return true
		}
	}
	return false
}
