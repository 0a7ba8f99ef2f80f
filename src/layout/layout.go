package layout

import "path/filepath"

// Directory is a role in the canonical project layout.
type Directory int

const (
	Current Directory = iota
	Include
	Src
	Build
)

// segments is indexed by Directory.
var segments = [...]string{
	Current: ".",
	Include: "include",
	Src:     "src",
	Build:   "build",
}

// Directories returns every layout role in declared order.
func Directories() []Directory {
	return []Directory{Current, Include, Src, Build}
}

// Scaffold returns the directories init creates under a project root.
// Build is part of the layout but is left for the build engine to create.
func Scaffold() []Directory {
	return []Directory{Include, Src}
}

// Segment returns the canonical relative path segment for d.
func (d Directory) Segment() string {
	if d < 0 || int(d) >= len(segments) {
		return ""
	}
	return segments[d]
}

func (d Directory) String() string { return d.Segment() }

// Path joins root and the segment for d.
func (d Directory) Path(root string) string {
	return filepath.Join(root, d.Segment())
}
