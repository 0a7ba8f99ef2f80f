package project

import (
	"errors"
	"fmt"
)

// ErrInvalidName is returned for project names that are not a single path
// element.
var ErrInvalidName = errors.New("project name must be a single directory name")

// ErrorKind classifies an InitError.
type ErrorKind int

const (
	DirectoryCreateFailed ErrorKind = iota + 1
	ManifestFailed
)

func (k ErrorKind) String() string {
	switch k {
	case DirectoryCreateFailed:
		return "create directory"
	case ManifestFailed:
		return "write manifest"
	default:
		return "unknown"
	}
}

// InitError reports which step of init failed and on which path.
// For ManifestFailed, Err is a *manifest.ManifestError.
type InitError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init: %s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }
