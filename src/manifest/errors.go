package manifest

import (
	"errors"
	"fmt"
)

var (
	ErrKeyNotInTable = errors.New("key does not belong to table")
	ErrValueKind     = errors.New("value has the wrong kind for key")
	ErrUnknownTable  = errors.New("unknown manifest table")
	ErrUnknownKey    = errors.New("unknown manifest key")
)

// ErrorKind classifies a ManifestError.
type ErrorKind int

const (
	// WriteFailed means the manifest could not be serialized or written to
	// its destination. The destination is left untouched.
	WriteFailed ErrorKind = iota + 1
)

func (k ErrorKind) String() string {
	switch k {
	case WriteFailed:
		return "write failed"
	default:
		return "unknown"
	}
}

// ManifestError reports a failure to produce a manifest file.
type ManifestError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }
