package build

import (
	"errors"
	"fmt"
)

// ErrUnimplemented is returned by engines that are registered but cannot
// build yet.
var ErrUnimplemented = errors.New("build is not implemented")

// Request carries what an engine needs to build a project.
type Request struct {
	// Dir is the project root. Empty means the working directory.
	Dir string
}

// Engine compiles a project. A real pipeline plugs in here without changing
// how the build command invokes it.
type Engine interface {
	Build(req Request) error
}

// Noop is the default engine. It succeeds without touching anything.
type Noop struct{}

func (Noop) Build(Request) error { return nil }

// ErrorKind classifies a BuildError.
type ErrorKind int

const (
	Unimplemented ErrorKind = iota + 1
	Failed
)

func (k ErrorKind) String() string {
	switch k {
	case Unimplemented:
		return "unimplemented"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// BuildError wraps a failure reported by an engine.
type BuildError struct {
	Kind ErrorKind
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build %s: %v", e.Kind, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Run invokes engine, defaulting to Noop when engine is nil.
func Run(engine Engine, req Request) error {
	if engine == nil {
		engine = Noop{}
	}
	err := engine.Build(req)
	if err == nil {
		return nil
	}
	var berr *BuildError
	if errors.As(err, &berr) {
		return err
	}
	kind := Failed
	if errors.Is(err, ErrUnimplemented) {
		kind = Unimplemented
	}
	return &BuildError{Kind: kind, Err: err}
}
