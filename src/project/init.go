package project

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"nimbus/src/layout"
	"nimbus/src/logging"
	"nimbus/src/manifest"
)

// Initializer creates the project scaffold: the project root, the layout
// directories and nimbus.toml.
type Initializer struct {
	// Dir is the working directory init runs in. Empty means os.Getwd.
	Dir    string
	Logger *slog.Logger
}

// Plan describes what Apply will do. It is computed without touching the
// filesystem apart from checking for an existing manifest.
type Plan struct {
	ProjectName string   `json:"project_name" yaml:"project_name"`
	Root        string   `json:"root" yaml:"root"`
	Directories []string `json:"directories" yaml:"directories"`
	Manifest    string   `json:"manifest" yaml:"manifest"`

	// ManifestExists is set when a regular file is already at Manifest.
	ManifestExists bool `json:"manifest_exists" yaml:"manifest_exists"`
	// KeepManifest makes Apply leave an existing manifest alone.
	KeepManifest bool `json:"keep_manifest" yaml:"keep_manifest"`
}

// Result is what Apply did.
type Result struct {
	ProjectName     string   `json:"project_name" yaml:"project_name"`
	Root            string   `json:"root" yaml:"root"`
	Manifest        string   `json:"manifest" yaml:"manifest"`
	ManifestWritten bool     `json:"manifest_written" yaml:"manifest_written"`
	Created         []string `json:"created" yaml:"created"`
	Existing        []string `json:"existing" yaml:"existing"`
}

// Initialize plans and applies init for projectName. A non-empty name
// creates a new root directory under Dir; an empty name scaffolds Dir
// itself and names the project after it. Re-running over an existing
// scaffold succeeds and rewrites the manifest.
func (in *Initializer) Initialize(projectName string) (*Result, error) {
	p, err := in.Plan(projectName)
	if err != nil {
		return nil, err
	}
	return in.Apply(p)
}

// Plan resolves the project root, name, directories and manifest path.
func (in *Initializer) Plan(projectName string) (Plan, error) {
	if err := validateName(projectName); err != nil {
		return Plan{}, err
	}
	dir, err := in.workDir()
	if err != nil {
		return Plan{}, err
	}

	p := Plan{Root: dir, ProjectName: projectName}
	if projectName != "" {
		p.Root = filepath.Join(dir, projectName)
		p.Directories = append(p.Directories, p.Root)
	} else {
		p.ProjectName = filepath.Base(dir)
	}
	for _, d := range layout.Scaffold() {
		p.Directories = append(p.Directories, d.Path(p.Root))
	}
	p.Manifest = filepath.Join(p.Root, manifest.ConfigFile)
	if info, err := os.Stat(p.Manifest); err == nil && info.Mode().IsRegular() {
		p.ManifestExists = true
	}
	return p, nil
}

// Apply creates p's directories in order and then writes the manifest.
// If any directory cannot be created the manifest is not written.
func (in *Initializer) Apply(p Plan) (*Result, error) {
	log := in.logger()
	res := &Result{ProjectName: p.ProjectName, Root: p.Root, Manifest: p.Manifest}

	for _, dir := range p.Directories {
		created, err := mkdir(dir)
		if err != nil {
			log.Error("create directory failed", "path", dir, "err", err)
			return nil, &InitError{Kind: DirectoryCreateFailed, Path: dir, Err: err}
		}
		if created {
			log.Debug("created directory", "path", dir)
			res.Created = append(res.Created, dir)
		} else {
			log.Debug("directory already exists", "path", dir)
			res.Existing = append(res.Existing, dir)
		}
	}

	if p.KeepManifest && p.ManifestExists {
		log.Info("keeping existing manifest", "path", p.Manifest)
		return res, nil
	}
	if err := manifest.Generate(p.ProjectName, p.Manifest); err != nil {
		log.Error("write manifest failed", "path", p.Manifest, "err", err)
		return nil, &InitError{Kind: ManifestFailed, Path: p.Manifest, Err: err}
	}
	res.ManifestWritten = true
	log.Info("project initialized", "name", p.ProjectName, "root", p.Root)
	return res, nil
}

// mkdir creates a single directory level. An existing directory is not an
// error; an existing non-directory is.
func mkdir(path string) (bool, error) {
	err := os.Mkdir(path, 0o755)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrExist) {
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			return false, nil
		}
	}
	return false, err
}

func validateName(name string) error {
	if name == "" {
		return nil
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func (in *Initializer) workDir() (string, error) {
	dir := in.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return abs, nil
}

func (in *Initializer) logger() *slog.Logger {
	if in.Logger == nil {
		return logging.Discard()
	}
	return in.Logger
}
