package manifest

import (
	"os"
	"path/filepath"
)

// Generate writes the default manifest for projectName to dest, replacing
// any existing file. Failures are reported as *ManifestError with
// Kind WriteFailed.
func Generate(projectName, dest string) error {
	return Default(projectName).WriteFile(dest)
}

// WriteFile serializes m and atomically replaces path with it. On failure
// path is either untouched or absent; no partial document is left behind.
func (m *Manifest) WriteFile(path string) error {
	data, err := m.MarshalTOML()
	if err != nil {
		return &ManifestError{Kind: WriteFailed, Path: path, Err: err}
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return &ManifestError{Kind: WriteFailed, Path: path, Err: err}
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
