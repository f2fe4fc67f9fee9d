package launchconfig

import (
	"os"
	"path/filepath"
)

// FileSystem abstracts the path operations needed to resolve a launch target.
type FileSystem interface {
	Abs(path string) (string, error)
	EvalSymlinks(path string) (string, error)
	Getwd() (string, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Abs returns an absolute representation of path.
func (r *RealFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// EvalSymlinks returns path with all symbolic links resolved.
// It fails if any component of path does not exist.
func (r *RealFileSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// Getwd returns the working directory of the current process.
func (r *RealFileSystem) Getwd() (string, error) {
	return os.Getwd()
}
