package launchconfig

import "fmt"

// ResolveProgram returns the canonical absolute path of the binary at path.
// Symlinks and "." / ".." elements are resolved; a missing entry is an error.
func ResolveProgram(fsys FileSystem, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrNoBinary)
	}

	abs, err := fsys.Abs(path)
	if err != nil {
		return "", fmt.Errorf("binary path %q is invalid: %w", path, err)
	}

	resolved, err := fsys.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("binary path %q cannot be resolved: %w", path, err)
	}
	return resolved, nil
}
