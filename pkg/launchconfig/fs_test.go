package launchconfig

import (
	"errors"
	"io/fs"
	"path"
)

// mockFileSystem is a test double for FileSystem.
// Paths in links are rewritten to their target; paths in missing fail.
type mockFileSystem struct {
	wd       string
	links    map[string]string
	missing  map[string]bool
	absErr   error
	getwdErr error
}

func (m *mockFileSystem) Abs(p string) (string, error) {
	if m.absErr != nil {
		return "", m.absErr
	}
	if path.IsAbs(p) {
		return path.Clean(p), nil
	}
	return path.Join(m.wd, p), nil
}

func (m *mockFileSystem) EvalSymlinks(p string) (string, error) {
	if m.missing[p] {
		return "", &fs.PathError{Op: "lstat", Path: p, Err: fs.ErrNotExist}
	}
	if target, ok := m.links[p]; ok {
		return target, nil
	}
	return p, nil
}

func (m *mockFileSystem) Getwd() (string, error) {
	if m.getwdErr != nil {
		return "", m.getwdErr
	}
	return m.wd, nil
}

var errBoom = errors.New("boom")
