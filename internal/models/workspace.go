package models

import "path/filepath"

// Workspace carries the directory file dialogs start in. It is a plain value:
// callers replace it rather than mutate it.
type Workspace struct {
	Dir string
}

func NewWorkspace(dir string) Workspace {
	if dir == "" {
		return Workspace{}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return Workspace{Dir: dir}
}

// WithFile returns the workspace rooted at the folder containing path.
func (w Workspace) WithFile(path string) Workspace {
	return NewWorkspace(filepath.Dir(path))
}
