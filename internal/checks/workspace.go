package checks

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace resolves checklist paths against a fixed base directory.
// The process working directory is never consulted or changed.
type Workspace struct {
	root string
}

func NewWorkspace(root string) (*Workspace, error) {
	if root == "" {
		return nil, fmt.Errorf("workspace root required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("workspace root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace root %s is not a directory", abs)
	}
	return &Workspace{root: abs}, nil
}

// ExecutableDir returns the directory containing the running binary with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ResolveBaseDir returns dir, or the executable's directory when dir is empty.
func ResolveBaseDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	return ExecutableDir()
}

func (w *Workspace) Root() string {
	return w.root
}

// Abs maps a slash-separated checklist path onto the filesystem.
func (w *Workspace) Abs(rel string) string {
	p := filepath.FromSlash(rel)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(w.root, p)
}

func (w *Workspace) Exists(rel string) bool {
	_, err := os.Stat(w.Abs(rel))
	return err == nil
}

func (w *Workspace) ReadText(rel string) (string, error) {
	b, err := os.ReadFile(w.Abs(rel))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
