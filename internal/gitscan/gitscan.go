// Package gitscan answers whether a directory is inside a git work tree.
//
// Codex refuses to run outside a repository unless told otherwise, so the
// launcher probes the filesystem before building the command line. The probe
// walks upward looking for a .git entry; a plain file also counts, since
// linked worktrees and submodules keep a .git file instead of a directory.
package gitscan

import (
	"os"
	"path/filepath"
)

// InsideWorkTree reports whether dir (or the cwd when dir is empty) is inside
// a git work tree.
func InsideWorkTree(dir string) bool {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return false
		}
		dir = cwd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}

	for {
		if _, err := os.Stat(filepath.Join(abs, ".git")); err == nil {
			return true
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return false
		}
		abs = parent
	}
}
