package gitscan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInsideWorkTree(t *testing.T) {
	repo := t.TempDir()
	if err := os.Mkdir(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(repo, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	worktree := t.TempDir()
	// Linked worktrees have a .git file, not a directory.
	if err := os.WriteFile(filepath.Join(worktree, ".git"), []byte("gitdir: /elsewhere\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	bare := t.TempDir()

	tests := []struct {
		name     string
		dir      string
		expected bool
	}{
		{name: "repo root", dir: repo, expected: true},
		{name: "nested inside repo", dir: nested, expected: true},
		{name: "worktree with .git file", dir: worktree, expected: true},
		{name: "no repository marker", dir: bare, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsideWorkTree(tt.dir); got != tt.expected {
				t.Errorf("InsideWorkTree(%s) = %v, want %v", tt.dir, got, tt.expected)
			}
		})
	}
}
