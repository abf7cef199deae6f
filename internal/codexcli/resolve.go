package codexcli

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/joneshong-skills/codex-headless/internal/models"
)

// ErrNotFound is returned when no codex binary can be located.
var ErrNotFound = errors.New("codex binary not found. Install with `npm install -g @openai/codex` or set CODEX_BIN")

// Resolve finds the codex binary.
// Check order: explicit flag → CODEX_BIN → settings.yaml → exec.LookPath →
// platform-specific fallbacks.
func Resolve(explicit string, settings *models.Settings) (string, error) {
	// 1. Explicit path from the command line
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit, nil
		}
	}

	// 2. CODEX_BIN environment variable
	if env := os.Getenv("CODEX_BIN"); env != "" {
		if _, err := os.Stat(env); err == nil {
			return env, nil
		}
	}

	// 3. Configured path from settings.yaml
	if settings != nil && settings.Codex.Path != "" {
		if _, err := os.Stat(settings.Codex.Path); err == nil {
			return settings.Codex.Path, nil
		}
	}

	// 4. Try exec.LookPath
	if path, err := exec.LookPath("codex"); err == nil {
		return path, nil
	}

	// 5. Platform-specific fallbacks
	homeDir, _ := os.UserHomeDir()
	fallbacks := []string{
		filepath.Join(homeDir, ".local", "bin", "codex"),
	}

	if runtime.GOOS == "darwin" {
		fallbacks = append(fallbacks,
			"/opt/homebrew/bin/codex",
			"/usr/local/bin/codex",
		)
	}

	for _, p := range fallbacks {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrNotFound
}
