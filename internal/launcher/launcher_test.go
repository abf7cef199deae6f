package launcher

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joneshong-skills/codex-headless/internal/codexcli"
)

func TestResolvePromptPositionalWins(t *testing.T) {
	req := Request{
		Prompt:      "from arg",
		PromptGiven: true,
		// Stdin must never be read when a positional prompt was given.
		Stdin: failingReader{},
	}

	require.NoError(t, resolvePrompt(&req))
	assert.Equal(t, "from arg", req.Codex.Prompt)
}

func TestResolvePromptFromStdinVerbatim(t *testing.T) {
	req := Request{
		Stdin: strings.NewReader("T\n"),
	}

	require.NoError(t, resolvePrompt(&req))
	// No trimming, trailing newline included.
	assert.Equal(t, "T\n", req.Codex.Prompt)
}

func TestResolvePromptNoStdin(t *testing.T) {
	req := Request{}
	err := resolvePrompt(&req)
	assert.ErrorIs(t, err, ErrNoPrompt)
}

func TestResolvePromptExplicitEmptyAllowed(t *testing.T) {
	// Resume-style runs pass an explicit empty prompt.
	req := Request{Prompt: "", PromptGiven: true}
	require.NoError(t, resolvePrompt(&req))
	assert.Equal(t, "", req.Codex.Prompt)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	panic("stdin must not be read when a positional prompt is given")
}

func TestApplyGitRepoCheck(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repo, ".git"), 0o755))
	bare := t.TempDir()

	tests := []struct {
		name        string
		dir         string
		preset      bool
		passthrough []string
		expectSkip  bool
	}{
		{
			name:       "outside repo, flag auto-added",
			dir:        bare,
			expectSkip: true,
		},
		{
			name:       "inside repo, no flag",
			dir:        repo,
			expectSkip: false,
		},
		{
			name:       "outside repo, caller already set typed flag",
			dir:        bare,
			preset:     true,
			expectSkip: true,
		},
		{
			name:        "outside repo, caller passed it through",
			dir:         bare,
			passthrough: []string{"--skip-git-repo-check"},
			expectSkip:  false,
		},
		{
			name:        "outside repo, equals-style passthrough",
			dir:         bare,
			passthrough: []string{"--skip-git-repo-check=true"},
			expectSkip:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			req := Request{
				Codex: codexcli.Options{
					WorkDir:          tt.dir,
					SkipGitRepoCheck: tt.preset,
					Passthrough:      tt.passthrough,
				},
				Stderr: &stderr,
			}

			applyGitRepoCheck(&req)
			assert.Equal(t, tt.expectSkip || tt.preset, req.Codex.SkipGitRepoCheck)

			// The auto-added case announces itself; no other case does.
			autoAdded := tt.expectSkip && !tt.preset
			assert.Equal(t, autoAdded, strings.Contains(stderr.String(), "skip-git-repo-check"))
		})
	}
}

func TestLaunchRequiresBinary(t *testing.T) {
	_, err := Launch(Request{PromptGiven: true})
	assert.ErrorIs(t, err, ErrNoBinary)
	assert.True(t, IsEnvironmentError(err))
}

func TestSuperviseArgv(t *testing.T) {
	argv := superviseArgv("/tmp/x/run.log", true, "/work", []string{"codex", "exec", "hi"})
	want := []string{"supervise", "--log", "/tmp/x/run.log", "--cwd", "/work", "--notify", "--", "codex", "exec", "hi"}
	assert.Equal(t, want, argv)

	argv = superviseArgv("/tmp/x/run.log", false, "/work", []string{"codex"})
	assert.NotContains(t, argv, "--notify")
}

func TestExitStatus(t *testing.T) {
	code, err := exitStatus(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	cmd := exec.Command("sh", "-c", "exit 7")
	code, err = exitStatus(cmd.Run())
	require.NoError(t, err)
	assert.Equal(t, 7, code)

	_, err = exitStatus(errors.New("spawn failed"))
	assert.Error(t, err)
}

func TestRunInPTYMirrorsOutputAndExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	var out bytes.Buffer
	code, err := runInPTY([]string{"sh", "-c", "printf pong; exit 3"}, "", &out)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Contains(t, out.String(), "pong")
}
