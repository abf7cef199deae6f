// Package launcher runs the codex CLI in one of three styles: headless
// foreground behind a PTY, headless background as a detached supervised
// process, or interactive inside a tmux session.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joneshong-skills/codex-headless/internal/codexcli"
	"github.com/joneshong-skills/codex-headless/internal/gitscan"
	"github.com/joneshong-skills/codex-headless/internal/tmux"
)

// Mode selects the execution style.
type Mode string

// Execution modes.
const (
	ModeHeadless    Mode = "headless"
	ModeInteractive Mode = "interactive"
)

// Launch failure errors. These are environment problems detected before any
// process is spawned, distinct from a non-zero exit of codex itself.
var (
	ErrNoPrompt = errors.New("no prompt given and standard input is not connected")
	ErrLogDir   = errors.New("cannot create log directory")
	ErrNoBinary = errors.New("codex binary not resolved")
)

// IsEnvironmentError reports whether err is a pre-spawn launch failure.
func IsEnvironmentError(err error) bool {
	return errors.Is(err, ErrNoPrompt) ||
		errors.Is(err, ErrLogDir) ||
		errors.Is(err, ErrNoBinary) ||
		errors.Is(err, codexcli.ErrNotFound) ||
		errors.Is(err, tmux.ErrNotFound)
}

// Request describes one launch. Each Launch call is independent; there is no
// shared state between invocations.
type Request struct {
	// Prompt resolution. PromptGiven distinguishes an explicit empty prompt
	// from an absent one. Stdin must be non-nil only when the caller has a
	// real piped stream; it is read in full before any process is spawned.
	Prompt      string
	PromptGiven bool
	Stdin       io.Reader

	Mode       Mode
	Background bool

	// Codex carries the typed flags, passthrough tokens, and resolved binary.
	Codex codexcli.Options

	Clipboard bool
	Notify    bool
	LogDir    string

	TmuxSession     string
	InteractiveWait time.Duration
	SendDelay       time.Duration

	// Stdout/Stderr default to the process streams when nil.
	Stdout io.Writer
	Stderr io.Writer
}

// Result reports what a launch did.
type Result struct {
	ExitCode int
	PID      int    // background only: the supervisor process id
	LogPath  string // background only
	Output   string // foreground only: captured PTY bytes
}

func (r *Request) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Request) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

// workDir returns the resolved working directory for the run.
func (r *Request) workDir() string {
	if r.Codex.WorkDir != "" {
		return r.Codex.WorkDir
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// Launch assembles and executes one codex invocation according to the
// request. All environment errors are reported before anything is spawned.
func Launch(req Request) (*Result, error) {
	if req.Codex.Bin == "" {
		return nil, ErrNoBinary
	}

	if err := resolvePrompt(&req); err != nil {
		return nil, err
	}

	applyGitRepoCheck(&req)

	if req.Mode == ModeInteractive {
		return runInteractive(req)
	}
	if req.Background {
		return launchBackground(req)
	}
	return runForeground(req)
}

// resolvePrompt fills req.Codex.Prompt from the positional argument or, when
// absent, from standard input. Stdin is never touched when a positional
// prompt was given.
func resolvePrompt(req *Request) error {
	if req.PromptGiven {
		req.Codex.Prompt = req.Prompt
		return nil
	}
	if req.Stdin == nil {
		return ErrNoPrompt
	}
	data, err := io.ReadAll(req.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read prompt from stdin: %w", err)
	}
	req.Codex.Prompt = string(data)
	return nil
}

// applyGitRepoCheck appends --skip-git-repo-check when the working directory
// is outside any git work tree and the caller has not supplied the flag,
// typed or passthrough.
func applyGitRepoCheck(req *Request) {
	if req.Codex.SkipGitRepoCheck {
		return
	}
	if codexcli.HasFlag(req.Codex.Passthrough, "--skip-git-repo-check") {
		return
	}
	dir := req.workDir()
	if gitscan.InsideWorkTree(dir) {
		return
	}
	fmt.Fprintf(req.stderr(), "Note: %s is not a git repository. Adding --skip-git-repo-check.\n", dir)
	req.Codex.SkipGitRepoCheck = true
}
