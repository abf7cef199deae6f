package launcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/joneshong-skills/codex-headless/internal/tmux"
)

// startupDelay gives the codex TUI time to draw before the prompt is typed.
const startupDelay = 3 * time.Second

// runInteractive starts the codex TUI inside a named tmux session, types the
// prompt into it, and returns immediately. The session's terminal is the
// only consumer of output; the caller attaches separately.
func runInteractive(req Request) (*Result, error) {
	if !tmux.Available() {
		return nil, tmux.ErrNotFound
	}

	session := req.TmuxSession
	if session == "" {
		session = "codex"
	}
	target := tmux.Target(session)

	if err := tmux.StartSession(session, "codex"); err != nil {
		return nil, err
	}

	launch := tmux.LaunchLine(req.workDir(), req.Codex.InteractiveArgv())
	if err := tmux.SendLine(target, launch); err != nil {
		return nil, err
	}

	time.Sleep(startupDelay)

	sendDelay := req.SendDelay
	if sendDelay <= 0 {
		sendDelay = 800 * time.Millisecond
	}
	for _, line := range strings.Split(req.Codex.Prompt, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := tmux.SendLine(target, line); err != nil {
			return nil, err
		}
		time.Sleep(sendDelay)
	}

	out := req.stdout()
	fmt.Fprintf(out, "Interactive codex started in tmux session: %s\n", session)
	fmt.Fprintf(out, "  Attach:   tmux attach -t %s\n", tmux.ShellQuote(session))
	fmt.Fprintf(out, "  Snapshot: tmux capture-pane -p -J -t %s -S -200\n", tmux.ShellQuote(target))

	if req.InteractiveWait > 0 {
		time.Sleep(req.InteractiveWait)
		if snap, err := tmux.CapturePane(target, 200); err == nil {
			fmt.Fprintf(out, "\n--- tmux snapshot (last 200 lines) ---\n\n%s\n", snap)
		}
	}

	return &Result{ExitCode: 0}, nil
}
