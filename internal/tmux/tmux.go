// Package tmux drives named terminal-multiplexer sessions for interactive runs.
package tmux

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrNotFound is returned when the tmux binary is not on PATH.
var ErrNotFound = errors.New("tmux not found. Install via: brew install tmux")

// Available reports whether tmux is on PATH.
func Available() bool {
	_, err := exec.LookPath("tmux")
	return err == nil
}

// Target returns the pane target for a session's first window.
func Target(session string) string {
	return session + ":0.0"
}

// Argument builders are separate from execution so command construction can
// be verified without a tmux server.

func killSessionArgs(session string) []string {
	return []string{"kill-session", "-t", session}
}

func newSessionArgs(session, window string) []string {
	return []string{"new", "-d", "-s", session, "-n", window}
}

func sendLineArgs(target, text string) []string {
	// -l sends the text literally; -- stops tmux from eating a leading dash.
	return []string{"send-keys", "-t", target, "-l", "--", text}
}

func sendEnterArgs(target string) []string {
	return []string{"send-keys", "-t", target, "Enter"}
}

func capturePaneArgs(target string, lines int) []string {
	return []string{"capture-pane", "-p", "-J", "-t", target, "-S", fmt.Sprintf("-%d", lines)}
}

// StartSession kills any session of the same name and creates a fresh
// detached one.
func StartSession(session, window string) error {
	// Kill existing session if any; a missing session is fine.
	_ = exec.Command("tmux", killSessionArgs(session)...).Run()

	if out, err := exec.Command("tmux", newSessionArgs(session, window)...).CombinedOutput(); err != nil {
		return fmt.Errorf("failed to create tmux session %s: %w: %s", session, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// SendLine types text into the target pane and presses Enter.
func SendLine(target, text string) error {
	if err := exec.Command("tmux", sendLineArgs(target, text)...).Run(); err != nil {
		return fmt.Errorf("failed to send keys to %s: %w", target, err)
	}
	if err := exec.Command("tmux", sendEnterArgs(target)...).Run(); err != nil {
		return fmt.Errorf("failed to send Enter to %s: %w", target, err)
	}
	return nil
}

// CapturePane returns the last lines of the target pane's content.
func CapturePane(target string, lines int) (string, error) {
	out, err := exec.Command("tmux", capturePaneArgs(target, lines)...).Output()
	if err != nil {
		return "", fmt.Errorf("failed to capture pane %s: %w", target, err)
	}
	return string(out), nil
}

// WaitForText polls the target pane until pattern appears or timeout elapses.
func WaitForText(target, pattern string, timeout, poll time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if buf, err := CapturePane(target, 200); err == nil && strings.Contains(buf, pattern) {
			return true
		}
		time.Sleep(poll)
	}
	return false
}

// LaunchLine builds the shell line that changes into dir and starts argv.
// Every token is single-quoted so prompts and paths survive the shell.
func LaunchLine(dir string, argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = ShellQuote(a)
	}
	return fmt.Sprintf("cd %s && %s", ShellQuote(dir), strings.Join(quoted, " "))
}

// ShellQuote quotes a string for safe use in shell commands.
// It wraps the string in single quotes and escapes any single quotes within.
func ShellQuote(s string) string {
	escaped := strings.ReplaceAll(s, "'", "'\\''")
	return "'" + escaped + "'"
}
