package launcher

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/joneshong-skills/codex-headless/internal/clipboard"
	"github.com/joneshong-skills/codex-headless/internal/notify"
)

// runForeground executes codex exec behind a PTY and blocks until it exits.
// The PTY keeps codex from hanging in hosts where it probes for a terminal;
// its raw byte stream is teed to the caller and to a capture buffer.
func runForeground(req Request) (*Result, error) {
	argv := req.Codex.ExecArgv()

	var buf bytes.Buffer
	exitCode, err := runInPTY(argv, req.Codex.WorkDir, io.MultiWriter(req.stdout(), &buf))
	if err != nil {
		return nil, err
	}

	res := &Result{
		ExitCode: exitCode,
		Output:   buf.String(),
	}

	postProcess(req, res)
	return res, nil
}

// runInPTY starts argv inside a pseudo-terminal, copies its output to out,
// and returns the exit status. If no PTY can be allocated (some containers),
// it falls back to a direct run with combined output.
func runInPTY(argv []string, dir string, out io.Writer) (int, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir

	ptmx, err := pty.Start(cmd)
	if err != nil {
		direct := exec.Command(argv[0], argv[1:]...)
		direct.Dir = dir
		direct.Stdout = out
		direct.Stderr = out
		return exitStatus(direct.Run())
	}
	defer ptmx.Close()

	// Match the caller's terminal size when attached to one.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			_ = pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
		}
	}

	// The copy ends with EIO on Linux when the child closes the slave side;
	// that is the normal EOF for a PTY master.
	_, _ = io.Copy(out, ptmx)

	return exitStatus(cmd.Wait())
}

// exitStatus maps a Wait/Run error to the child's exit code. A non-zero exit
// is not a launch failure; anything else is.
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), nil
	}
	return 0, fmt.Errorf("failed to run codex: %w", err)
}

// postProcess applies the clipboard and notification side effects after a
// foreground run. Their failures are logged, never promoted over the run's
// own result.
func postProcess(req Request, res *Result) {
	if req.Clipboard {
		if err := copyOutput(req, res); err != nil {
			log.Printf("clipboard copy failed: %v", err)
		}
	}

	if req.Notify {
		if err := notify.Send(notify.Title, notify.CompletionMessage(res.ExitCode)); err != nil {
			log.Printf("notification failed: %v", err)
		}
	}
}

// copyOutput puts the run's output on the clipboard. When codex wrote its
// final message to a file, that file wins: it is already clean text. The PTY
// capture is ANSI-stripped first.
func copyOutput(req Request, res *Result) error {
	if req.Codex.OutputFile != "" {
		if data, err := os.ReadFile(req.Codex.OutputFile); err == nil {
			return clipboard.Copy(string(data))
		}
	}
	return clipboard.CopyStripped(res.Output)
}
