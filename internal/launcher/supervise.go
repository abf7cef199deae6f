package launcher

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/creack/pty"

	"github.com/joneshong-skills/codex-headless/internal/config"
	"github.com/joneshong-skills/codex-headless/internal/notify"
)

// SuperviseOptions configures one supervised background run.
type SuperviseOptions struct {
	LogPath string
	CWD     string
	Notify  bool
	Argv    []string // the wrapped command, binary first

	// Notifier is swappable for tests; nil means the desktop notifier.
	Notifier func(title, message string) error
}

// Supervise runs the wrapped command inside a PTY, streaming its output to
// the log file, and fires the completion notification only after the log has
// been flushed and closed. It returns the wrapped command's exit status.
//
// This is the body of the hidden `supervise` command, always executing in a
// detached session started by launchBackground.
func Supervise(opts SuperviseOptions) int {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Send
	}

	exitCode, pid := superviseRun(opts)

	if opts.Notify {
		if err := notifier(notify.Title, notify.BackgroundMessage(pid, exitCode)); err != nil {
			fmt.Fprintf(os.Stderr, "notification failed: %v\n", err)
		}
	}

	return exitCode
}

// superviseRun owns the log file for the lifetime of the wrapped process.
// By the time it returns, every byte of output is flushed to disk.
func superviseRun(opts SuperviseOptions) (exitCode, pid int) {
	f, err := os.Create(opts.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log file: %v\n", err)
		return 1, 0
	}
	defer f.Close()

	if err := config.WriteLogHeader(f, opts.Argv, time.Now(), opts.CWD); err != nil {
		fmt.Fprintf(f, "# Error: writing log header: %v\n", err)
	}

	cmd := exec.Command(opts.Argv[0], opts.Argv[1:]...)
	cmd.Dir = opts.CWD

	ptmx, err := pty.Start(cmd)
	if err != nil {
		// No PTY available: run directly into the log.
		cmd = exec.Command(opts.Argv[0], opts.Argv[1:]...)
		cmd.Dir = opts.CWD
		cmd.Stdout = f
		cmd.Stderr = f
		if err := cmd.Start(); err != nil {
			fmt.Fprintf(f, "# Error: %v\n", err)
			return 1, 0
		}
		pid = cmd.Process.Pid
		_ = config.WriteLogPID(f, pid)
		exitCode = waitAndLog(cmd, f)
		return exitCode, pid
	}
	defer ptmx.Close()

	pid = cmd.Process.Pid
	_ = config.WriteLogPID(f, pid)

	// Forward termination signals so killing the supervisor stops the run.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for sig := range sigCh {
			_ = cmd.Process.Signal(sig)
		}
	}()
	defer signal.Stop(sigCh)

	_, _ = io.Copy(f, ptmx)

	exitCode = waitAndLog(cmd, f)
	return exitCode, pid
}

// waitAndLog waits for the wrapped command, writes the trailer, and syncs
// the file so the notification can never beat the final bytes to disk.
func waitAndLog(cmd *exec.Cmd, f *os.File) int {
	exitCode, err := exitStatus(cmd.Wait())
	if err != nil {
		fmt.Fprintf(f, "# Error: %v\n", err)
		exitCode = 1
	}
	_ = config.WriteLogTrailer(f, exitCode, time.Now())
	_ = f.Sync()
	return exitCode
}
