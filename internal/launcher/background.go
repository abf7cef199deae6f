package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/joneshong-skills/codex-headless/internal/config"
)

// launchBackground spawns the run as a detached supervisor process and
// returns immediately. The supervisor (this same binary, hidden `supervise`
// command) owns the PTY, the log file, and the completion notification, so
// the wrapper can exit while the run keeps going.
func launchBackground(req Request) (*Result, error) {
	logPath, err := newLogPath(req.LogDir)
	if err != nil {
		return nil, err
	}

	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate own executable: %w", err)
	}

	argv := req.Codex.ExecArgv()

	cmd := exec.Command(self, superviseArgv(logPath, req.Notify, req.workDir(), argv)...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = detachAttr()

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start background supervisor: %w", err)
	}
	// The OS reaps the detached child; Release just drops our handle.
	pid := cmd.Process.Pid
	_ = cmd.Process.Release()

	return &Result{
		ExitCode: 0,
		PID:      pid,
		LogPath:  logPath,
	}, nil
}

// superviseArgv builds the argument vector for the hidden supervise command.
// The wrapped command's argv follows the -- sentinel untouched.
func superviseArgv(logPath string, notify bool, cwd string, argv []string) []string {
	args := []string{"supervise", "--log", logPath, "--cwd", cwd}
	if notify {
		args = append(args, "--notify")
	}
	args = append(args, "--")
	return append(args, argv...)
}

// newLogPath allocates a uniquely named log file path inside dir,
// creating dir if needed.
func newLogPath(dir string) (string, error) {
	path, err := config.NewLogPath(dir, time.Now())
	if err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrLogDir, dir, err)
	}
	return path, nil
}
