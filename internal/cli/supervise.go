package cli

import (
	"github.com/spf13/cobra"

	"github.com/joneshong-skills/codex-headless/internal/launcher"
)

// superviseCmd is the detached half of --background. launchBackground spawns
// this command in its own session; it owns the PTY and the log file for the
// lifetime of the wrapped run. Not for direct use.
var superviseCmd = &cobra.Command{
	Use:    "supervise --log <path> --cwd <dir> [--notify] -- <command> [args...]",
	Hidden: true,
	Args:   cobra.MinimumNArgs(1),
	RunE:   runSupervise,
}

var superviseFlags struct {
	logPath string
	cwd     string
	notify  bool
}

func init() {
	f := superviseCmd.Flags()
	f.StringVar(&superviseFlags.logPath, "log", "", "log file path")
	f.StringVar(&superviseFlags.cwd, "cwd", "", "working directory for the wrapped command")
	f.BoolVar(&superviseFlags.notify, "notify", false, "notify when the wrapped command exits")
	_ = superviseCmd.MarkFlagRequired("log")
}

func runSupervise(cmd *cobra.Command, args []string) error {
	code := launcher.Supervise(launcher.SuperviseOptions{
		LogPath: superviseFlags.logPath,
		CWD:     superviseFlags.cwd,
		Notify:  superviseFlags.notify,
		Argv:    args,
	})
	if code != 0 {
		return &exitCodeError{code: code}
	}
	return nil
}
