package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/hinshun/vt10x"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joneshong-skills/codex-headless/internal/config"
	"github.com/joneshong-skills/codex-headless/internal/models"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Inspect background run logs",
	Long:  `Inspect the log files written by background runs.`,
}

var logsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List background run logs (newest first)",
	RunE:    runLogsList,
}

var logsShowCmd = &cobra.Command{
	Use:   "show [log-name]",
	Short: "Print a log file (latest if no name given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLogsShow,
}

var logsFollowCmd = &cobra.Command{
	Use:   "follow [log-name]",
	Short: "Stream a log file as it grows",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLogsFollow,
}

var logsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the latest log file",
	RunE:  runLogsPath,
}

var logsFlags struct {
	dir    string
	screen bool
}

func init() {
	logsCmd.PersistentFlags().StringVar(&logsFlags.dir, "log-dir", "", "log directory (default ~/.codex-headless/logs)")
	logsShowCmd.Flags().BoolVar(&logsFlags.screen, "screen", false, "render through a terminal emulator and print the final screen")

	logsCmd.AddCommand(logsListCmd)
	logsCmd.AddCommand(logsShowCmd)
	logsCmd.AddCommand(logsFollowCmd)
	logsCmd.AddCommand(logsPathCmd)
}

func logsDir() (string, error) {
	if logsFlags.dir != "" {
		return logsFlags.dir, nil
	}
	return config.GlobalLogsDir()
}

func runLogsList(cmd *cobra.Command, args []string) error {
	dir, err := logsDir()
	if err != nil {
		return err
	}

	logs, err := config.ListLogs(dir)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Println(styleHint.Render("No background logs in " + dir))
		return nil
	}

	for _, entry := range logs {
		fmt.Println(styleValue.Render(entry.Name))
		if entry.StartedAt != "" {
			fmt.Printf("  %s %s\n", styleLabel.Render("Started:"), entry.StartedAt)
		}
		if entry.PID > 0 {
			fmt.Printf("  %s %d\n", styleLabel.Render("PID:    "), entry.PID)
		}
		if entry.Command != "" {
			fmt.Printf("  %s %s\n", styleLabel.Render("Command:"), truncate(entry.Command, 100))
		}
	}
	return nil
}

// resolveLogArg turns an optional log-name argument into a concrete entry.
func resolveLogArg(args []string) (*models.LogEntry, error) {
	dir, err := logsDir()
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		name := args[0]
		if !strings.HasSuffix(name, ".log") {
			name += ".log"
		}
		return config.ParseLogHeader(filepath.Join(dir, name))
	}

	entry, err := config.LatestLog(dir)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("no logs found in %s", dir)
	}
	return entry, nil
}

func runLogsShow(cmd *cobra.Command, args []string) error {
	entry, err := resolveLogArg(args)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(entry.Path)
	if err != nil {
		return err
	}

	if logsFlags.screen {
		fmt.Print(renderScreen(data))
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}

// renderScreen replays raw log bytes through a virtual terminal and returns
// the final screen as plain text. TUI-heavy output is unreadable as raw
// bytes; the emulator resolves all the cursor movement for us.
func renderScreen(data []byte) string {
	cols, rows := 80, 24
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if c, r, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			cols, rows = c, r
		}
	}

	vt := vt10x.New(vt10x.WithSize(cols, rows))
	_, _ = vt.Write(data)

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		var line strings.Builder
		for col := 0; col < cols; col++ {
			g := vt.Cell(col, row)
			if g.Char == 0 {
				line.WriteByte(' ')
			} else {
				line.WriteRune(g.Char)
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func runLogsFollow(cmd *cobra.Command, args []string) error {
	entry, err := resolveLogArg(args)
	if err != nil {
		return err
	}

	f, err := os.Open(entry.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Print what is already there, then stream appends. A trailer in the
	// existing content means the run is already over.
	existing, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(existing); err != nil {
		return err
	}
	if strings.Contains(string(existing), "# Ended: ") {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(entry.Path); err != nil {
		return err
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Write != 0 {
				done, err := copyAppended(f)
				if err != nil {
					return err
				}
				if done {
					return nil
				}
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// copyAppended drains newly written bytes to stdout and reports whether the
// wrapper's trailer has been seen, meaning the run is over.
func copyAppended(f *os.File) (done bool, err error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return false, err
	}
	return strings.Contains(string(data), "# Ended: "), nil
}

func runLogsPath(cmd *cobra.Command, args []string) error {
	dir, err := logsDir()
	if err != nil {
		return err
	}
	entry, err := config.LatestLog(dir)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no logs found in %s", dir)
	}
	fmt.Println(entry.Path)
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
