// Package cli implements the codex-headless CLI commands.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joneshong-skills/codex-headless/internal/codexcli"
	"github.com/joneshong-skills/codex-headless/internal/config"
	"github.com/joneshong-skills/codex-headless/internal/launcher"
	"github.com/joneshong-skills/codex-headless/internal/tmux"
)

var rootCmd = &cobra.Command{
	Use:   "codex-headless [flags] [prompt] [-- passthrough...]",
	Short: "Run the codex CLI reliably in headless or interactive mode",
	Long: `codex-headless launches the OpenAI Codex CLI without hanging in
non-interactive environments.

Headless mode runs 'codex exec' behind a pseudo-terminal and blocks until it
finishes, mirroring its exit code. With --background the run is handed to a
detached supervisor: the command returns immediately with a PID and a log
file path. Interactive mode starts the codex TUI inside a tmux session and
types the prompt into it.

Flags the wrapper does not own go after '--' and are forwarded to codex
verbatim, in order.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var rootFlags struct {
	mode       string
	background bool

	model        string
	sandbox      string
	fullAuto     bool
	profile      string
	workDir      string
	images       []string
	jsonOutput   bool
	outputFile   string
	outputSchema string
	ephemeral    bool
	skipGitCheck bool
	addDirs      []string
	yolo         bool
	oss          bool
	localProv    string
	color        string

	codexBin  string
	logDir    string
	notify    bool
	clipboard bool

	tmuxSession string
	waitAfter   time.Duration
	sendDelay   time.Duration
}

func init() {
	f := rootCmd.Flags()

	f.StringVar(&rootFlags.mode, "mode", "headless", "execution mode: headless or interactive")
	f.BoolVar(&rootFlags.background, "background", false, "run in background; returns immediately with PID and log path")

	f.StringVarP(&rootFlags.model, "model", "m", "", "model to use (e.g. o4-mini)")
	f.StringVarP(&rootFlags.sandbox, "sandbox", "s", "", "sandbox policy: read-only, workspace-write, danger-full-access")
	f.BoolVar(&rootFlags.fullAuto, "full-auto", false, "auto-approve with workspace-write sandbox")
	f.StringVarP(&rootFlags.profile, "profile", "p", "", "configuration profile from config.toml")
	f.StringVarP(&rootFlags.workDir, "cd", "C", "", "working directory for the agent")
	f.StringArrayVarP(&rootFlags.images, "image", "i", nil, "attach image(s) to the prompt (repeatable)")
	f.BoolVar(&rootFlags.jsonOutput, "json", false, "print events to stdout as JSONL")
	f.StringVarP(&rootFlags.outputFile, "output-file", "o", "", "write the last agent message to this file")
	f.StringVar(&rootFlags.outputSchema, "output-schema", "", "path to a JSON Schema for the final response")
	f.BoolVar(&rootFlags.ephemeral, "ephemeral", false, "run without persisting session files")
	f.BoolVar(&rootFlags.skipGitCheck, "skip-git-repo-check", false, "allow running outside a git repository")
	f.StringArrayVar(&rootFlags.addDirs, "add-dir", nil, "additional writable directories (repeatable)")
	f.BoolVar(&rootFlags.yolo, "yolo", false, "skip all prompts and sandboxing (dangerous)")
	f.BoolVar(&rootFlags.oss, "oss", false, "use an open-source provider")
	f.StringVar(&rootFlags.localProv, "local-provider", "", "local provider: lmstudio or ollama")
	f.StringVar(&rootFlags.color, "color", "", "color settings for output")

	f.StringVar(&rootFlags.codexBin, "codex-bin", "", "path to the codex binary (or set CODEX_BIN)")
	f.StringVar(&rootFlags.logDir, "log-dir", "", "directory for background log files")
	f.BoolVar(&rootFlags.notify, "notify", false, "send a desktop notification on completion")
	f.BoolVar(&rootFlags.clipboard, "clipboard", false, "copy output to the clipboard")

	f.StringVar(&rootFlags.tmuxSession, "tmux-session", "", "tmux session name for interactive mode")
	f.DurationVar(&rootFlags.waitAfter, "interactive-wait", 0, "wait this long, then print a tmux snapshot")
	f.DurationVar(&rootFlags.sendDelay, "interactive-send-delay", 0, "delay between prompt lines in interactive mode")

	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(superviseCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI and returns the process exit code. Foreground runs
// mirror the wrapped tool's exit status; environment errors exit 2.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var ec *exitCodeError
	if errors.As(err, &ec) {
		return ec.code
	}

	fmt.Fprintln(os.Stderr, styleError.Render("Error:")+" "+err.Error())
	if launcher.IsEnvironmentError(err) {
		return 2
	}
	return 1
}

// exitCodeError carries an exit status that is already reported (the wrapped
// tool's own output is the report); Execute must not print anything for it.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if rootFlags.mode != string(launcher.ModeHeadless) && rootFlags.mode != string(launcher.ModeInteractive) {
		return fmt.Errorf("invalid --mode %q: must be headless or interactive", rootFlags.mode)
	}
	if err := validateChoice("--sandbox", rootFlags.sandbox, "read-only", "workspace-write", "danger-full-access"); err != nil {
		return err
	}
	if err := validateChoice("--local-provider", rootFlags.localProv, "lmstudio", "ollama"); err != nil {
		return err
	}

	prompt, promptGiven, passthrough, err := splitArgs(args, cmd.ArgsLenAtDash())
	if err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	bin, err := codexcli.Resolve(rootFlags.codexBin, settings)
	if err != nil {
		return err
	}

	req := launcher.Request{
		Prompt:      prompt,
		PromptGiven: promptGiven,
		Mode:        launcher.Mode(rootFlags.mode),
		Background:  rootFlags.background,
		Codex: codexcli.Options{
			Bin:              bin,
			Model:            firstNonEmpty(rootFlags.model, settings.Codex.Model),
			Sandbox:          firstNonEmpty(rootFlags.sandbox, settings.Codex.Sandbox),
			FullAuto:         rootFlags.fullAuto,
			Profile:          firstNonEmpty(rootFlags.profile, settings.Codex.Profile),
			WorkDir:          rootFlags.workDir,
			Images:           rootFlags.images,
			JSON:             rootFlags.jsonOutput,
			OutputFile:       rootFlags.outputFile,
			OutputSchema:     rootFlags.outputSchema,
			Ephemeral:        rootFlags.ephemeral,
			SkipGitRepoCheck: rootFlags.skipGitCheck,
			AddDirs:          rootFlags.addDirs,
			Yolo:             rootFlags.yolo,
			OSS:              rootFlags.oss,
			LocalProvider:    rootFlags.localProv,
			Color:            rootFlags.color,
			Passthrough:      passthrough,
		},
		Clipboard:       rootFlags.clipboard || (!cmd.Flags().Changed("clipboard") && settings.Defaults.Clipboard),
		Notify:          rootFlags.notify || (!cmd.Flags().Changed("notify") && settings.Defaults.Notify),
		TmuxSession:     firstNonEmpty(rootFlags.tmuxSession, settings.Defaults.TmuxSession),
		InteractiveWait: rootFlags.waitAfter,
		SendDelay:       rootFlags.sendDelay,
	}
	if req.SendDelay == 0 && settings.Defaults.SendDelayMS > 0 {
		req.SendDelay = time.Duration(settings.Defaults.SendDelayMS) * time.Millisecond
	}

	req.LogDir, err = resolveLogDir(settings.Defaults.LogDir)
	if err != nil {
		return err
	}

	// Only hand the launcher a stdin stream when one is actually connected;
	// reading from an unconnected terminal would block forever.
	if !promptGiven && !term.IsTerminal(int(os.Stdin.Fd())) {
		req.Stdin = os.Stdin
	}

	result, err := launcher.Launch(req)
	if err != nil {
		return err
	}

	if result.PID > 0 {
		printBackgroundInfo(result)
		return nil
	}

	if result.ExitCode != 0 {
		return &exitCodeError{code: result.ExitCode}
	}
	return nil
}

// splitArgs separates the positional prompt from passthrough tokens.
// Everything after -- is passthrough; at most one positional prompt is
// accepted before it.
func splitArgs(args []string, lenAtDash int) (prompt string, promptGiven bool, passthrough []string, err error) {
	positional := args
	if lenAtDash >= 0 {
		positional = args[:lenAtDash]
		passthrough = args[lenAtDash:]
	}

	switch len(positional) {
	case 0:
	case 1:
		prompt = positional[0]
		promptGiven = true
	default:
		return "", false, nil, fmt.Errorf("expected at most one prompt argument, got %d (put codex flags after --)", len(positional))
	}
	return prompt, promptGiven, passthrough, nil
}

// resolveLogDir picks the background log directory: flag → settings → default.
func resolveLogDir(fromSettings string) (string, error) {
	if rootFlags.logDir != "" {
		return rootFlags.logDir, nil
	}
	if fromSettings != "" {
		return fromSettings, nil
	}
	return config.GlobalLogsDir()
}

func printBackgroundInfo(result *launcher.Result) {
	fmt.Println(styleSuccess.Render("Background process started:"))
	fmt.Printf("  %s %d\n", styleLabel.Render("PID: "), result.PID)
	fmt.Printf("  %s %s\n", styleLabel.Render("Log: "), result.LogPath)
	fmt.Printf("  %s %s\n", styleLabel.Render("Tail:"), styleCommand.Render("tail -f "+tmux.ShellQuote(result.LogPath)))
	fmt.Printf("  %s %s\n", styleLabel.Render("Stop:"), styleCommand.Render(fmt.Sprintf("kill %d", result.PID)))
}

func validateChoice(flag, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q: must be one of %v", flag, value, allowed)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
