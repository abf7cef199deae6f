package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joneshong-skills/codex-headless/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage global settings",
	Long:  `Manage the global settings stored in ~/.codex-headless/settings.yaml.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a settings value",
	Long: `Set a settings value. Known keys:

  codex.path              path to the codex binary
  codex.model             default model
  codex.sandbox           default sandbox policy
  codex.profile           default profile
  defaults.log_dir        background log directory
  defaults.notify         notify on completion (true/false)
  defaults.clipboard      copy output to clipboard (true/false)
  defaults.tmux_session   default tmux session name
  defaults.send_delay_ms  delay between prompt lines in interactive mode`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	path, _ := config.GlobalSettingsFile()
	fmt.Println(styleLabel.Render("# " + path))
	fmt.Print(string(data))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	switch key {
	case "codex.path":
		settings.Codex.Path = value
	case "codex.model":
		settings.Codex.Model = value
	case "codex.sandbox":
		settings.Codex.Sandbox = value
	case "codex.profile":
		settings.Codex.Profile = value
	case "defaults.log_dir":
		settings.Defaults.LogDir = value
	case "defaults.notify", "defaults.clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q", key, value)
		}
		if key == "defaults.notify" {
			settings.Defaults.Notify = b
		} else {
			settings.Defaults.Clipboard = b
		}
	case "defaults.tmux_session":
		settings.Defaults.TmuxSession = value
	case "defaults.send_delay_ms":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid delay for %s: %q", key, value)
		}
		settings.Defaults.SendDelayMS = n
	default:
		return fmt.Errorf("unknown settings key: %s", key)
	}

	if err := config.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Set %s = %s", key, value)))
	return nil
}
