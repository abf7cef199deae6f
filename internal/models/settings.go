// Package models defines the data types shared across the CLI and launcher.
package models

// CodexConfig holds configuration for the wrapped codex binary.
type CodexConfig struct {
	Path    string `yaml:"path"`    // empty = lookup in PATH, or absolute path
	Model   string `yaml:"model"`   // default model passed as -m
	Sandbox string `yaml:"sandbox"` // default sandbox policy
	Profile string `yaml:"profile"` // default config.toml profile
}

// DefaultsConfig holds default settings for launches.
type DefaultsConfig struct {
	LogDir      string `yaml:"log_dir"`      // empty = ~/.codex-headless/logs
	Notify      bool   `yaml:"notify"`       // notify on completion by default
	Clipboard   bool   `yaml:"clipboard"`    // copy output to clipboard by default
	TmuxSession string `yaml:"tmux_session"` // default tmux session name
	SendDelayMS int    `yaml:"send_delay_ms"`
}

// Settings represents global settings.
// This corresponds to ~/.codex-headless/settings.yaml.
type Settings struct {
	Version  int            `yaml:"version"`
	Codex    CodexConfig    `yaml:"codex"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// NewSettings returns settings with defaults.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Defaults: DefaultsConfig{
			TmuxSession: "codex",
			SendDelayMS: 800,
		},
	}
}
