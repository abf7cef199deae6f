package tmux

import (
	"reflect"
	"testing"
)

func TestArgBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{
			name: "kill session",
			got:  killSessionArgs("codex"),
			want: []string{"kill-session", "-t", "codex"},
		},
		{
			name: "new session",
			got:  newSessionArgs("codex", "codex"),
			want: []string{"new", "-d", "-s", "codex", "-n", "codex"},
		},
		{
			name: "send line literal",
			got:  sendLineArgs("codex:0.0", "-starts with dash"),
			want: []string{"send-keys", "-t", "codex:0.0", "-l", "--", "-starts with dash"},
		},
		{
			name: "send enter",
			got:  sendEnterArgs("codex:0.0"),
			want: []string{"send-keys", "-t", "codex:0.0", "Enter"},
		},
		{
			name: "capture pane",
			got:  capturePaneArgs("codex:0.0", 200),
			want: []string{"capture-pane", "-p", "-J", "-t", "codex:0.0", "-S", "-200"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "'plain'"},
		{in: "with space", want: "'with space'"},
		{in: "it's", want: "'it'\\''s'"},
		{in: "", want: "''"},
	}

	for _, tt := range tests {
		if got := ShellQuote(tt.in); got != tt.want {
			t.Errorf("ShellQuote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLaunchLine(t *testing.T) {
	got := LaunchLine("/work/my project", []string{"codex", "-m", "o4-mini"})
	want := "cd '/work/my project' && 'codex' '-m' 'o4-mini'"
	if got != want {
		t.Errorf("LaunchLine() = %s, want %s", got, want)
	}
}

func TestTarget(t *testing.T) {
	if got := Target("codex"); got != "codex:0.0" {
		t.Errorf("Target() = %s, want codex:0.0", got)
	}
}
