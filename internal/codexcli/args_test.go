package codexcli

import (
	"reflect"
	"testing"
)

func TestExecArgvPromptLast(t *testing.T) {
	opts := Options{
		Bin:    "/usr/local/bin/codex",
		Model:  "o4-mini",
		Prompt: "ping",
	}

	argv := opts.ExecArgv()
	want := []string{"/usr/local/bin/codex", "exec", "-m", "o4-mini", "ping"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("ExecArgv() = %v, want %v", argv, want)
	}
}

func TestExecArgvPassthroughOrder(t *testing.T) {
	tests := []struct {
		name        string
		passthrough []string
	}{
		{
			name:        "separate value style",
			passthrough: []string{"--reasoning", "high", "--foo", "bar"},
		},
		{
			name:        "equals style",
			passthrough: []string{"--reasoning=high", "--foo=bar"},
		},
		{
			name:        "mixed styles",
			passthrough: []string{"--foo=bar", "--baz", "qux", "-x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{
				Bin:         "codex",
				Passthrough: tt.passthrough,
				Prompt:      "do it",
			}
			argv := opts.ExecArgv()

			// Passthrough tokens must appear verbatim, in order, right
			// before the trailing prompt.
			gotTail := argv[len(argv)-len(tt.passthrough)-1 : len(argv)-1]
			if !reflect.DeepEqual(gotTail, tt.passthrough) {
				t.Errorf("passthrough tail = %v, want %v", gotTail, tt.passthrough)
			}
			if argv[len(argv)-1] != "do it" {
				t.Errorf("prompt not last: %v", argv)
			}
		})
	}
}

func TestExecArgvSkipGitCheckOnce(t *testing.T) {
	opts := Options{
		Bin:              "codex",
		SkipGitRepoCheck: true,
		Prompt:           "p",
	}

	argv := opts.ExecArgv()
	count := 0
	for _, a := range argv {
		if a == "--skip-git-repo-check" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("--skip-git-repo-check appears %d times, want 1: %v", count, argv)
	}
}

func TestExecArgvEmptyPromptOmitted(t *testing.T) {
	opts := Options{Bin: "codex"}
	argv := opts.ExecArgv()
	want := []string{"codex", "exec"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("ExecArgv() = %v, want %v", argv, want)
	}
}

func TestExecArgvRepeatableFlags(t *testing.T) {
	opts := Options{
		Bin:     "codex",
		Images:  []string{"a.png", "b.png"},
		AddDirs: []string{"/tmp/x"},
		Prompt:  "p",
	}

	argv := opts.ExecArgv()
	want := []string{"codex", "exec", "-i", "a.png", "-i", "b.png", "--add-dir", "/tmp/x", "p"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("ExecArgv() = %v, want %v", argv, want)
	}
}

func TestInteractiveArgvNoPromptNoExec(t *testing.T) {
	opts := Options{
		Bin:         "codex",
		Model:       "o4-mini",
		FullAuto:    true,
		Passthrough: []string{"--foo=bar"},
		Prompt:      "typed separately",
	}

	argv := opts.InteractiveArgv()
	want := []string{"codex", "-m", "o4-mini", "--full-auto", "--foo=bar"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("InteractiveArgv() = %v, want %v", argv, want)
	}
}

func TestHasFlag(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		flag     string
		expected bool
	}{
		{
			name:     "bare flag",
			tokens:   []string{"--skip-git-repo-check"},
			flag:     "--skip-git-repo-check",
			expected: true,
		},
		{
			name:     "equals form",
			tokens:   []string{"--skip-git-repo-check=true"},
			flag:     "--skip-git-repo-check",
			expected: true,
		},
		{
			name:     "prefix is not a match",
			tokens:   []string{"--skip-git-repo-checks"},
			flag:     "--skip-git-repo-check",
			expected: false,
		},
		{
			name:     "absent",
			tokens:   []string{"--foo", "bar"},
			flag:     "--skip-git-repo-check",
			expected: false,
		},
		{
			name:     "empty tokens",
			tokens:   nil,
			flag:     "--skip-git-repo-check",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasFlag(tt.tokens, tt.flag); got != tt.expected {
				t.Errorf("HasFlag(%v, %q) = %v, want %v", tt.tokens, tt.flag, got, tt.expected)
			}
		})
	}
}
