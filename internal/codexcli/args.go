// Package codexcli builds argument vectors for the codex CLI and resolves
// the codex binary.
package codexcli

import "strings"

// Options describes one codex invocation. Typed fields cover the flags the
// wrapper knows about; Passthrough carries everything else as opaque tokens,
// forwarded verbatim and in order.
type Options struct {
	Bin string // resolved codex binary path

	Model    string   // -m
	Sandbox  string   // --sandbox
	FullAuto bool     // --full-auto
	Profile  string   // -p
	WorkDir  string   // --cd
	Images   []string // -i, repeatable

	JSON             bool     // --json
	OutputFile       string   // -o
	OutputSchema     string   // --output-schema
	Ephemeral        bool     // --ephemeral
	SkipGitRepoCheck bool     // --skip-git-repo-check
	AddDirs          []string // --add-dir, repeatable
	Yolo             bool     // --yolo
	OSS              bool     // --oss
	LocalProvider    string   // --local-provider
	Color            string   // --color

	Passthrough []string // opaque tokens, never parsed
	Prompt      string   // positional, always last
}

// ExecArgv builds the full argument vector for a headless `codex exec` run.
// The prompt goes last; passthrough tokens keep their caller-supplied order.
func (o Options) ExecArgv() []string {
	argv := []string{o.Bin, "exec"}

	if o.Model != "" {
		argv = append(argv, "-m", o.Model)
	}
	if o.Sandbox != "" {
		argv = append(argv, "--sandbox", o.Sandbox)
	}
	if o.FullAuto {
		argv = append(argv, "--full-auto")
	}
	if o.Profile != "" {
		argv = append(argv, "-p", o.Profile)
	}
	if o.WorkDir != "" {
		argv = append(argv, "--cd", o.WorkDir)
	}
	for _, img := range o.Images {
		argv = append(argv, "-i", img)
	}
	if o.JSON {
		argv = append(argv, "--json")
	}
	if o.OutputFile != "" {
		argv = append(argv, "-o", o.OutputFile)
	}
	if o.OutputSchema != "" {
		argv = append(argv, "--output-schema", o.OutputSchema)
	}
	if o.Ephemeral {
		argv = append(argv, "--ephemeral")
	}
	if o.SkipGitRepoCheck {
		argv = append(argv, "--skip-git-repo-check")
	}
	for _, d := range o.AddDirs {
		argv = append(argv, "--add-dir", d)
	}
	if o.Yolo {
		argv = append(argv, "--yolo")
	}
	if o.OSS {
		argv = append(argv, "--oss")
	}
	if o.LocalProvider != "" {
		argv = append(argv, "--local-provider", o.LocalProvider)
	}
	if o.Color != "" {
		argv = append(argv, "--color", o.Color)
	}

	argv = append(argv, o.Passthrough...)

	if o.Prompt != "" {
		argv = append(argv, o.Prompt)
	}

	return argv
}

// InteractiveArgv builds the argument vector for launching the codex TUI
// inside a tmux session. The prompt is not included: it is typed into the
// session afterwards.
func (o Options) InteractiveArgv() []string {
	argv := []string{o.Bin}

	if o.Model != "" {
		argv = append(argv, "-m", o.Model)
	}
	if o.Sandbox != "" {
		argv = append(argv, "--sandbox", o.Sandbox)
	}
	if o.FullAuto {
		argv = append(argv, "--full-auto")
	}
	if o.Profile != "" {
		argv = append(argv, "-p", o.Profile)
	}

	argv = append(argv, o.Passthrough...)

	return argv
}

// HasFlag reports whether tokens contains the given long flag, in either
// the "--flag" or "--flag=value" form.
func HasFlag(tokens []string, name string) bool {
	for _, tok := range tokens {
		if tok == name || strings.HasPrefix(tok, name+"=") {
			return true
		}
	}
	return false
}
