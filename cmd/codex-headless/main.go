// Package main is the entry point for the codex-headless CLI.
package main

import (
	"os"

	"github.com/joneshong-skills/codex-headless/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
