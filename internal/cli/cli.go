// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdChat Command = iota // default
	CmdThemes
	CmdModes
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet    bool // skip the banner
	NoColor  bool
	Focus    bool // start in focus mode
	Model    string
	Theme    string
	Mode     string
	URL      string // Ollama server URL override
	Stream   bool   // force streaming output
	NoStream bool   // force typed output

	// Raw args remaining after flag parsing
	Raw []string
}

const usageText = `nova - your AI companion in the terminal

Nova is a decorative chat client for local Ollama models. It paints the
whole terminal in your chosen theme, renders replies as markdown, and
types them out character by character.

Usage:
  nova                    Start an interactive chat
  nova chat               Same as above
  nova themes             List available color themes
  nova modes              List available chat modes
  nova version            Show version information
  nova help               Show this help

Flags:
  -m, --model NAME    Use a specific Ollama model
  -t, --theme NAME    Start with a specific theme
  --mode NAME         Start with a specific chat mode
  --url URL           Ollama server URL
  --focus             Start in focus mode (no animations)
  --stream            Print tokens as they arrive
  --no-stream         Always use the typed animation
  -q, --quiet         Skip the startup banner
  --no-color          Disable themed output

Chat commands (inside the REPL):
  /help               Show all slash commands
  /theme [name]       Switch theme (or list them)
  /mode [name]        Switch chat mode
  /export [format]    Save the transcript
  /quit               Leave the chat

Environment:
  NOVA_HOME           Config directory (default: ~/.nova)
  NOVA_THEME          Startup theme
  NOVA_MODEL          Ollama model
  NOVA_OLLAMA_URL     Ollama server URL
  NO_COLOR            Disable themed output

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("nova version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
	fmt.Printf("  Go version: %s\n", runtime.Version())
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

// parseArgs is the testable core of Parse.
func parseArgs(argv []string) (Command, Args) {
	remaining, args := parseFlags(argv)

	if len(remaining) == 0 {
		return CmdChat, args
	}

	cmd := strings.ToLower(remaining[0])
	args.Raw = remaining[1:]

	switch cmd {
	case "chat":
		return CmdChat, args
	case "themes", "theme":
		return CmdThemes, args
	case "modes", "mode":
		return CmdModes, args
	case "version", "-v", "--version":
		return CmdVersion, args
	case "help", "-h", "--help":
		return CmdHelp, args
	default:
		// Unknown word: treat it as the start of a chat, not an error.
		args.Raw = remaining
		return CmdChat, args
	}
}

// parseFlags extracts flags from argv and returns the remaining args.
func parseFlags(argv []string) ([]string, Args) {
	var remaining []string
	var args Args

	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		switch arg {
		case "-q", "--quiet":
			args.Quiet = true
		case "--no-color":
			args.NoColor = true
		case "--focus":
			args.Focus = true
		case "--stream":
			args.Stream = true
		case "--no-stream":
			args.NoStream = true
		case "-m", "--model":
			if i+1 < len(argv) {
				i++
				args.Model = argv[i]
			}
		case "-t", "--theme":
			if i+1 < len(argv) {
				i++
				args.Theme = argv[i]
			}
		case "--mode":
			if i+1 < len(argv) {
				i++
				args.Mode = argv[i]
			}
		case "--url":
			if i+1 < len(argv) {
				i++
				args.URL = argv[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--model="):
				args.Model = strings.TrimPrefix(arg, "--model=")
			case strings.HasPrefix(arg, "--theme="):
				args.Theme = strings.TrimPrefix(arg, "--theme=")
			case strings.HasPrefix(arg, "--mode="):
				args.Mode = strings.TrimPrefix(arg, "--mode=")
			case strings.HasPrefix(arg, "--url="):
				args.URL = strings.TrimPrefix(arg, "--url=")
			default:
				remaining = append(remaining, arg)
			}
		}
	}

	return remaining, args
}
