// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"reflect"
	"testing"
)

func TestParseArgsDefaultsToChat(t *testing.T) {
	cmd, args := parseArgs(nil)
	if cmd != CmdChat {
		t.Errorf("cmd = %v, want CmdChat", cmd)
	}
	if args.Quiet || args.Model != "" {
		t.Errorf("unexpected args: %+v", args)
	}
}

func TestParseArgsSubcommands(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{[]string{"chat"}, CmdChat},
		{[]string{"themes"}, CmdThemes},
		{[]string{"theme"}, CmdThemes},
		{[]string{"modes"}, CmdModes},
		{[]string{"version"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"-h"}, CmdHelp},
		{[]string{"something", "else"}, CmdChat},
	}

	for _, tc := range tests {
		cmd, _ := parseArgs(tc.argv)
		if cmd != tc.want {
			t.Errorf("parseArgs(%v) = %v, want %v", tc.argv, cmd, tc.want)
		}
	}
}

func TestParseArgsFlags(t *testing.T) {
	cmd, args := parseArgs([]string{"-q", "--model", "mistral", "--theme=ocean", "--no-stream", "chat"})
	if cmd != CmdChat {
		t.Errorf("cmd = %v", cmd)
	}
	if !args.Quiet || args.Model != "mistral" || args.Theme != "ocean" || !args.NoStream {
		t.Errorf("flags not parsed: %+v", args)
	}
}

func TestParseArgsFlagEqualsForms(t *testing.T) {
	_, args := parseArgs([]string{"--model=llama3.2", "--mode=poet"})
	if args.Model != "llama3.2" {
		t.Errorf("Model = %q", args.Model)
	}
	if args.Mode != "poet" {
		t.Errorf("Mode = %q", args.Mode)
	}
}

func TestParseArgsUnknownWordBecomesChatInput(t *testing.T) {
	cmd, args := parseArgs([]string{"hello", "world"})
	if cmd != CmdChat {
		t.Errorf("cmd = %v", cmd)
	}
	if !reflect.DeepEqual(args.Raw, []string{"hello", "world"}) {
		t.Errorf("Raw = %v", args.Raw)
	}
}
