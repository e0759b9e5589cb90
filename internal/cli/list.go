// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"

	"github.com/Areeb-coder/cli-ai-chatbot/internal/config"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/theme"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/ui"
)

// listPrinter builds a printer for the non-interactive listing
// subcommands. No background painting: these run and exit, so tinting
// the caller's terminal would just leave a mess behind.
func listPrinter() *ui.Printer {
	engine := theme.New(os.Stdout, theme.Capability{})
	pal, ok := theme.Lookup(config.Global().UI.Theme)
	if !ok {
		pal = theme.Default()
	}
	return ui.NewPrinter(os.Stdout, engine, pal)
}

// RunThemes handles the "themes" subcommand.
func RunThemes(args Args) error {
	listPrinter().ThemeList(config.Global().UI.Theme)
	return nil
}

// RunModes handles the "modes" subcommand.
func RunModes(args Args) error {
	listPrinter().ModeList(config.Global().Chat.Mode)
	return nil
}
