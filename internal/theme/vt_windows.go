// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build windows
// +build windows

package theme

import (
	"os"

	"golang.org/x/sys/windows"
)

// enableVirtualTerminal switches the console attached to f into
// virtual-terminal mode. Windows consoles do not process ANSI escape
// sequences until ENABLE_VIRTUAL_TERMINAL_PROCESSING is set on the
// output handle.
func enableVirtualTerminal(f *os.File) error {
	handle := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return err
	}
	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
