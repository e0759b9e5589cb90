// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows
// +build !windows

package theme

import "os"

// enableVirtualTerminal is a no-op outside Windows; Unix terminals
// interpret ANSI sequences natively.
func enableVirtualTerminal(_ *os.File) error {
	return nil
}
