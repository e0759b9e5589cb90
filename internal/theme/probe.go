// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"os"

	"golang.org/x/term"
)

// Capability describes what the probed output stream supports.
//
// Interactive gates every painting operation: when false, the engine
// stays silent so piped or redirected output remains plain text.
//
// VTEnabled reports whether escape-sequence processing is confirmed on.
// On Windows the probe has to switch the console into virtual-terminal
// mode itself; when that call fails the probe still proceeds (sequences
// may simply not render) but records the degradation here so the caller
// can log it.
type Capability struct {
	Interactive bool
	VTEnabled   bool
}

// Probe inspects f (normally os.Stdout) once at startup.
//
// There is deliberately no COLORTERM or terminfo negotiation: any modern
// interactive terminal is assumed to handle 24-bit color. The only hard
// gate is the interactive check.
func Probe(f *os.File) Capability {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return Capability{}
	}

	c := Capability{Interactive: true, VTEnabled: true}
	if err := enableVirtualTerminal(f); err != nil {
		// Optimistic degradation, never a failure: the host may still
		// render sequences (Windows Terminal, ConEmu), and a tinted
		// screen is not worth crashing over either way.
		c.VTEnabled = false
	}
	return c
}
