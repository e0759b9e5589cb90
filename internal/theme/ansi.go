// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import "strconv"

// VT100/xterm control sequences used by the painter. These are emitted
// byte-for-byte; any terminal with xterm extensions understands them.
const (
	escClearScreen = "\x1b[2J" // clear entire screen
	escCursorHome  = "\x1b[H"  // move cursor to (1,1)
	escResetAttrs  = "\x1b[0m" // reset all attributes
)

// RGB is a 24-bit color triple.
//
// Components are ints rather than bytes on purpose: the painter performs
// no clamping, so a caller that deliberately passes boundary values for an
// effect gets exactly what it asked for on the wire.
type RGB struct {
	R, G, B int
}

// Sequence returns the truecolor background-set escape sequence for c:
// ESC[48;2;R;G;Bm. Printed characters inherit this background until it is
// changed or reset.
func (c RGB) Sequence() string {
	// strconv over fmt: this runs once per painted row.
	return "\x1b[48;2;" + strconv.Itoa(c.R) + ";" + strconv.Itoa(c.G) + ";" + strconv.Itoa(c.B) + "m"
}
