// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package theme implements full-viewport terminal background painting.
//
// Terminals have no "set background for the whole screen" primitive: the
// ANSI background attribute only colors cells that are actually printed.
// To keep the entire visible grid tinted, the Engine overwrites every cell
// with a background-colored space, re-asserts the background attribute for
// subsequent output, and repairs the screen after any operation that may
// have reset terminal state.
//
// # Key Types
//
//   - RGB: a 24-bit color triple
//   - Capability: result of probing the output stream (interactive check
//     plus platform virtual-terminal enablement)
//   - Engine: the background state plus all painting operations
//   - Palette: a named color scheme whose Background feeds the Engine
//
// # Painting Protocol
//
// A full repaint emits, in order: the background-set sequence, a screen
// clear, cursor home, one background-prefixed row of spaces per terminal
// row (rows separated by newlines, none trailing), cursor home again, and
// the background-set sequence once more. The order is a protocol, not an
// accident: some terminals fill cleared cells with the pending background
// attribute, so the color must be active before the clear, and the final
// re-assert lets callers print without knowing about the engine at all.
//
// All operations are total: painting is decoration, and decoration is
// never allowed to crash the host application. Failures degrade (fallback
// dimensions, skipped enablement) instead of propagating.
package theme
