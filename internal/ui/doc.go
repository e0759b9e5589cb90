// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui renders all terminal output for the chat: themed lipgloss
// styles, markdown rendering, the typewriter effect, and the welcome and
// exit screens.
//
// Everything that prints goes through the Printer so the background
// attribute can be re-asserted after renders that reset terminal state.
package ui
