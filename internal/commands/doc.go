// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command system for the chat loop:
// a registry of commands with argument definitions, a quote-aware parser,
// validation, and prefix completion for the line editor.
package commands
