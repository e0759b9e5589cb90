// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the nova command line: argument parsing, the
// interactive chat REPL, and the small non-interactive subcommands.
package cli
