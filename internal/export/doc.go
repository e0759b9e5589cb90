// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export provides conversation export functionality.
// Conversations can be written as plain text, Markdown, or JSON.
package export
