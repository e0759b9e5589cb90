// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Areeb-coder/cli-ai-chatbot/internal/theme"
)

// =============================================================================
// STYLES
// =============================================================================

// Styles holds the lipgloss styles derived from the active palette.
// Rebuilt whenever the theme changes.
type Styles struct {
	Palette theme.Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style

	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	UserText       lipgloss.Style

	System  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style

	Highlight lipgloss.Style
	Border    lipgloss.Style
	Prompt    lipgloss.Style
}

// NewStyles builds the style set for a palette.
func NewStyles(p theme.Palette) *Styles {
	return &Styles{
		Palette: p,

		Title:    lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(p.Secondary),

		UserLabel:      lipgloss.NewStyle().Foreground(p.User).Bold(true),
		AssistantLabel: lipgloss.NewStyle().Foreground(p.Assistant).Bold(true),
		UserText:       lipgloss.NewStyle().Foreground(p.User),

		System:  lipgloss.NewStyle().Foreground(p.System),
		Success: lipgloss.NewStyle().Foreground(p.Secondary).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(p.Secondary),
		Muted:   lipgloss.NewStyle().Foreground(p.Muted),

		Highlight: lipgloss.NewStyle().Foreground(p.Highlight).Bold(true),
		Border:    lipgloss.NewStyle().Foreground(p.Border),
		Prompt:    lipgloss.NewStyle().Foreground(p.User).Bold(true),
	}
}
