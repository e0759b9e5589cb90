// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"math/rand"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette is a named color scheme. Background is the triple handed to
// the Engine; the remaining roles drive the lipgloss layer above it.
type Palette struct {
	Name  string // lookup key, lowercase
	Label string // human-readable name
	Emoji string

	Background RGB

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	User      lipgloss.Color
	Assistant lipgloss.Color
	System    lipgloss.Color
	Error     lipgloss.Color
	Border    lipgloss.Color
	Highlight lipgloss.Color
	Muted     lipgloss.Color
}

var palettes = map[string]Palette{
	"neon": {
		Name:       "neon",
		Label:      "Neon Cyberpunk",
		Emoji:      "🌆",
		Background: RGB{R: 20, G: 10, B: 38},
		Primary:    lipgloss.Color("#FF5FFF"),
		Secondary:  lipgloss.Color("#5FFFFF"),
		User:       lipgloss.Color("#5FFF87"),
		Assistant:  lipgloss.Color("#FF5FFF"),
		System:     lipgloss.Color("#5FFFFF"),
		Error:      lipgloss.Color("#FF5F5F"),
		Border:     lipgloss.Color("#AF00AF"),
		Highlight:  lipgloss.Color("#FFFF5F"),
		Muted:      lipgloss.Color("#8A8A8A"),
	},
	"hacker": {
		Name:       "hacker",
		Label:      "Hacker Matrix",
		Emoji:      "🖥️",
		Background: RGB{R: 0, G: 14, B: 2},
		Primary:    lipgloss.Color("#00AF00"),
		Secondary:  lipgloss.Color("#5FFF5F"),
		User:       lipgloss.Color("#5FFF5F"),
		Assistant:  lipgloss.Color("#00AF00"),
		System:     lipgloss.Color("#008700"),
		Error:      lipgloss.Color("#D70000"),
		Border:     lipgloss.Color("#00AF00"),
		Highlight:  lipgloss.Color("#FFFFFF"),
		Muted:      lipgloss.Color("#008700"),
	},
	"zen": {
		Name:       "zen",
		Label:      "Zen Garden",
		Emoji:      "🧘",
		Background: RGB{R: 14, G: 22, B: 26},
		Primary:    lipgloss.Color("#00D7D7"),
		Secondary:  lipgloss.Color("#E4E4E4"),
		User:       lipgloss.Color("#5FFFFF"),
		Assistant:  lipgloss.Color("#E4E4E4"),
		System:     lipgloss.Color("#00AFAF"),
		Error:      lipgloss.Color("#FFD700"),
		Border:     lipgloss.Color("#00AFAF"),
		Highlight:  lipgloss.Color("#FFFFFF"),
		Muted:      lipgloss.Color("#8A8A8A"),
	},
	"retro": {
		Name:       "retro",
		Label:      "Retro Amber",
		Emoji:      "📺",
		Background: RGB{R: 26, G: 18, B: 0},
		Primary:    lipgloss.Color("#D7AF00"),
		Secondary:  lipgloss.Color("#FFFF5F"),
		User:       lipgloss.Color("#FFFF5F"),
		Assistant:  lipgloss.Color("#D7AF00"),
		System:     lipgloss.Color("#D78700"),
		Error:      lipgloss.Color("#D70000"),
		Border:     lipgloss.Color("#D7AF00"),
		Highlight:  lipgloss.Color("#FFFFFF"),
		Muted:      lipgloss.Color("#87875F"),
	},
	"ocean": {
		Name:       "ocean",
		Label:      "Deep Ocean",
		Emoji:      "🌊",
		Background: RGB{R: 2, G: 16, B: 36},
		Primary:    lipgloss.Color("#0087D7"),
		Secondary:  lipgloss.Color("#5FAFFF"),
		User:       lipgloss.Color("#5FFFFF"),
		Assistant:  lipgloss.Color("#5FAFFF"),
		System:     lipgloss.Color("#0057AF"),
		Error:      lipgloss.Color("#FF5F5F"),
		Border:     lipgloss.Color("#0087D7"),
		Highlight:  lipgloss.Color("#FFFFFF"),
		Muted:      lipgloss.Color("#00AFAF"),
	},
	"sunset": {
		Name:       "sunset",
		Label:      "Warm Sunset",
		Emoji:      "🌅",
		Background: RGB{R: 36, G: 10, B: 18},
		Primary:    lipgloss.Color("#FF5F5F"),
		Secondary:  lipgloss.Color("#FFFF5F"),
		User:       lipgloss.Color("#FFFF5F"),
		Assistant:  lipgloss.Color("#FF5F5F"),
		System:     lipgloss.Color("#D7D700"),
		Error:      lipgloss.Color("#D70000"),
		Border:     lipgloss.Color("#FF5F5F"),
		Highlight:  lipgloss.Color("#FFFFFF"),
		Muted:      lipgloss.Color("#87875F"),
	},
}

// DefaultPalette is applied when no theme is configured.
const DefaultPalette = "neon"

// Lookup returns the palette registered under name (case-sensitive,
// names are lowercase).
func Lookup(name string) (Palette, bool) {
	p, ok := palettes[name]
	return p, ok
}

// Default returns the default palette.
func Default() Palette {
	return palettes[DefaultPalette]
}

// Names returns all palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Random returns a randomly chosen palette.
func Random() Palette {
	names := Names()
	return palettes[names[rand.Intn(len(names))]]
}

// FlashAlert is the default color for transient background flashes.
var FlashAlert = RGB{R: 255, G: 191, B: 0}
