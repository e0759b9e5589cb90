// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"math/rand"
	"sort"
	"sync"
)

// =============================================================================
// SOUND SIMULATION
// =============================================================================

// Typing "sounds" are text glyphs, not audio: the typewriter shows one
// briefly after each keystroke and erases it again.
var soundStyles = map[string][]string{
	"mechanical": {"[tick]", "[tack]", "[click]", "[clack]"},
	"soft":       {"·", "•", "◦"},
	"typewriter": {"⌨", "✎", "✏"},
	"none":       {},
}

// SoundSimulator produces keystroke glyphs for the typing animation.
// Safe for concurrent use; the /sound toggle and the config watcher can
// both flip it while a reply is being typed.
type SoundSimulator struct {
	mu      sync.Mutex
	enabled bool
	style   string
}

// NewSoundSimulator creates a disabled simulator in the mechanical style.
func NewSoundSimulator() *SoundSimulator {
	return &SoundSimulator{style: "mechanical"}
}

// SetEnabled turns the simulation on or off.
func (s *SoundSimulator) SetEnabled(on bool) {
	s.mu.Lock()
	s.enabled = on
	s.mu.Unlock()
}

// Enabled reports whether the simulation is on.
func (s *SoundSimulator) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// SetStyle selects a glyph style. Returns false for unknown styles,
// leaving the current style in place.
func (s *SoundSimulator) SetStyle(name string) bool {
	if _, ok := soundStyles[name]; !ok {
		return false
	}
	s.mu.Lock()
	s.style = name
	s.mu.Unlock()
	return true
}

// Keystroke returns a random keystroke glyph, or "" when disabled or the
// style has none.
func (s *SoundSimulator) Keystroke() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return ""
	}
	glyphs := soundStyles[s.style]
	if len(glyphs) == 0 {
		return ""
	}
	return glyphs[rand.Intn(len(glyphs))]
}

// Enter returns the end-of-line glyph, or "" when disabled.
func (s *SoundSimulator) Enter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return ""
	}
	if s.style == "mechanical" {
		return "[ding!]"
	}
	return "⏎"
}

// SoundStyleNames returns the available glyph styles, sorted.
func SoundStyleNames() []string {
	names := make([]string, 0, len(soundStyles))
	for name := range soundStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
