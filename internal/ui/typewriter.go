// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// =============================================================================
// TYPEWRITER
// =============================================================================

// Typewriter prints text rune by rune with human-ish pacing: longer
// pauses after sentence punctuation, shorter after clause punctuation.
type Typewriter struct {
	out    io.Writer
	base   time.Duration
	sounds *SoundSimulator

	// sleep is swappable so tests run instantly.
	sleep func(time.Duration)
}

// DefaultTypeDelay is the per-rune delay for the typewriter effect.
const DefaultTypeDelay = 12 * time.Millisecond

// NewTypewriter creates a typewriter writing to out. A zero base delay
// falls back to DefaultTypeDelay.
func NewTypewriter(out io.Writer, base time.Duration) *Typewriter {
	if base <= 0 {
		base = DefaultTypeDelay
	}
	return &Typewriter{out: out, base: base, sleep: time.Sleep}
}

// SetSounds attaches a sound simulator. Nil disables keystroke glyphs.
func (t *Typewriter) SetSounds(s *SoundSimulator) {
	t.sounds = s
}

// Type prints s with pacing and returns when the full text is out.
func (t *Typewriter) Type(s string) {
	for _, r := range s {
		io.WriteString(t.out, string(r))
		if !unicode.IsSpace(r) {
			t.keystroke()
		}
		t.sleep(t.delayFor(r))
	}
}

// keystroke flashes a sound glyph after the cursor and erases it, so
// the typed text is left exactly as it would be without sounds.
func (t *Typewriter) keystroke() {
	if t.sounds == nil {
		return
	}
	glyph := t.sounds.Keystroke()
	if glyph == "" {
		return
	}
	w := runewidth.StringWidth(glyph)
	io.WriteString(t.out, glyph)
	t.sleep(t.base / 2)
	io.WriteString(t.out, strings.Repeat("\b", w)+strings.Repeat(" ", w)+strings.Repeat("\b", w))
}

// delayFor returns the pause after printing r.
func (t *Typewriter) delayFor(r rune) time.Duration {
	switch {
	case r == '.' || r == '!' || r == '?':
		return t.base * 8
	case r == ',' || r == ';' || r == ':':
		return t.base * 4
	case r == '\n':
		return t.base * 3
	case unicode.IsSpace(r):
		return t.base / 2
	default:
		return t.base
	}
}

// =============================================================================
// WRAPPING
// =============================================================================

// WrapText wraps s to the given display width, breaking on spaces.
// Uses display cell width rather than rune count so wide characters
// (CJK, emoji) don't overflow the line.
func WrapText(s string, width int) string {
	if width <= 0 {
		return s
	}

	var out strings.Builder
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(wrapLine(line, width))
	}
	return out.String()
}

func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}

	var out strings.Builder
	lineWidth := 0
	for i, word := range words {
		w := runewidth.StringWidth(word)
		if i > 0 {
			if lineWidth+1+w > width {
				out.WriteByte('\n')
				lineWidth = 0
			} else {
				out.WriteByte(' ')
				lineWidth++
			}
		}
		out.WriteString(word)
		lineWidth += w
	}
	return out.String()
}
