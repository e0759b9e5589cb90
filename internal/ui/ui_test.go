// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Areeb-coder/cli-ai-chatbot/internal/model"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/theme"
)

// newTestPrinter writes into a buffer through an engine detected as
// non-interactive, so no background escapes mix into assertions.
func newTestPrinter() (*Printer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	engine := theme.New(buf, theme.Capability{})
	p := NewPrinter(buf, engine, theme.Default(), WithTypeDelay(time.Nanosecond))
	return p, buf
}

func TestTypewriterOutputsFullText(t *testing.T) {
	buf := &bytes.Buffer{}
	tw := NewTypewriter(buf, time.Millisecond)
	tw.sleep = func(time.Duration) {}

	input := "Hello, world! How are you?\nFine."
	tw.Type(input)

	if buf.String() != input {
		t.Errorf("Type() wrote %q, want %q", buf.String(), input)
	}
}

func TestTypewriterPunctuationPacing(t *testing.T) {
	tw := NewTypewriter(&bytes.Buffer{}, 10*time.Millisecond)

	tests := []struct {
		r    rune
		want time.Duration
	}{
		{'a', 10 * time.Millisecond},
		{'.', 80 * time.Millisecond},
		{'!', 80 * time.Millisecond},
		{',', 40 * time.Millisecond},
		{'\n', 30 * time.Millisecond},
		{' ', 5 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := tw.delayFor(tc.r); got != tc.want {
			t.Errorf("delayFor(%q) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestSoundSimulator(t *testing.T) {
	s := NewSoundSimulator()

	if got := s.Keystroke(); got != "" {
		t.Errorf("disabled Keystroke() = %q, want empty", got)
	}

	s.SetEnabled(true)
	glyph := s.Keystroke()
	if !strings.HasPrefix(glyph, "[") || !strings.HasSuffix(glyph, "]") {
		t.Errorf("mechanical Keystroke() = %q, want bracketed glyph", glyph)
	}
	if got := s.Enter(); got != "[ding!]" {
		t.Errorf("mechanical Enter() = %q, want [ding!]", got)
	}

	if !s.SetStyle("none") {
		t.Fatal("SetStyle(none) rejected")
	}
	if got := s.Keystroke(); got != "" {
		t.Errorf("none-style Keystroke() = %q, want empty", got)
	}

	if s.SetStyle("loud") {
		t.Error("SetStyle accepted unknown style")
	}
}

func TestTypewriterSoundsErased(t *testing.T) {
	buf := &bytes.Buffer{}
	tw := NewTypewriter(buf, time.Millisecond)
	tw.sleep = func(time.Duration) {}

	sounds := NewSoundSimulator()
	sounds.SetEnabled(true)
	tw.SetSounds(sounds)

	tw.Type("hi")

	out := buf.String()
	if !strings.Contains(out, "[") || !strings.Contains(out, "\b") {
		t.Errorf("output missing sound glyph or erasure: %q", out)
	}
	// Stripping the flashed glyphs must leave exactly the typed text.
	cleaned := simulateBackspaces(out)
	if cleaned != "hi" {
		t.Errorf("after erasure output = %q, want hi", cleaned)
	}
}

// simulateBackspaces applies \b as a terminal would, dropping the
// preceding cell.
func simulateBackspaces(s string) string {
	var cells []rune
	for _, r := range s {
		if r == '\b' {
			if len(cells) > 0 {
				cells = cells[:len(cells)-1]
			}
			continue
		}
		cells = append(cells, r)
	}
	return strings.TrimRight(string(cells), " ")
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"short line untouched", "hello world", 40, "hello world"},
		{"wraps on spaces", "one two three four", 9, "one two\nthree\nfour"},
		{"zero width untouched", "a b c", 0, "a b c"},
		{"preserves blank lines", "a\n\nb", 10, "a\n\nb"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WrapText(tc.in, tc.width); got != tc.want {
				t.Errorf("WrapText(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
			}
		})
	}
}

func TestWrapTextWideRunes(t *testing.T) {
	// Each CJK char is two cells wide, so three of them exceed width 5.
	got := WrapText("你好 世界", 5)
	if got != "你好\n世界" {
		t.Errorf("WrapText() = %q", got)
	}
}

func TestPrinterStatusLines(t *testing.T) {
	p, buf := newTestPrinter()

	p.Successf("theme changed to %s", "ocean")
	p.Errorf("unknown theme")
	p.Systemf("usage: /focus on|off")

	out := buf.String()
	for _, want := range []string{"✓ theme changed to ocean", "✗ unknown theme", "usage: /focus on|off"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPrinterPrompt(t *testing.T) {
	p, _ := newTestPrinter()

	if got := p.Prompt("Sam"); !strings.Contains(got, "Sam ❯") {
		t.Errorf("Prompt() = %q", got)
	}
	if got := p.Prompt(""); !strings.Contains(got, "You ❯") {
		t.Errorf("Prompt(\"\") = %q", got)
	}
}

func TestPrinterAssistantFallsBackToPlainText(t *testing.T) {
	p, buf := newTestPrinter()
	p.renderer = nil // force the fallback path

	p.Assistant("just plain words")
	if !strings.Contains(buf.String(), "just plain words") {
		t.Errorf("fallback output missing content: %q", buf.String())
	}
}

func TestPrinterAssistantTypedInFocusMode(t *testing.T) {
	p, buf := newTestPrinter()
	p.renderer = nil
	p.SetFocusMode(true)

	p.AssistantTyped("quick answer")
	if !strings.Contains(buf.String(), "quick answer") {
		t.Errorf("focus mode output missing content: %q", buf.String())
	}
}

// The config watcher swaps palette and focus mode from its own
// goroutine while the chat loop prints. Run with -race.
func TestPrinterConcurrentPaletteSwap(t *testing.T) {
	p, _ := newTestPrinter()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			p.SetPalette(theme.Random())
			p.SetFocusMode(i%2 == 0)
			p.SetSoundEnabled(i%2 == 1)
		}
	}()
	for i := 0; i < 100; i++ {
		p.Systemf("reloading")
		_ = p.FocusMode()
		_ = p.SoundEnabled()
	}
	wg.Wait()
}

func TestWelcomeAndLists(t *testing.T) {
	p, buf := newTestPrinter()

	p.Welcome("1.0.0", "llama3.2")
	p.ThemeList("neon")
	p.ModeList("chat")

	out := buf.String()
	for _, want := range []string{"v1.0.0", "llama3.2", "/help", "Neon Cyberpunk", "poet"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSessionStatsAndExitSummary(t *testing.T) {
	p, buf := newTestPrinter()

	stats := model.NewSessionStats()
	stats.RecordUserMessage()
	stats.RecordAssistantMessage(30)
	stats.RecordTheme("zen")

	p.SessionStats(stats, nil)
	p.ExitSummary(stats, "Sam")

	out := buf.String()
	for _, want := range []string{"Session stats", "zen", "Thanks for chatting, Sam!"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
