// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/Areeb-coder/cli-ai-chatbot/internal/theme"
)

// =============================================================================
// PRINTER
// =============================================================================

// Printer renders all chat output. It owns the active style set, the
// markdown renderer, and the typewriter, and re-asserts the themed
// background after every render that may reset terminal attributes.
type Printer struct {
	out    io.Writer
	engine *theme.Engine

	renderer  *glamour.TermRenderer
	wrapWidth int
	typeDelay time.Duration

	sounds *SoundSimulator

	// mu guards the fields below; the config watcher goroutine swaps
	// them while the chat loop renders.
	mu        sync.RWMutex
	styles    *Styles
	focusMode bool
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithWrapWidth sets the markdown word-wrap width.
func WithWrapWidth(w int) PrinterOption {
	return func(p *Printer) { p.wrapWidth = w }
}

// WithTypeDelay sets the typewriter base delay.
func WithTypeDelay(d time.Duration) PrinterOption {
	return func(p *Printer) { p.typeDelay = d }
}

// NewPrinter creates a printer for the given output and palette.
// The markdown renderer is built once; a nil renderer (glamour init
// failure) degrades to plain text output.
func NewPrinter(out io.Writer, engine *theme.Engine, pal theme.Palette, opts ...PrinterOption) *Printer {
	p := &Printer{
		out:       out,
		engine:    engine,
		styles:    NewStyles(pal),
		wrapWidth: 100,
		typeDelay: DefaultTypeDelay,
		sounds:    NewSoundSimulator(),
	}
	for _, opt := range opts {
		opt(p)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(p.wrapWidth),
	)
	if err == nil {
		p.renderer = renderer
	}
	return p
}

// Styles returns the active style set. The set itself is immutable;
// SetPalette swaps in a fresh one.
func (p *Printer) Styles() *Styles {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.styles
}

// SetPalette rebuilds the style set for a new palette.
func (p *Printer) SetPalette(pal theme.Palette) {
	p.mu.Lock()
	p.styles = NewStyles(pal)
	p.mu.Unlock()
}

// SetFocusMode toggles focus mode: no typewriter pacing, no flourish.
func (p *Printer) SetFocusMode(on bool) {
	p.mu.Lock()
	p.focusMode = on
	p.mu.Unlock()
}

// FocusMode reports whether focus mode is on.
func (p *Printer) FocusMode() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.focusMode
}

// SetSoundEnabled toggles the typing sound simulation.
func (p *Printer) SetSoundEnabled(on bool) {
	p.sounds.SetEnabled(on)
}

// SoundEnabled reports whether typing sounds are on.
func (p *Printer) SoundEnabled() bool {
	return p.sounds.Enabled()
}

// =============================================================================
// STATUS LINES
// =============================================================================

// Successf prints a success line.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.out, p.Styles().Success.Render("✓ "+fmt.Sprintf(format, args...)))
	p.engine.Reassert()
}

// Errorf prints an error line.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.out, p.Styles().Error.Render("✗ "+fmt.Sprintf(format, args...)))
	p.engine.Reassert()
}

// Systemf prints a system message line.
func (p *Printer) Systemf(format string, args ...any) {
	fmt.Fprintln(p.out, p.Styles().System.Render(fmt.Sprintf(format, args...)))
	p.engine.Reassert()
}

// Mutedf prints a subdued line.
func (p *Printer) Mutedf(format string, args ...any) {
	fmt.Fprintln(p.out, p.Styles().Muted.Render(fmt.Sprintf(format, args...)))
	p.engine.Reassert()
}

// Println prints a plain line through the printer's output.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Prompt returns the styled input prompt for the given user name.
func (p *Printer) Prompt(name string) string {
	if name == "" {
		name = "You"
	}
	return p.Styles().Prompt.Render(name+" ❯") + " "
}

// =============================================================================
// CHAT MESSAGES
// =============================================================================

// AssistantLabel prints the assistant name header for a reply.
func (p *Printer) AssistantLabel() {
	st := p.Styles()
	fmt.Fprintln(p.out, st.AssistantLabel.Render(st.Palette.Emoji+" Nova"))
	p.engine.Reassert()
}

// Assistant renders an assistant reply as markdown. Falls back to the
// raw text when rendering fails. The render resets terminal attributes,
// so the themed background is re-asserted afterward.
func (p *Printer) Assistant(content string) {
	p.AssistantLabel()

	if p.renderer != nil {
		if rendered, err := p.renderer.Render(content); err == nil {
			fmt.Fprint(p.out, rendered)
			p.engine.Reassert()
			return
		}
	}
	fmt.Fprintln(p.out, WrapText(content, p.wrapWidth))
	p.engine.Reassert()
}

// AssistantTyped prints an assistant reply with the typewriter effect.
// In focus mode, or for content with markdown structure, it delegates
// to the plain Assistant render.
func (p *Printer) AssistantTyped(content string) {
	if p.FocusMode() {
		p.Assistant(content)
		return
	}

	p.AssistantLabel()
	tw := NewTypewriter(p.out, p.typeDelay)
	tw.SetSounds(p.sounds)
	tw.Type(WrapText(content, p.wrapWidth))
	fmt.Fprintln(p.out)
	p.engine.Reassert()
}

// StreamToken writes one streaming token as it arrives.
func (p *Printer) StreamToken(token string) {
	fmt.Fprint(p.out, token)
}

// StreamDone terminates a streamed reply.
func (p *Printer) StreamDone() {
	fmt.Fprintln(p.out)
	p.engine.Reassert()
}
