// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Fallback dimensions used when the terminal size query fails. An
// imperfect repaint beats a crashed one.
const (
	FallbackCols = 120
	FallbackRows = 30
)

// SizeFunc reports the terminal dimensions in cells. Queried fresh on
// every full repaint so a resize between repaints never leaves stale
// blank regions.
type SizeFunc func() (cols, rows int, err error)

// Engine owns the active background color and every operation that
// writes it to the terminal.
//
// Construct one per process and pass it to whatever needs the
// background; there is no hidden global. All operations are total (no
// error returns) and serialized behind a mutex so a second writer, such
// as a config-watcher goroutine triggering a repaint, cannot interleave
// escape sequences with the chat loop.
type Engine struct {
	mu sync.Mutex

	out     io.Writer
	support bool
	active  *RGB

	size          SizeFunc
	platformClear func(io.Writer) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithSize overrides the terminal size query. Used by tests and by
// callers that already track the viewport.
func WithSize(fn SizeFunc) Option {
	return func(e *Engine) { e.size = fn }
}

// WithPlatformClear overrides the native clear command used when color
// support is absent.
func WithPlatformClear(fn func(io.Writer) error) Option {
	return func(e *Engine) { e.platformClear = fn }
}

// New creates an Engine writing to out, gated by the probed capability.
// When out is an *os.File the terminal size is queried from it; any
// other writer falls back to the fixed dimensions unless WithSize is
// given.
func New(out io.Writer, cap Capability, opts ...Option) *Engine {
	e := &Engine{
		out:           out,
		support:       cap.Interactive,
		platformClear: nativeClear,
	}
	if f, ok := out.(*os.File); ok {
		fd := int(f.Fd())
		e.size = func() (int, int, error) {
			return term.GetSize(fd)
		}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Supported reports whether painting operations will emit anything.
func (e *Engine) Supported() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.support
}

// Active returns the currently applied background color, if any.
func (e *Engine) Active() (RGB, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == nil {
		return RGB{}, false
	}
	return *e.active, true
}

// BackgroundCode returns the background-set sequence for the active
// color, or "" when no color is applied or support is absent. Callers
// composing raw output lines can prefix them with this so every printed
// cell inherits the theme.
func (e *Engine) BackgroundCode() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.support || e.active == nil {
		return ""
	}
	return e.active.Sequence()
}

// SetBackground records c as the active color and fully repaints the
// viewport with it. State is updated before any output so an
// interrupted write still leaves the engine consistent with intent: the
// next refresh retries the same color.
func (e *Engine) SetBackground(c RGB) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = &c
	if !e.support {
		return
	}
	e.paint(c)
}

// Repaint fully repaints the viewport with the active color. No-op when
// no color is applied.
func (e *Engine) Repaint() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == nil || !e.support {
		return
	}
	e.paint(*e.active)
}

// Reassert re-emits only the background attribute, without touching the
// cell grid. Cheap; meant for use after any external output (a glamour
// render, a lipgloss block) that may have reset terminal attributes.
func (e *Engine) Reassert() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.support || e.active == nil {
		return
	}
	e.write(e.active.Sequence())
	e.flush()
}

// Clear is the only sanctioned way to clear the screen.
//
// With a color active it is a full repaint, which is exactly what makes
// "clear" safe under theming. Without color support it delegates to the
// platform's clear command; with support but no active color it falls
// back to a minimal escape clear.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case !e.support:
		_ = e.platformClear(e.out)
	case e.active != nil:
		e.paint(*e.active)
	default:
		e.write(escClearScreen + escCursorHome)
		e.flush()
	}
}

// Reset restores the terminal to its default attributes and forgets the
// active color. Runs on every exit path so the user's shell is not left
// tinted. State is cleared unconditionally; escape output is emitted
// only when supported.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

// Flash temporarily swaps the background to c for the given duration,
// then restores the previous state: a repaint with the captured color,
// or a full reset if none was captured. Blocks the calling goroutine for
// the whole duration and holds the engine lock throughout, so no other
// writer can corrupt the effect mid-flight.
func (e *Engine) Flash(c RGB, d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	saved := e.active
	e.active = &c
	if e.support {
		e.paint(c)
	}
	if d > 0 {
		time.Sleep(d)
	}
	if saved == nil {
		e.resetLocked()
		return
	}
	e.active = saved
	if e.support {
		e.paint(*saved)
	}
}

// =============================================================================
// INTERNALS
// =============================================================================

// paint runs the full repaint protocol for c. Callers hold e.mu and
// have already checked e.support.
//
// The sequence "set background, clear, home, paint cells, home, set
// background again" must not be reordered: terminals differ in whether
// a clear fills cells with the pending background attribute, and only
// this order covers both behaviors.
func (e *Engine) paint(c RGB) {
	seq := c.Sequence()
	cols, rows := e.dimensions()

	row := seq + strings.Repeat(" ", cols)

	var b strings.Builder
	b.Grow(len(escClearScreen) + 2*len(escCursorHome) + 2*len(seq) + rows*(len(row)+1))

	b.WriteString(seq)
	b.WriteString(escClearScreen)
	b.WriteString(escCursorHome)
	for i := 0; i < rows; i++ {
		// No newline after the final row: it would scroll the
		// viewport by one line and expose an unpainted row.
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(row)
	}
	b.WriteString(escCursorHome)
	b.WriteString(seq)

	e.write(b.String())
	e.flush()
}

// resetLocked emits the attribute reset and a plain clear, then forgets
// the active color. Caller holds e.mu. Emits nothing when no color was
// applied, so a second teardown on the same exit path cannot wipe output
// printed after the first.
func (e *Engine) resetLocked() {
	wasActive := e.active != nil
	e.active = nil
	if !e.support || !wasActive {
		return
	}
	e.write(escResetAttrs + escClearScreen + escCursorHome)
	e.flush()
}

// dimensions queries the terminal size, substituting the fixed fallback
// when the query fails or reports a degenerate viewport.
func (e *Engine) dimensions() (cols, rows int) {
	if e.size == nil {
		return FallbackCols, FallbackRows
	}
	cols, rows, err := e.size()
	if err != nil || cols <= 0 || rows <= 0 {
		return FallbackCols, FallbackRows
	}
	return cols, rows
}

// write is best-effort: a stdout write failure is only fatal if the
// surrounding application cares, and decoration never does.
func (e *Engine) write(s string) {
	_, _ = io.WriteString(e.out, s)
}

// flush pushes buffered output to the terminal before returning, so the
// painted state is real before any other component writes.
func (e *Engine) flush() {
	type flusher interface{ Flush() error }
	if f, ok := e.out.(flusher); ok {
		_ = f.Flush()
	}
}

// nativeClear shells out to the platform clear command for terminals
// without ANSI support.
func nativeClear(out io.Writer) error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = out
	return cmd.Run()
}
