// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/Areeb-coder/cli-ai-chatbot/internal/config"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/model"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/ollama"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/theme"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/ui"
)

// newTestContext builds a Context backed by buffers, with config
// pointed at a temp dir so handler persistence never touches the
// real home.
func newTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NOVA_HOME", t.TempDir())
	config.ResetGlobalForTesting()
	t.Cleanup(config.ResetGlobalForTesting)

	buf := &bytes.Buffer{}
	eng := theme.New(buf, theme.Capability{Interactive: true, VTEnabled: true},
		theme.WithSize(func() (int, int, error) { return 10, 3, nil }),
		theme.WithPlatformClear(func(io.Writer) error { return nil }))
	pal, _ := theme.Lookup(theme.DefaultPalette)

	ctx := &Context{
		Ctx:          context.Background(),
		Printer:      ui.NewPrinter(buf, eng, pal),
		Engine:       eng,
		Conversation: model.NewConversation(),
		Stats:        model.NewSessionStats(),
		Registry:     NewRegistry(),
		PersonaName:  model.DefaultPersona,
	}
	ctx.SetThemeName(theme.DefaultPalette)
	return ctx, buf
}

// =============================================================================
// PARSER
// =============================================================================

func TestParsePlainInput(t *testing.T) {
	p := NewParser(NewRegistry())

	result := p.Parse("hello there")
	if result.IsCommand {
		t.Error("plain input parsed as command")
	}
	if result.RawInput != "hello there" {
		t.Errorf("RawInput = %q", result.RawInput)
	}
}

func TestParseCommand(t *testing.T) {
	p := NewParser(NewRegistry())

	result := p.Parse("  /THEME ocean  ")
	if !result.IsCommand {
		t.Fatal("command input not recognized")
	}
	if result.CommandName != "/theme" {
		t.Errorf("CommandName = %q", result.CommandName)
	}
	if result.Command == nil || result.Command.Name != "/theme" {
		t.Errorf("Command = %+v", result.Command)
	}
	if !reflect.DeepEqual(result.Args, []string{"ocean"}) {
		t.Errorf("Args = %v", result.Args)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	p := NewParser(NewRegistry())

	result := p.Parse("/nope")
	if !result.IsCommand {
		t.Fatal("slash input not flagged as command")
	}
	if result.Command != nil {
		t.Errorf("unknown command resolved to %q", result.Command.Name)
	}
}

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"/name Sam", []string{"/name", "Sam"}},
		{`/name "Sam Iyer"`, []string{"/name", "Sam Iyer"}},
		{"/name 'Sam Iyer'", []string{"/name", "Sam Iyer"}},
		{`/name "she said \"hi\""`, []string{"/name", `she said "hi"`}},
		{"/export   markdown", []string{"/export", "markdown"}},
		{"   ", nil},
		// Multi-byte input must survive tokenizing intact.
		{"/name José", []string{"/name", "José"}},
		{`/name "Zoë Müller"`, []string{"/name", "Zoë Müller"}},
		{"/name 田中", []string{"/name", "田中"}},
	}

	for _, tc := range tests {
		got := splitCommandLine(tc.input)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitCommandLine(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestValidateArgs(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name    string
		cmd     string
		args    []string
		wantErr bool
	}{
		{"no args where optional", "/theme", nil, false},
		{"valid enum", "/theme", []string{"ocean"}, false},
		{"enum case insensitive", "/theme", []string{"OCEAN"}, false},
		{"invalid enum", "/theme", []string{"plaid"}, true},
		{"missing required", "/focus", nil, true},
		{"required present", "/focus", []string{"on"}, false},
		{"free string accepted", "/name", []string{"anything"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateArgs(reg.Get(tc.cmd), tc.args)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateArgs(%s, %v) = %v, wantErr %v", tc.cmd, tc.args, err, tc.wantErr)
			}
		})
	}
}

// =============================================================================
// REGISTRY
// =============================================================================

func TestRegistryAliases(t *testing.T) {
	reg := NewRegistry()

	for alias, want := range map[string]string{
		"/h":    "/help",
		"/?":    "/help",
		"/q":    "/quit",
		"/exit": "/quit",
		"/t":    "/theme",
		"/m":    "/mode",
	} {
		cmd := reg.Get(alias)
		if cmd == nil || cmd.Name != want {
			t.Errorf("Get(%q) = %v, want %s", alias, cmd, want)
		}
	}
}

func TestRegistryCategories(t *testing.T) {
	reg := NewRegistry()

	byCat := reg.ByCategory()
	for _, cat := range []string{"General", "Conversation", "Appearance", "Session"} {
		if len(byCat[cat]) == 0 {
			t.Errorf("category %q has no commands", cat)
		}
	}
	for _, cmds := range byCat {
		for _, cmd := range cmds {
			if cmd.Hidden {
				t.Errorf("hidden command %s appears in help", cmd.Name)
			}
		}
	}
}

func TestComplete(t *testing.T) {
	reg := NewRegistry()

	got := reg.Complete("/he")
	if !reflect.DeepEqual(got, []string{"/help"}) {
		t.Errorf("Complete(/he) = %v", got)
	}

	got = reg.Complete("/theme oc")
	if !reflect.DeepEqual(got, []string{"/theme ocean"}) {
		t.Errorf("Complete(/theme oc) = %v", got)
	}

	if got := reg.Complete("not a command"); got != nil {
		t.Errorf("Complete(non-command) = %v", got)
	}
}

// =============================================================================
// HANDLERS
// =============================================================================

func TestHandleTheme(t *testing.T) {
	ctx, _ := newTestContext(t)

	if err := handleTheme(ctx, []string{"ocean"}); err != nil {
		t.Fatalf("handleTheme error: %v", err)
	}
	if ctx.ThemeName() != "ocean" {
		t.Errorf("ThemeName = %q", ctx.ThemeName())
	}
	if active, ok := ctx.Engine.Active(); !ok || active != (theme.RGB{R: 2, G: 16, B: 36}) {
		t.Errorf("engine active = %v, %v", active, ok)
	}
	if config.Global().UI.Theme != "ocean" {
		t.Errorf("persisted theme = %q", config.Global().UI.Theme)
	}
	if got := ctx.Stats.ThemesUsed(); !reflect.DeepEqual(got, []string{"ocean"}) {
		t.Errorf("ThemesUsed = %v", got)
	}
}

func TestHandleThemeUnknown(t *testing.T) {
	ctx, _ := newTestContext(t)

	if err := handleTheme(ctx, []string{"plaid"}); err == nil {
		t.Error("expected error for unknown theme")
	}
	if ctx.ThemeName() != theme.DefaultPalette {
		t.Errorf("ThemeName changed to %q on failure", ctx.ThemeName())
	}
}

func TestHandleThemeRandom(t *testing.T) {
	ctx, _ := newTestContext(t)

	if err := handleTheme(ctx, []string{"random"}); err != nil {
		t.Fatalf("handleTheme error: %v", err)
	}
	if _, ok := theme.Lookup(ctx.ThemeName()); !ok {
		t.Errorf("random picked unregistered theme %q", ctx.ThemeName())
	}
}

func TestHandleThemeNoArgsListsThemes(t *testing.T) {
	ctx, buf := newTestContext(t)

	if err := handleTheme(ctx, nil); err != nil {
		t.Fatalf("handleTheme error: %v", err)
	}
	for _, name := range theme.Names() {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("theme list missing %q", name)
		}
	}
}

func TestHandleMode(t *testing.T) {
	ctx, _ := newTestContext(t)

	if err := handleMode(ctx, []string{"poet"}); err != nil {
		t.Fatalf("handleMode error: %v", err)
	}
	if ctx.PersonaName != "poet" || ctx.Conversation.Persona != "poet" {
		t.Errorf("persona not applied: ctx=%q conv=%q", ctx.PersonaName, ctx.Conversation.Persona)
	}
	if ctx.Conversation.SystemPrompt == "" {
		t.Error("system prompt not set")
	}
	if config.Global().Chat.Mode != "poet" {
		t.Errorf("persisted mode = %q", config.Global().Chat.Mode)
	}

	if err := handleMode(ctx, []string{"nonsense"}); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestHandleFocus(t *testing.T) {
	ctx, _ := newTestContext(t)

	if err := handleFocus(ctx, []string{"on"}); err != nil {
		t.Fatalf("handleFocus error: %v", err)
	}
	if !ctx.Printer.FocusMode() {
		t.Error("focus mode not enabled")
	}
	if !config.Global().UI.FocusMode {
		t.Error("focus mode not persisted")
	}

	if err := handleFocus(ctx, []string{"off"}); err != nil {
		t.Fatalf("handleFocus error: %v", err)
	}
	if ctx.Printer.FocusMode() {
		t.Error("focus mode not disabled")
	}
}

func TestHandleSound(t *testing.T) {
	ctx, buf := newTestContext(t)

	if err := handleSound(ctx, []string{"on"}); err != nil {
		t.Fatalf("handleSound error: %v", err)
	}
	if !ctx.Printer.SoundEnabled() {
		t.Error("sound effects not enabled")
	}
	if !config.Global().UI.SoundEffects {
		t.Error("sound setting not persisted")
	}
	if !strings.Contains(buf.String(), "Sound effects enabled") {
		t.Error("confirmation missing")
	}

	if err := handleSound(ctx, []string{"off"}); err != nil {
		t.Fatalf("handleSound error: %v", err)
	}
	if ctx.Printer.SoundEnabled() {
		t.Error("sound effects not disabled")
	}
}

func TestHandleName(t *testing.T) {
	ctx, buf := newTestContext(t)

	if err := handleName(ctx, []string{"Sam", "Iyer"}); err != nil {
		t.Fatalf("handleName error: %v", err)
	}
	if ctx.UserName() != "Sam Iyer" {
		t.Errorf("UserName = %q", ctx.UserName())
	}
	if config.Global().Chat.UserName != "Sam Iyer" {
		t.Errorf("persisted name = %q", config.Global().Chat.UserName)
	}
	if !strings.Contains(buf.String(), "Sam Iyer") {
		t.Error("greeting missing the name")
	}

	if err := handleName(ctx, []string{"  "}); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestHandleNewClearsConversation(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Conversation.AddUserMessage("hello")
	ctx.Conversation.AddAssistantMessage()

	if err := handleNew(ctx, nil); err != nil {
		t.Fatalf("handleNew error: %v", err)
	}
	if !ctx.Conversation.IsEmpty() {
		t.Error("conversation not cleared")
	}
	if ctx.Conversation.Title != "" {
		t.Errorf("title survived: %q", ctx.Conversation.Title)
	}
}

func TestHandleHistory(t *testing.T) {
	ctx, buf := newTestContext(t)

	if err := handleHistory(ctx, nil); err != nil {
		t.Fatalf("handleHistory error: %v", err)
	}
	if !strings.Contains(buf.String(), "Nothing here yet") {
		t.Error("empty-history notice missing")
	}

	buf.Reset()
	ctx.Conversation.AddUserMessage("what is go?")
	msg := ctx.Conversation.AddAssistantMessage()
	msg.AppendToken("A programming language.")
	msg.FinalizeStream(nil)

	if err := handleHistory(ctx, nil); err != nil {
		t.Fatalf("handleHistory error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "what is go?") || !strings.Contains(out, "A programming language.") {
		t.Errorf("history output missing messages:\n%s", out)
	}
}

func TestHandleExport(t *testing.T) {
	ctx, buf := newTestContext(t)

	if err := handleExport(ctx, nil); err == nil {
		t.Error("expected error exporting empty conversation")
	}

	ctx.Conversation.AddUserMessage("hi")
	if err := handleExport(ctx, []string{"markdown"}); err != nil {
		t.Fatalf("handleExport error: %v", err)
	}
	if !strings.Contains(buf.String(), ".md") {
		t.Errorf("export path not reported:\n%s", buf.String())
	}

	if err := handleExport(ctx, []string{"docx"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestHandleQuit(t *testing.T) {
	ctx, _ := newTestContext(t)

	if err := handleQuit(ctx, nil); err != nil {
		t.Fatalf("handleQuit error: %v", err)
	}
	if !ctx.Quit {
		t.Error("Quit flag not set")
	}
}

func TestHandleHelpListsCommands(t *testing.T) {
	ctx, buf := newTestContext(t)

	if err := handleHelp(ctx, nil); err != nil {
		t.Fatalf("handleHelp error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"/help", "/quit", "/theme", "/export", "/flash", "/sound", "Appearance"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

// Theme and user name cross goroutines: the config watcher writes them
// while the chat loop reads. Run with -race.
func TestContextConcurrentAccess(t *testing.T) {
	ctx, _ := newTestContext(t)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			ctx.SetThemeName("ocean")
			ctx.SetUserName("Sam")
		}
	}()
	for i := 0; i < 200; i++ {
		_ = ctx.ThemeName()
		_ = ctx.UserName()
	}
	wg.Wait()

	if ctx.ThemeName() != "ocean" || ctx.UserName() != "Sam" {
		t.Errorf("final state = %q, %q", ctx.ThemeName(), ctx.UserName())
	}
}

func TestHandleModel(t *testing.T) {
	ctx, buf := newTestContext(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"models":[{"name":"llama3.2","size":2000000000}]}`)
	}))
	defer srv.Close()
	ctx.Client = ollama.NewClientWithConfig(&ollama.ClientConfig{BaseURL: srv.URL})
	ctx.Model = "llama3.2"

	if err := handleModel(ctx, nil); err != nil {
		t.Fatalf("handleModel error: %v", err)
	}
	if !strings.Contains(buf.String(), "llama3.2") {
		t.Error("current model not shown")
	}

	if err := handleModel(ctx, []string{"mistral"}); err != nil {
		t.Fatalf("handleModel error: %v", err)
	}
	if ctx.Model != "mistral" || ctx.Conversation.Model != "mistral" {
		t.Errorf("model not switched: ctx=%q conv=%q", ctx.Model, ctx.Conversation.Model)
	}
	if config.Global().Ollama.Model != "mistral" {
		t.Errorf("persisted model = %q", config.Global().Ollama.Model)
	}
}

func TestHandleFlashRestoresBackground(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Engine.SetBackground(theme.RGB{R: 20, G: 10, B: 38})

	if err := handleFlash(ctx, []string{"hacker"}); err != nil {
		t.Fatalf("handleFlash error: %v", err)
	}
	active, ok := ctx.Engine.Active()
	if !ok || active != (theme.RGB{R: 20, G: 10, B: 38}) {
		t.Errorf("background not restored after flash: %v, %v", active, ok)
	}

	if err := handleFlash(ctx, []string{"plaid"}); err == nil {
		t.Error("expected error for unknown flash theme")
	}
}

func TestHandleStats(t *testing.T) {
	ctx, buf := newTestContext(t)
	ctx.Stats.RecordUserMessage()
	ctx.Stats.RecordAssistantMessage(42)

	if err := handleStats(ctx, nil); err != nil {
		t.Fatalf("handleStats error: %v", err)
	}
	if !strings.Contains(buf.String(), "Session stats") {
		t.Error("stats header missing")
	}
}
