// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/peterh/liner"

	"github.com/Areeb-coder/cli-ai-chatbot/internal/commands"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/config"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/model"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/ollama"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/theme"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/ui"
)

// =============================================================================
// SESSION STATE
// =============================================================================

// Session holds the state for one interactive chat session.
type Session struct {
	Engine  *theme.Engine
	Printer *ui.Printer
	Client  *ollama.Client

	Conversation *model.Conversation
	Stats        *model.SessionStats

	Registry *commands.Registry
	Parser   *commands.Parser
	Input    *LineReader
	CmdCtx   *commands.Context

	Streaming bool
	Quiet     bool
	Online    bool

	// cancel aborts the in-flight generation, set only while one runs.
	cancelMu sync.Mutex
	cancel   context.CancelFunc
}

// NewSession assembles a session from config and CLI arguments.
// CLI flags win over config values, which win over built-in defaults.
func NewSession(args Args) *Session {
	cfg := config.Global()

	capability := theme.Probe(os.Stdout)
	if args.NoColor || !ColorsEnabled() {
		capability = theme.Capability{}
	}
	engine := theme.New(os.Stdout, capability)

	themeName := cfg.UI.Theme
	if args.Theme != "" {
		themeName = args.Theme
	}
	pal, ok := theme.Lookup(themeName)
	if !ok {
		pal = theme.Default()
		themeName = pal.Name
	}
	engine.SetBackground(pal.Background)

	printer := ui.NewPrinter(os.Stdout, engine, pal,
		ui.WithWrapWidth(cfg.UI.WrapWidth),
		ui.WithTypeDelay(time.Duration(cfg.UI.TypeDelayMs)*time.Millisecond),
	)
	printer.SetFocusMode(cfg.UI.FocusMode || args.Focus)
	printer.SetSoundEnabled(cfg.UI.SoundEffects)

	serverURL := cfg.Ollama.URL
	if args.URL != "" {
		serverURL = args.URL
	}
	client := ollama.NewClientWithConfig(&ollama.ClientConfig{
		BaseURL:      serverURL,
		Timeout:      time.Duration(cfg.Ollama.TimeoutSecs) * time.Second,
		DefaultModel: cfg.Ollama.Model,
	})

	modelName := args.Model
	if modelName == "" {
		modelName = cfg.Ollama.Model
	}
	if modelName == "" {
		modelName = client.DefaultModel()
	}

	modeName := cfg.Chat.Mode
	if args.Mode != "" {
		modeName = args.Mode
	}
	persona, ok := model.LookupPersona(modeName)
	if !ok {
		persona, _ = model.LookupPersona(model.DefaultPersona)
		modeName = model.DefaultPersona
	}

	conv := model.NewConversationWithModel(modelName)
	conv.Persona = modeName
	conv.SystemPrompt = persona.System

	streaming := cfg.Chat.Streaming
	if args.Stream {
		streaming = true
	}
	if args.NoStream {
		streaming = false
	}

	registry := commands.NewRegistry()
	stats := model.NewSessionStats()
	stats.RecordTheme(themeName)

	s := &Session{
		Engine:       engine,
		Printer:      printer,
		Client:       client,
		Conversation: conv,
		Stats:        stats,
		Registry:     registry,
		Parser:       commands.NewParser(registry),
		Input:        NewLineReader(registry),
		Streaming:    streaming,
		Quiet:        args.Quiet,
	}
	s.CmdCtx = &commands.Context{
		Ctx:          context.Background(),
		Printer:      printer,
		Engine:       engine,
		Client:       client,
		Conversation: conv,
		Stats:        stats,
		Registry:     registry,
		PersonaName:  modeName,
		Model:        modelName,
	}
	s.CmdCtx.SetThemeName(themeName)
	s.CmdCtx.SetUserName(cfg.Chat.UserName)
	if !args.Quiet {
		s.CmdCtx.Redraw = func() {
			printer.Welcome(Version, s.CmdCtx.Model)
		}
	}
	return s
}

func (s *Session) setCancel(fn context.CancelFunc) {
	s.cancelMu.Lock()
	s.cancel = fn
	s.cancelMu.Unlock()
}

// cancelGeneration aborts the in-flight generation, if any. Returns
// true when something was cancelled.
func (s *Session) cancelGeneration() bool {
	s.cancelMu.Lock()
	defer s.cancelMu.Unlock()
	if s.cancel == nil {
		return false
	}
	s.cancel()
	s.cancel = nil
	return true
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// RunChat runs the interactive chat REPL until the user leaves.
func RunChat(args Args) error {
	session := NewSession(args)
	defer session.Input.Close()
	defer session.Engine.Reset()

	ctx := context.Background()
	if err := session.Client.CheckRunning(ctx); err != nil {
		session.Printer.Errorf("Can't reach Ollama at %s", session.Client.GetConfig().BaseURL)
		session.Printer.Systemf("Running in limited mode. Start it with: ollama serve")
		session.Printer.Systemf("Slash commands still work — try /help or /theme.")
	} else {
		session.Online = true
	}

	if !session.Quiet {
		session.Printer.Welcome(Version, session.CmdCtx.Model)
	}

	// First Ctrl+C during a generation cancels it; at the prompt liner
	// surfaces it as ErrPromptAborted. SIGTERM restores the terminal
	// before dying so the user's shell is not left tinted.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		for sig := range sigChan {
			if session.cancelGeneration() {
				continue
			}
			if sig == syscall.SIGTERM {
				session.Engine.Reset()
				session.Input.Close()
				os.Exit(0)
			}
		}
	}()

	// Editing ~/.nova/config.toml while chatting applies live.
	watcher, err := config.Watch(session.applyConfig)
	if err != nil {
		log.Warn("config watcher unavailable", "err", err)
	} else {
		defer watcher.Close()
	}

	for {
		input, err := session.Input.ReadInput(session.Printer.Prompt(session.CmdCtx.UserName()))
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Println()
				continue
			}
			// EOF (Ctrl+D) leaves gracefully.
			fmt.Println()
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if commands.IsCommand(input) {
			session.dispatchCommand(input)
			if session.CmdCtx.Quit {
				break
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			break
		}

		if err := session.processMessage(input); err != nil {
			session.Printer.Errorf("%v", err)
		}
	}

	// Teardown before the goodbye screen: Reset clears the viewport, so
	// the summary prints on the terminal's own background and stays
	// readable. The deferred Reset is then a silent no-op.
	session.Engine.Reset()
	session.Printer.ExitSummary(session.Stats, session.CmdCtx.UserName())
	return nil
}

// dispatchCommand parses, validates and executes one slash command.
func (s *Session) dispatchCommand(input string) {
	result := s.Parser.Parse(input)
	if result.Command == nil {
		s.Printer.Errorf("Unknown command %s — try /help", result.CommandName)
		return
	}
	if err := commands.ValidateArgs(result.Command, result.Args); err != nil {
		s.Printer.Errorf("%v", err)
		return
	}

	s.Stats.RecordCommand()
	if err := result.Command.Handler(s.CmdCtx, result.Args); err != nil {
		s.Printer.Errorf("%v", err)
	}
}

// applyConfig reacts to config file edits while the session runs.
// Only presentation settings apply live; connection settings need a
// restart.
func (s *Session) applyConfig(cfg *config.Config) {
	if cfg.UI.Theme != s.CmdCtx.ThemeName() {
		if pal, ok := theme.Lookup(cfg.UI.Theme); ok {
			s.Engine.SetBackground(pal.Background)
			s.Printer.SetPalette(pal)
			s.CmdCtx.SetThemeName(cfg.UI.Theme)
			s.Stats.RecordTheme(cfg.UI.Theme)
		}
	}
	if cfg.UI.FocusMode != s.Printer.FocusMode() {
		s.Printer.SetFocusMode(cfg.UI.FocusMode)
	}
	if cfg.UI.SoundEffects != s.Printer.SoundEnabled() {
		s.Printer.SetSoundEnabled(cfg.UI.SoundEffects)
	}
	if cfg.Chat.UserName != "" {
		s.CmdCtx.SetUserName(cfg.Chat.UserName)
	}
}

// =============================================================================
// MESSAGE PROCESSING
// =============================================================================

// processMessage sends one user message and renders the reply.
func (s *Session) processMessage(input string) error {
	if !s.Online {
		// Ollama may have come up since startup.
		if err := s.Client.CheckRunning(s.CmdCtx.Ctx); err != nil {
			s.Stats.RecordUserMessage()
			s.Conversation.AddUserMessage(input)
			canned := offlineReply()
			reply := s.Conversation.AddAssistantMessage()
			reply.AppendToken(canned)
			s.Conversation.FinalizeLast(nil)
			s.Printer.AssistantTyped(canned)
			return nil
		}
		s.Online = true
	}

	s.Stats.RecordUserMessage()
	s.Conversation.AddUserMessage(input)
	wire := s.Conversation.ToOllamaMessages()

	ctx, cancel := context.WithCancel(context.Background())
	s.setCancel(cancel)
	defer func() {
		s.setCancel(nil)
		cancel()
	}()

	reply := s.Conversation.AddAssistantMessage()
	genStats := model.NewStatistics()

	var err error
	if s.Streaming {
		err = s.streamReply(ctx, wire, genStats)
	} else {
		err = s.typedReply(ctx, wire, reply, genStats)
	}
	if err != nil {
		// Drop the user message and the empty reply so a retry does
		// not resend a half-recorded turn.
		msgs := s.Conversation.Messages
		if len(msgs) >= 2 {
			s.Conversation.Messages = msgs[:len(msgs)-2]
		}
		return err
	}

	s.Conversation.FinalizeLast(genStats)
	s.Stats.RecordAssistantMessage(genStats.CompletionTokens)

	if !s.Quiet && !s.Printer.FocusMode() {
		s.Printer.Mutedf("  %s", genStats.Format())
	}
	if s.Conversation.IsContextNearLimit() {
		s.Printer.Systemf("Context is %.0f%% full — /new starts fresh.", s.Conversation.ContextPercent)
	}
	return nil
}

// streamReply prints tokens as they arrive.
func (s *Session) streamReply(ctx context.Context, wire []ollama.Message, genStats *model.Statistics) error {
	s.Printer.AssistantLabel()

	acc := ollama.NewStreamAccumulator()
	err := s.Client.ChatStream(ctx, s.CmdCtx.Model, wire, func(chunk ollama.StreamChunk) {
		acc.Add(chunk)
		if chunk.Error != nil || chunk.Content == "" {
			return
		}
		genStats.RecordFirstToken()
		s.Printer.StreamToken(chunk.Content)
		s.Conversation.AppendToLast(chunk.Content)
	})
	if err == nil {
		err = acc.Error
	}
	if err != nil {
		fmt.Println()
		return fmt.Errorf("generation failed: %w", err)
	}

	s.Printer.StreamDone()
	genStats.PromptTokens = acc.GetStats().PromptTokens
	genStats.Finalize(acc.TokenCount())
	return nil
}

// typedReply waits for the full response and plays it back with the
// typewriter effect (or plain markdown in focus mode).
func (s *Session) typedReply(ctx context.Context, wire []ollama.Message, reply *model.Message, genStats *model.Statistics) error {
	resp, err := s.Client.Chat(ctx, s.CmdCtx.Model, wire)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	genStats.RecordFirstToken()
	genStats.PromptTokens = resp.PromptEvalCount
	genStats.Finalize(resp.EvalCount)

	reply.AppendToken(resp.Message.Content)
	s.Printer.AssistantTyped(resp.Message.Content)
	return nil
}
