// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Areeb-coder/cli-ai-chatbot/internal/config"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/export"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/model"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/theme"
)

// helpCategories fixes the display order of help sections.
var helpCategories = []string{"General", "Conversation", "Appearance", "Session"}

// =============================================================================
// GENERAL
// =============================================================================

func handleHelp(ctx *Context, args []string) error {
	styles := ctx.Printer.Styles()
	byCategory := ctx.Registry.ByCategory()

	for _, category := range helpCategories {
		cmds := byCategory[category]
		if len(cmds) == 0 {
			continue
		}
		ctx.Printer.Println(styles.Title.Render(category))
		for _, cmd := range cmds {
			name := cmd.Usage
			if name == "" {
				name = cmd.Name
			}
			line := fmt.Sprintf("  %-28s %s",
				styles.Highlight.Render(name),
				styles.Info.Render(cmd.Description))
			if len(cmd.Aliases) > 0 {
				line += styles.Muted.Render("  (" + strings.Join(cmd.Aliases, ", ") + ")")
			}
			ctx.Printer.Println(line)
		}
		ctx.Printer.Println()
	}
	ctx.Engine.Reassert()
	return nil
}

func handleQuit(ctx *Context, args []string) error {
	ctx.Quit = true
	return nil
}

func handleClear(ctx *Context, args []string) error {
	ctx.Engine.Clear()
	if ctx.Redraw != nil {
		ctx.Redraw()
	}
	return nil
}

// =============================================================================
// CONVERSATION
// =============================================================================

func handleNew(ctx *Context, args []string) error {
	ctx.Conversation.ClearHistory()
	ctx.Conversation.Title = ""
	ctx.Printer.Successf("Started a fresh conversation")
	return nil
}

func handleHistory(ctx *Context, args []string) error {
	if ctx.Conversation.IsEmpty() {
		ctx.Printer.Mutedf("Nothing here yet. Say something!")
		return nil
	}

	styles := ctx.Printer.Styles()
	for _, msg := range ctx.Conversation.GetHistory() {
		label := styles.AssistantLabel
		if msg.Role == model.RoleUser {
			label = styles.UserLabel
		}
		ctx.Printer.Println(fmt.Sprintf("%s %s",
			label.Render(msg.Role.DisplayName()+":"),
			msg.Preview(120)))
	}
	ctx.Engine.Reassert()
	return nil
}

func handleExport(ctx *Context, args []string) error {
	if ctx.Conversation.IsEmpty() {
		return fmt.Errorf("nothing to export yet")
	}

	format := "text"
	if len(args) > 0 {
		format = strings.ToLower(args[0])
	}

	cfg := config.Global()
	dir, err := cfg.ExportDir()
	if err != nil {
		return err
	}
	opts := &export.Options{
		OutputDir:         dir,
		IncludeMetadata:   cfg.Export.IncludeMetadata,
		IncludeTimestamps: cfg.Export.IncludeTimestamps,
	}

	exporter, ok := export.ByFormat(format, opts)
	if !ok {
		return fmt.Errorf("unknown format %q (try: %s)", format, strings.Join(export.Formats(), ", "))
	}

	path, err := export.ExportToFile(ctx.Conversation, exporter, opts)
	if err != nil {
		return err
	}
	ctx.Printer.Successf("Exported to %s", path)
	return nil
}

// =============================================================================
// APPEARANCE
// =============================================================================

func handleTheme(ctx *Context, args []string) error {
	if len(args) == 0 {
		ctx.Printer.ThemeList(ctx.ThemeName())
		return nil
	}

	name := strings.ToLower(args[0])
	var pal theme.Palette
	if name == "random" {
		pal = theme.Random()
		name = pal.Name
	} else {
		p, ok := theme.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown theme %q (try: %s)", name, strings.Join(theme.Names(), ", "))
		}
		pal = p
	}

	ctx.Engine.SetBackground(pal.Background)
	ctx.Printer.SetPalette(pal)
	ctx.SetThemeName(name)
	ctx.Stats.RecordTheme(name)

	if err := config.Update(func(c *config.Config) { c.UI.Theme = name }); err != nil {
		log.Warn("could not persist theme", "err", err)
	}

	ctx.Printer.Successf("Theme changed to %s %s", name, pal.Emoji)
	return nil
}

func handleMode(ctx *Context, args []string) error {
	if len(args) == 0 {
		ctx.Printer.ModeList(ctx.PersonaName)
		return nil
	}

	name := strings.ToLower(args[0])
	persona, ok := model.LookupPersona(name)
	if !ok {
		return fmt.Errorf("unknown mode %q (try: %s)", name, strings.Join(model.PersonaNames(), ", "))
	}

	ctx.PersonaName = name
	ctx.Conversation.Persona = name
	ctx.Conversation.SystemPrompt = persona.System

	if err := config.Update(func(c *config.Config) { c.Chat.Mode = name }); err != nil {
		log.Warn("could not persist mode", "err", err)
	}

	ctx.Printer.Successf("Mode set to %s ✨", name)
	return nil
}

func handleFocus(ctx *Context, args []string) error {
	on := strings.EqualFold(args[0], "on")
	ctx.Printer.SetFocusMode(on)

	if err := config.Update(func(c *config.Config) { c.UI.FocusMode = on }); err != nil {
		log.Warn("could not persist focus mode", "err", err)
	}

	state := "disabled"
	if on {
		state = "enabled"
	}
	ctx.Printer.Successf("Focus mode %s", state)
	return nil
}

func handleSound(ctx *Context, args []string) error {
	on := strings.EqualFold(args[0], "on")
	ctx.Printer.SetSoundEnabled(on)

	if err := config.Update(func(c *config.Config) { c.UI.SoundEffects = on }); err != nil {
		log.Warn("could not persist sound setting", "err", err)
	}

	state := "disabled"
	if on {
		state = "enabled"
	}
	ctx.Printer.Successf("Sound effects %s", state)
	return nil
}

// =============================================================================
// SESSION
// =============================================================================

func handleName(ctx *Context, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("usage: /name <your name>")
	}

	ctx.SetUserName(name)
	if err := config.Update(func(c *config.Config) { c.Chat.UserName = name }); err != nil {
		log.Warn("could not persist user name", "err", err)
	}

	ctx.Printer.Successf("Nice to meet you, %s! 👋", name)
	return nil
}

func handleStats(ctx *Context, args []string) error {
	ctx.Printer.SessionStats(ctx.Stats, ctx.Conversation)
	return nil
}

func handleModel(ctx *Context, args []string) error {
	if len(args) == 0 {
		ctx.Printer.Systemf("Current model: %s", ctx.Model)
		return nil
	}

	name := args[0]
	if models, err := ctx.Client.ListModels(ctx.Ctx); err == nil {
		found := false
		for _, m := range models {
			if m.Name == name {
				found = true
				break
			}
		}
		if !found {
			ctx.Printer.Mutedf("Model %q is not installed locally — trying it anyway.", name)
		}
	}

	ctx.Model = name
	ctx.Conversation.Model = name
	if err := config.Update(func(c *config.Config) { c.Ollama.Model = name }); err != nil {
		log.Warn("could not persist model", "err", err)
	}

	ctx.Printer.Successf("Switched to model %s", name)
	return nil
}

func handleModels(ctx *Context, args []string) error {
	models, err := ctx.Client.ListModels(ctx.Ctx)
	if err != nil {
		return fmt.Errorf("could not list models: %w", err)
	}
	if len(models) == 0 {
		ctx.Printer.Mutedf("No models installed. Try: ollama pull llama3.2")
		return nil
	}

	styles := ctx.Printer.Styles()
	ctx.Printer.Println(styles.Title.Render("Local models"))
	for _, m := range models {
		ctx.Printer.Println(fmt.Sprintf("  %s %s",
			styles.Info.Render(fmt.Sprintf("%-32s", m.Name)),
			styles.Muted.Render(m.FormatSize())))
	}
	ctx.Engine.Reassert()
	return nil
}

func handleFlash(ctx *Context, args []string) error {
	color := theme.FlashAlert
	if len(args) > 0 {
		pal, ok := theme.Lookup(strings.ToLower(args[0]))
		if !ok {
			return fmt.Errorf("unknown theme %q", args[0])
		}
		color = pal.Background
	}
	ctx.Engine.Flash(color, 150*time.Millisecond)
	return nil
}
