// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"strings"

	"github.com/Areeb-coder/cli-ai-chatbot/internal/model"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/theme"
)

var banner = strings.TrimLeft(`
███╗   ██╗ ██████╗ ██╗   ██╗ █████╗
████╗  ██║██╔═══██╗██║   ██║██╔══██╗
██╔██╗ ██║██║   ██║██║   ██║███████║
██║╚██╗██║██║   ██║╚██╗ ██╔╝██╔══██║
██║ ╚████║╚██████╔╝ ╚████╔╝ ██║  ██║
╚═╝  ╚═══╝ ╚═════╝   ╚═══╝  ╚═╝  ╚═╝
`, "\n")

// Welcome prints the startup banner and session info.
func (p *Printer) Welcome(version, modelName string) {
	st := p.Styles()
	fmt.Fprintln(p.out, st.Title.Render(banner))
	fmt.Fprintln(p.out, st.Subtitle.Render("  your AI companion in the terminal  ·  v"+version))
	fmt.Fprintln(p.out)

	pal := st.Palette
	fmt.Fprintf(p.out, "  %s  %s\n",
		st.Muted.Render("theme"),
		st.Highlight.Render(pal.Emoji+" "+pal.Label))
	if modelName != "" {
		fmt.Fprintf(p.out, "  %s  %s\n",
			st.Muted.Render("model"),
			st.Info.Render(modelName))
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, st.Muted.Render("  Type /help for commands, /quit to leave."))
	fmt.Fprintln(p.out)
	p.engine.Reassert()
}

// ThemeList prints the available themes, marking the active one.
func (p *Printer) ThemeList(active string) {
	st := p.Styles()
	fmt.Fprintln(p.out, st.Title.Render("Available themes"))
	for _, name := range theme.Names() {
		pal, _ := theme.Lookup(name)
		marker := "  "
		line := fmt.Sprintf("%s %s — %s", pal.Emoji, name, pal.Label)
		if name == active {
			marker = st.Highlight.Render("▸ ")
			line = st.Highlight.Render(line)
		} else {
			line = st.Info.Render(line)
		}
		fmt.Fprintln(p.out, "  "+marker+line)
	}
	p.engine.Reassert()
}

// ModeList prints the available chat modes, marking the active one.
func (p *Printer) ModeList(active string) {
	st := p.Styles()
	fmt.Fprintln(p.out, st.Title.Render("Available modes"))
	for _, name := range model.PersonaNames() {
		persona, _ := model.LookupPersona(name)
		marker := "  "
		line := fmt.Sprintf("%s — %s", name, persona.Description)
		if name == active {
			marker = st.Highlight.Render("▸ ")
			line = st.Highlight.Render(line)
		} else {
			line = st.Info.Render(line)
		}
		fmt.Fprintln(p.out, "  "+marker+line)
	}
	p.engine.Reassert()
}

// SessionStats prints the /stats view.
func (p *Printer) SessionStats(stats *model.SessionStats, conv *model.Conversation) {
	st := p.Styles()
	fmt.Fprintln(p.out, st.Title.Render("Session stats"))
	rows := [][2]string{
		{"duration", stats.FormatDuration()},
		{"messages sent", fmt.Sprintf("%d", stats.MessagesSent)},
		{"replies", fmt.Sprintf("%d", stats.MessagesReceived)},
		{"tokens generated", fmt.Sprintf("%d", stats.TokensGenerated)},
		{"commands run", fmt.Sprintf("%d", stats.CommandsRun)},
	}
	if themes := stats.ThemesUsed(); len(themes) > 0 {
		rows = append(rows, [2]string{"themes used", strings.Join(themes, ", ")})
	}
	if conv != nil && conv.TokensUsed > 0 {
		rows = append(rows, [2]string{"context used", fmt.Sprintf("%d tokens (%.0f%%)", conv.TokensUsed, conv.ContextPercent)})
	}
	for _, row := range rows {
		fmt.Fprintf(p.out, "  %s  %s\n",
			st.Muted.Render(fmt.Sprintf("%-17s", row[0])),
			st.Info.Render(row[1]))
	}
	p.engine.Reassert()
}

// ExitSummary prints the goodbye screen.
func (p *Printer) ExitSummary(stats *model.SessionStats, userName string) {
	name := userName
	if name == "" {
		name = "friend"
	}
	st := p.Styles()
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, st.Title.Render("Thanks for chatting, "+name+"!"))
	fmt.Fprintf(p.out, "  %s %s · %s %d · %s %d\n",
		st.Muted.Render("time"),
		st.Info.Render(stats.FormatDuration()),
		st.Muted.Render("messages"),
		stats.MessagesSent,
		st.Muted.Render("replies"),
		stats.MessagesReceived)
	fmt.Fprintln(p.out, st.Muted.Render("  See you next time. 👋"))
	p.engine.Reassert()
}
