// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// =============================================================================
// SESSION STATISTICS
// =============================================================================

// SessionStats accumulates counters for one interactive session. Shown by
// /stats and in the exit summary.
type SessionStats struct {
	StartedAt time.Time

	MessagesSent     int
	MessagesReceived int
	CommandsRun      int
	TokensGenerated  int

	// mu guards themesUsed: theme changes can arrive from the config
	// watcher goroutine while the chat loop reads the stats.
	mu         sync.Mutex
	themesUsed map[string]bool
}

// NewSessionStats creates session statistics anchored at now.
func NewSessionStats() *SessionStats {
	return &SessionStats{
		StartedAt:  time.Now(),
		themesUsed: make(map[string]bool),
	}
}

// RecordUserMessage counts one user message.
func (s *SessionStats) RecordUserMessage() {
	s.MessagesSent++
}

// RecordAssistantMessage counts one assistant reply and its tokens.
func (s *SessionStats) RecordAssistantMessage(tokens int) {
	s.MessagesReceived++
	s.TokensGenerated += tokens
}

// RecordCommand counts one slash command.
func (s *SessionStats) RecordCommand() {
	s.CommandsRun++
}

// RecordTheme marks a theme as used this session.
func (s *SessionStats) RecordTheme(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.themesUsed == nil {
		s.themesUsed = make(map[string]bool)
	}
	s.themesUsed[name] = true
}

// ThemesUsed returns the themes used this session, sorted.
func (s *SessionStats) ThemesUsed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.themesUsed))
	for name := range s.themesUsed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Duration returns how long the session has been running.
func (s *SessionStats) Duration() time.Duration {
	return time.Since(s.StartedAt).Round(time.Second)
}

// FormatDuration renders the session duration as "5m 12s" or "1h 3m".
func (s *SessionStats) FormatDuration() string {
	d := s.Duration()
	if d >= time.Hour {
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	}
	if d >= time.Minute {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
