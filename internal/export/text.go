// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/Areeb-coder/cli-ai-chatbot/internal/model"
)

// =============================================================================
// TEXT EXPORTER
// =============================================================================

// TextExporter exports conversations as plain text transcripts.
type TextExporter struct {
	options *Options
}

// NewTextExporter creates a new plain text exporter.
func NewTextExporter(opts *Options) *TextExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &TextExporter{options: opts}
}

// Export converts a conversation to a plain text transcript.
func (e *TextExporter) Export(conv *model.Conversation) ([]byte, error) {
	if conv == nil {
		return nil, fmt.Errorf("conversation is nil")
	}
	if conv.IsEmpty() {
		return nil, fmt.Errorf("conversation has no messages")
	}

	var sb strings.Builder

	sb.WriteString("Nova Chat Transcript\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	if e.options.IncludeMetadata {
		sb.WriteString(fmt.Sprintf("Model:    %s\n", conv.Model))
		sb.WriteString(fmt.Sprintf("Started:  %s\n", formatTimestamp(conv.CreatedAt)))
		sb.WriteString(fmt.Sprintf("Messages: %d\n", conv.MessageCount()))
	}
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, msg := range conv.GetHistory() {
		if e.options.IncludeTimestamps {
			sb.WriteString(fmt.Sprintf("[%s] %s:\n", formatShortTimestamp(msg.Timestamp), msg.Role.DisplayName()))
		} else {
			sb.WriteString(fmt.Sprintf("%s:\n", msg.Role.DisplayName()))
		}
		sb.WriteString(strings.TrimSpace(msg.Content))
		sb.WriteString("\n\n")
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for plain text.
func (e *TextExporter) FileExtension() string {
	return ".txt"
}
