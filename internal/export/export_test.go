// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Areeb-coder/cli-ai-chatbot/internal/model"
)

func testConversation() *model.Conversation {
	conv := model.NewConversationWithModel("llama3.2")
	conv.Persona = "balanced"
	conv.AddUserMessage("What's a goroutine?")
	conv.AddAssistantMessage()
	conv.AppendToLast("A lightweight thread managed by the Go runtime.")
	conv.FinalizeLast(nil)
	return conv
}

func TestByFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantOK  bool
	}{
		{"text", ".txt", true},
		{"txt", ".txt", true},
		{"markdown", ".md", true},
		{"md", ".md", true},
		{"json", ".json", true},
		{"html", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		exp, ok := ByFormat(tc.format, nil)
		if ok != tc.wantOK {
			t.Errorf("ByFormat(%q) ok = %v, want %v", tc.format, ok, tc.wantOK)
			continue
		}
		if ok && exp.FileExtension() != tc.wantExt {
			t.Errorf("ByFormat(%q) extension = %q, want %q", tc.format, exp.FileExtension(), tc.wantExt)
		}
	}
}

func TestTextExport(t *testing.T) {
	content, err := NewTextExporter(nil).Export(testConversation())
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	out := string(content)
	for _, want := range []string{"Nova Chat Transcript", "llama3.2", "You:", "Nova:", "goroutine"} {
		if !strings.Contains(out, want) {
			t.Errorf("text export missing %q", want)
		}
	}
}

func TestMarkdownExport(t *testing.T) {
	content, err := NewMarkdownExporter(nil).Export(testConversation())
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	out := string(content)
	for _, want := range []string{"---\n", "model: llama3.2", "### [You]", "### [Nova]", "generator: nova"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown export missing %q", want)
		}
	}
}

func TestMarkdownExportWithoutMetadata(t *testing.T) {
	opts := &Options{IncludeMetadata: false, IncludeTimestamps: false}
	content, err := NewMarkdownExporter(opts).Export(testConversation())
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if strings.Contains(string(content), "## Session Information") {
		t.Error("metadata section present despite IncludeMetadata=false")
	}
}

func TestJSONExportRoundTrip(t *testing.T) {
	content, err := NewJSONExporter(nil).Export(testConversation())
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(content, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if decoded["model"] != "llama3.2" {
		t.Errorf("model = %v", decoded["model"])
	}
	msgs, ok := decoded["messages"].([]any)
	if !ok || len(msgs) != 2 {
		t.Errorf("messages = %v", decoded["messages"])
	}
}

func TestExportEmptyConversation(t *testing.T) {
	conv := model.NewConversation()
	exporters := []Exporter{
		NewTextExporter(nil),
		NewMarkdownExporter(nil),
		NewJSONExporter(nil),
	}
	for _, exp := range exporters {
		if _, err := exp.Export(conv); err == nil {
			t.Errorf("%T accepted an empty conversation", exp)
		}
	}
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.OutputDir = dir

	path, err := ExportToFile(testConversation(), NewMarkdownExporter(opts), opts)
	if err != nil {
		t.Fatalf("ExportToFile() error: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("file written to %q, want under %q", path, dir)
	}
	if !strings.HasPrefix(filepath.Base(path), "nova_chat_") || !strings.HasSuffix(path, ".md") {
		t.Errorf("unexpected filename %q", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
}
