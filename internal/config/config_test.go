// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// useTempHome points NOVA_HOME at a temp dir and resets the global
// config so each test is hermetic.
func useTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("NOVA_HOME", dir)
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)
	return dir
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "neon" {
		t.Errorf("default theme = %q", cfg.UI.Theme)
	}
	if cfg.Chat.Mode != "chat" {
		t.Errorf("default mode = %q", cfg.Chat.Mode)
	}
	if cfg.Ollama.URL != "http://127.0.0.1:11434" {
		t.Errorf("default ollama url = %q", cfg.Ollama.URL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	useTempHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.UI.Theme != "neon" {
		t.Errorf("theme = %q, want default", cfg.UI.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := useTempHome(t)

	cfg := Default()
	cfg.UI.Theme = "ocean"
	cfg.Chat.UserName = "Sam"
	cfg.Chat.Streaming = true
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// Config files hold nothing secret today, but keep them private.
	info, err := os.Stat(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatalf("config file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file permissions = %o, want 0600", perm)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.UI.Theme != "ocean" || loaded.Chat.UserName != "Sam" || !loaded.Chat.Streaming {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestEnvOverrides(t *testing.T) {
	useTempHome(t)
	t.Setenv("NOVA_THEME", "hacker")
	t.Setenv("NOVA_MODEL", "mistral")
	t.Setenv("NOVA_STREAMING", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.UI.Theme != "hacker" {
		t.Errorf("theme = %q, want hacker", cfg.UI.Theme)
	}
	if cfg.Ollama.Model != "mistral" {
		t.Errorf("model = %q, want mistral", cfg.Ollama.Model)
	}
	if !cfg.Chat.Streaming {
		t.Error("streaming override not applied")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad url", func(c *Config) { c.Ollama.URL = "not a url" }, true},
		{"tiny wrap width", func(c *Config) { c.UI.WrapWidth = 5 }, true},
		{"huge type delay", func(c *Config) { c.UI.TypeDelayMs = 5000 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestGlobalUpdatePersists(t *testing.T) {
	useTempHome(t)

	if err := Update(func(c *Config) { c.UI.Theme = "zen" }); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if Global().UI.Theme != "zen" {
		t.Errorf("global theme = %q after update", Global().UI.Theme)
	}

	// A fresh load sees the persisted value.
	ResetGlobalForTesting()
	if Global().UI.Theme != "zen" {
		t.Errorf("persisted theme = %q", Global().UI.Theme)
	}
}

func TestExportDirDefault(t *testing.T) {
	dir := useTempHome(t)

	cfg := Default()
	got, err := cfg.ExportDir()
	if err != nil {
		t.Fatalf("ExportDir() error: %v", err)
	}
	if got != filepath.Join(dir, "exports") {
		t.Errorf("ExportDir() = %q", got)
	}

	cfg.Export.Dir = "/tmp/elsewhere"
	got, _ = cfg.ExportDir()
	if got != "/tmp/elsewhere" {
		t.Errorf("ExportDir() override = %q", got)
	}
}

func TestWatcherReloadsOnChange(t *testing.T) {
	useTempHome(t)
	if err := Save(Default()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	Global() // prime

	changed := make(chan *Config, 1)
	w, err := Watch(func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch() error: %v", err)
	}
	defer w.Close()

	cfg := Default()
	cfg.UI.Theme = "retro"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	select {
	case got := <-changed:
		if got.UI.Theme != "retro" {
			t.Errorf("reloaded theme = %q, want retro", got.UI.Theme)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not fire within 3s")
	}
}
