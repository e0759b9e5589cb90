// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for nova.
//
// Configuration lives in ~/.nova/config.toml, with built-in defaults and
// NOVA_* environment variable overrides applied on top.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete nova configuration.
type Config struct {
	Version string `toml:"version"`

	Chat   ChatConfig   `toml:"chat"`
	UI     UIConfig     `toml:"ui"`
	Ollama OllamaConfig `toml:"ollama"`
	Export ExportConfig `toml:"export"`
}

// ChatConfig contains conversation behavior settings.
type ChatConfig struct {
	// UserName is how nova addresses the user. Set with /name.
	UserName string `toml:"user_name"`
	// Mode is the active chat persona. Set with /mode.
	Mode string `toml:"mode"`
	// Streaming prints tokens as they arrive instead of the typed
	// animation after the full reply.
	Streaming bool `toml:"streaming"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// Theme is the active color theme. Set with /theme.
	Theme string `toml:"theme"`
	// FocusMode disables animations and decorative output.
	FocusMode bool `toml:"focus_mode"`
	// SoundEffects shows typing sound glyphs during the typewriter
	// animation. Set with /sound.
	SoundEffects bool `toml:"sound_effects"`
	// TypeDelayMs is the typewriter base delay in milliseconds.
	TypeDelayMs int `toml:"type_delay_ms"`
	// WrapWidth is the markdown word-wrap width.
	WrapWidth int `toml:"wrap_width"`
}

// OllamaConfig contains local model server settings.
type OllamaConfig struct {
	URL         string `toml:"url"`
	Model       string `toml:"model"`
	TimeoutSecs int    `toml:"timeout_secs"`
}

// ExportConfig contains transcript export settings.
type ExportConfig struct {
	// Dir is where exports are written (empty = ~/.nova/exports).
	Dir string `toml:"dir"`
	// IncludeMetadata includes the session header in exports.
	IncludeMetadata bool `toml:"include_metadata"`
	// IncludeTimestamps includes per-message timestamps.
	IncludeTimestamps bool `toml:"include_timestamps"`
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Chat: ChatConfig{
			Mode:      "chat",
			Streaming: false,
		},
		UI: UIConfig{
			Theme:       "neon",
			TypeDelayMs: 12,
			WrapWidth:   100,
		},
		Ollama: OllamaConfig{
			URL:         "http://127.0.0.1:11434",
			Model:       "llama3.2",
			TimeoutSecs: 120,
		},
		Export: ExportConfig{
			IncludeMetadata:   true,
			IncludeTimestamps: true,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the nova config directory. NOVA_HOME overrides the
// default ~/.nova, which keeps tests and portable installs hermetic.
func ConfigDir() (string, error) {
	if dir := os.Getenv("NOVA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".nova"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ExportDir resolves the export directory for a config.
func (c *Config) ExportDir() (string, error) {
	if c.Export.Dir != "" {
		return c.Export.Dir, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "exports"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the config file, falling back to defaults when it does not
// exist. Environment overrides are applied last, then validation.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to ~/.nova/config.toml with owner-only
// permissions.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// =============================================================================
// DEFAULTS / OVERRIDES / VALIDATION
// =============================================================================

// SetDefaults fills zero values with usable defaults.
func (c *Config) SetDefaults() {
	def := Default()
	if c.Chat.Mode == "" {
		c.Chat.Mode = def.Chat.Mode
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
	if c.UI.TypeDelayMs <= 0 {
		c.UI.TypeDelayMs = def.UI.TypeDelayMs
	}
	if c.UI.WrapWidth <= 0 {
		c.UI.WrapWidth = def.UI.WrapWidth
	}
	if c.Ollama.URL == "" {
		c.Ollama.URL = def.Ollama.URL
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = def.Ollama.Model
	}
	if c.Ollama.TimeoutSecs <= 0 {
		c.Ollama.TimeoutSecs = def.Ollama.TimeoutSecs
	}
}

// ApplyEnvOverrides applies NOVA_* environment variables on top of the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("NOVA_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("NOVA_MODE"); v != "" {
		c.Chat.Mode = v
	}
	if v := os.Getenv("NOVA_USER_NAME"); v != "" {
		c.Chat.UserName = v
	}
	if v := os.Getenv("NOVA_OLLAMA_URL"); v != "" {
		c.Ollama.URL = v
	}
	if v := os.Getenv("NOVA_MODEL"); v != "" {
		c.Ollama.Model = v
	}
	if v := os.Getenv("NOVA_STREAMING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Chat.Streaming = b
		}
	}
	if v := os.Getenv("NOVA_FOCUS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UI.FocusMode = b
		}
	}
}

// ValidationError describes one invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	var errs []error

	if u, err := url.Parse(c.Ollama.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{Field: "ollama.url", Message: "not a valid URL: " + c.Ollama.URL})
	}
	if c.UI.WrapWidth < 20 {
		errs = append(errs, ValidationError{Field: "ui.wrap_width", Message: "must be at least 20"})
	}
	if c.UI.TypeDelayMs > 1000 {
		errs = append(errs, ValidationError{Field: "ui.type_delay_ms", Message: "must be at most 1000"})
	}

	return errors.Join(errs...)
}

// =============================================================================
// GLOBAL CONFIG
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first use.
// A load failure falls back to defaults rather than crashing startup.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal re-reads the config file into the global config.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	globalConfig = cfg
	globalConfigMu.Unlock()
	return nil
}

// SetGlobal replaces the global config.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	globalConfig = cfg
	globalConfigMu.Unlock()
}

// Update mutates the global config under the lock and persists it.
func Update(mutate func(*Config)) error {
	globalConfigMu.Lock()
	if globalConfig == nil {
		globalConfig = Default()
	}
	mutate(globalConfig)
	snapshot := *globalConfig
	globalConfigMu.Unlock()

	return Save(&snapshot)
}

// ResetGlobalForTesting clears the global config so tests start clean.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
