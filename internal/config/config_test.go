// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

// =============================================================================
// DEFAULTS & VALIDATION
// =============================================================================

func TestDefault_Values(t *testing.T) {
	cfg := Default()
	if cfg.WelcomeMessage != DefaultWelcomeMessage {
		t.Errorf("WelcomeMessage = %q, want default", cfg.WelcomeMessage)
	}
	if cfg.PlaceholderText != DefaultPlaceholderText {
		t.Errorf("PlaceholderText = %q, want default", cfg.PlaceholderText)
	}
	if cfg.PrimaryColor != DefaultPrimaryColor {
		t.Errorf("PrimaryColor = %q, want default", cfg.PrimaryColor)
	}
	if !cfg.ShowBranding {
		t.Error("ShowBranding should default to true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing url", func(c *Config) { c.APIBaseURL = "" }, true},
		{"garbage url", func(c *Config) { c.APIBaseURL = "not a url" }, true},
		{"missing key", func(c *Config) { c.WidgetKey = "" }, true},
		{"bad color recovers", func(c *Config) { c.PrimaryColor = "xyz" }, false},
		{"empty texts recover", func(c *Config) { c.WelcomeMessage = ""; c.PlaceholderText = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.APIBaseURL = "https://api.example.com"
			cfg.WidgetKey = "wk_test"
			tc.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err == nil {
				if !ValidColor(cfg.PrimaryColor) {
					t.Errorf("PrimaryColor %q should be valid after Validate", cfg.PrimaryColor)
				}
				if cfg.WelcomeMessage == "" || cfg.PlaceholderText == "" {
					t.Error("texts should be restored to defaults")
				}
			}
		})
	}
}

func TestValidColor(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"#2563eb", true},
		{"2563eb", true},
		{"#2563EB", true},
		{"#25 3eb", false},
		{"#2563e", false},
		{"#2563ebf", false},
		{"#gggggg", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := ValidColor(tc.color); got != tc.want {
			t.Errorf("ValidColor(%q) = %v, want %v", tc.color, got, tc.want)
		}
	}
}

// =============================================================================
// REMOTE OVERLAY
// =============================================================================

func TestOverlay_RemoteWins(t *testing.T) {
	cfg := Default()
	cfg.WelcomeMessage = "caller welcome"
	cfg.PrimaryColor = "#111111"

	cfg.Overlay(&Remote{
		WelcomeMessage: strp("remote welcome"),
		PrimaryColor:   strp("#222222"),
		ShowBranding:   boolp(false),
	})

	if cfg.WelcomeMessage != "remote welcome" {
		t.Errorf("WelcomeMessage = %q, want remote value", cfg.WelcomeMessage)
	}
	if cfg.PrimaryColor != "#222222" {
		t.Errorf("PrimaryColor = %q, want remote value", cfg.PrimaryColor)
	}
	if cfg.ShowBranding {
		t.Error("ShowBranding should be remote value false")
	}
}

func TestOverlay_AbsentFieldsKeepCallerValues(t *testing.T) {
	cfg := Default()
	cfg.WelcomeMessage = "caller welcome"
	cfg.PlaceholderText = "caller placeholder"

	cfg.Overlay(&Remote{PlaceholderText: strp("remote placeholder")})

	if cfg.WelcomeMessage != "caller welcome" {
		t.Errorf("WelcomeMessage = %q, absent remote field should not overwrite", cfg.WelcomeMessage)
	}
	if cfg.PlaceholderText != "remote placeholder" {
		t.Errorf("PlaceholderText = %q, want remote value", cfg.PlaceholderText)
	}
}

func TestOverlay_RejectsMalformedColor(t *testing.T) {
	cfg := Default()
	cfg.Overlay(&Remote{PrimaryColor: strp("chartreuse")})
	if cfg.PrimaryColor != DefaultPrimaryColor {
		t.Errorf("PrimaryColor = %q, malformed remote color should be discarded", cfg.PrimaryColor)
	}
}

func TestOverlay_NilRemote(t *testing.T) {
	cfg := Default()
	cfg.Overlay(nil)
	if cfg.WelcomeMessage != DefaultWelcomeMessage {
		t.Error("nil overlay should be a no-op")
	}
}

// =============================================================================
// FILE LOADING
// =============================================================================

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
api_base_url = "https://api.example.com"
widget_key = "wk_from_file"
primary_color = "#abcdef"
show_branding = false
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.WidgetKey != "wk_from_file" {
		t.Errorf("WidgetKey = %q, want value from file", cfg.WidgetKey)
	}
	if cfg.PrimaryColor != "#abcdef" {
		t.Errorf("PrimaryColor = %q, want value from file", cfg.PrimaryColor)
	}
	if cfg.ShowBranding {
		t.Error("ShowBranding should be false from file")
	}
	// Fields not in the file keep their defaults.
	if cfg.WelcomeMessage != DefaultWelcomeMessage {
		t.Errorf("WelcomeMessage = %q, want default", cfg.WelcomeMessage)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PrimaryColor != DefaultPrimaryColor {
		t.Error("missing file should return defaults")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("{{not toml"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed TOML")
	}
}
