// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete configuration for one widget instance.
//
// The zero values of the optional fields are filled in by Default; the
// remote overlay fetched at bootstrap may replace any optional field.
type Config struct {
	// APIBaseURL is the base URL of the widget backend, e.g. "https://api.example.com".
	APIBaseURL string `toml:"api_base_url" json:"api_base_url"`

	// WidgetKey identifies the widget deployment to the backend.
	WidgetKey string `toml:"widget_key" json:"widget_key"`

	// WelcomeMessage is shown as a greeting above the transcript.
	WelcomeMessage string `toml:"welcome_message" json:"welcome_message"`

	// PlaceholderText is shown in the empty input surface.
	PlaceholderText string `toml:"placeholder_text" json:"placeholder_text"`

	// PrimaryColor is a 6-hex-digit color (leading '#' optional) used for
	// the widget accents. The hover shade is derived from it.
	PrimaryColor string `toml:"primary_color" json:"primary_color"`

	// ShowBranding controls the "Powered by" footer.
	ShowBranding bool `toml:"show_branding" json:"show_branding"`
}

// Remote is the overlay object returned by the widget configuration service.
// Pointer fields distinguish "absent" from "explicitly set"; absent fields
// leave the caller-supplied value untouched.
type Remote struct {
	WelcomeMessage  *string `json:"welcome_message,omitempty"`
	PlaceholderText *string `json:"placeholder_text,omitempty"`
	PrimaryColor    *string `json:"primary_color,omitempty"`
	ShowBranding    *bool   `json:"show_branding,omitempty"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default configuration values.
const (
	DefaultWelcomeMessage  = "Hi there! How can we help?"
	DefaultPlaceholderText = "Type a message..."
	DefaultPrimaryColor    = "#2563eb"
)

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		WelcomeMessage:  DefaultWelcomeMessage,
		PlaceholderText: DefaultPlaceholderText,
		PrimaryColor:    DefaultPrimaryColor,
		ShowBranding:    true,
	}
}

// =============================================================================
// OVERLAY & VALIDATION
// =============================================================================

// Overlay applies remote configuration on top of the current values.
// Remote values win on conflict; absent fields are left alone. A malformed
// remote color is discarded here so later color derivation never sees it.
func (c *Config) Overlay(r *Remote) {
	if r == nil {
		return
	}
	if r.WelcomeMessage != nil {
		c.WelcomeMessage = *r.WelcomeMessage
	}
	if r.PlaceholderText != nil {
		c.PlaceholderText = *r.PlaceholderText
	}
	if r.PrimaryColor != nil && ValidColor(*r.PrimaryColor) {
		c.PrimaryColor = *r.PrimaryColor
	}
	if r.ShowBranding != nil {
		c.ShowBranding = *r.ShowBranding
	}
}

// ValidColor reports whether s is a 6-hex-digit color, with or without a
// leading '#' marker.
func ValidColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Validate checks the merged configuration and normalizes recoverable
// problems. A missing backend URL or widget key is a hard error; a bad
// color falls back to the default.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("api_base_url is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_base_url %q is not a valid URL", c.APIBaseURL)
	}
	if c.WidgetKey == "" {
		return errors.New("widget_key is required")
	}
	if !ValidColor(c.PrimaryColor) {
		c.PrimaryColor = DefaultPrimaryColor
	}
	if c.WelcomeMessage == "" {
		c.WelcomeMessage = DefaultWelcomeMessage
	}
	if c.PlaceholderText == "" {
		c.PlaceholderText = DefaultPlaceholderText
	}
	return nil
}

// =============================================================================
// FILE LOADING (demo host)
// =============================================================================

// DefaultPath returns the default config file location (~/.chatbar/config.toml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chatbar", "config.toml")
}

// Load reads a TOML config file over the built-in defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
