// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatbar

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatbar/internal/config"
)

func validOptions() Options {
	return Options{
		APIBaseURL: "https://api.example.com",
		WidgetKey:  "wk_test",
	}
}

func resetDefault() {
	defaultMu.Lock()
	defaultWidget = nil
	defaultMu.Unlock()
}

// =============================================================================
// NEW
// =============================================================================

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"valid", validOptions(), false},
		{"missing base url", Options{WidgetKey: "wk"}, true},
		{"missing widget key", Options{APIBaseURL: "https://api.example.com"}, true},
		{"relative base url", Options{APIBaseURL: "not a url", WidgetKey: "wk"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewAppliesOverrides(t *testing.T) {
	opts := validOptions()
	opts.WelcomeMessage = "Hello from tests"
	opts.PrimaryColor = "#00ff00"
	opts.HideBranding = true
	opts.SendTimeout = 5 * time.Second

	w, err := New(opts)
	require.NoError(t, err)
	defer w.Teardown()

	cfg := w.model.Config()
	assert.Equal(t, "Hello from tests", cfg.WelcomeMessage)
	assert.Equal(t, "#00ff00", cfg.PrimaryColor)
	assert.False(t, cfg.ShowBranding)
	assert.Equal(t, config.DefaultPlaceholderText, cfg.PlaceholderText,
		"unset options should keep defaults")
}

func TestNewRecoverableBadColor(t *testing.T) {
	opts := validOptions()
	opts.PrimaryColor = "chartreuse"

	w, err := New(opts)
	require.NoError(t, err, "bad color should recover, not fail")
	defer w.Teardown()

	assert.Equal(t, config.DefaultPrimaryColor, w.model.Config().PrimaryColor,
		"malformed color should fall back to the default")
}

// =============================================================================
// INSTANCES
// =============================================================================

func TestInstancesAreIndependent(t *testing.T) {
	a, err := New(validOptions())
	if err != nil {
		t.Fatal(err)
	}
	defer a.Teardown()

	b, err := New(validOptions())
	if err != nil {
		t.Fatal(err)
	}
	defer b.Teardown()

	if a.SessionID() == b.SessionID() {
		t.Error("each instance must own its session")
	}

	a.Teardown()
	if a.View() != "" {
		t.Error("torn-down instance must render nothing")
	}
	if !strings.Contains(b.View(), "Chat with us") {
		t.Error("tearing down one instance must not affect another")
	}
}

// =============================================================================
// DEFAULT INSTANCE
// =============================================================================

func TestInitAtMostOnce(t *testing.T) {
	resetDefault()
	t.Cleanup(Teardown)

	first, err := Init(validOptions())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Init(Options{APIBaseURL: "https://other.example.com", WidgetKey: "wk_other"})
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("repeated Init must return the existing instance")
	}
}

func TestDefaultBeforeInit(t *testing.T) {
	resetDefault()

	if _, err := Default(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestTeardownAllowsReinit(t *testing.T) {
	resetDefault()
	t.Cleanup(Teardown)

	first, err := Init(validOptions())
	if err != nil {
		t.Fatal(err)
	}
	Teardown()
	Teardown() // no-op

	if _, err := Default(); !errors.Is(err, ErrNotInitialized) {
		t.Error("teardown should clear the default instance")
	}

	second, err := Init(validOptions())
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("init after teardown must build a fresh instance")
	}
}
