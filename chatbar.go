// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chatbar is an embeddable terminal chat widget.
//
// A Widget wraps one complete chat instance: configuration, backend
// client, session, transcript, and the Bubble Tea model that renders it.
// Instances are independent; a program may run several at once. For the
// common single-widget case, Init and Teardown manage a process-wide
// default instance.
package chatbar

import (
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatbar/internal/client"
	"github.com/jeranaias/chatbar/internal/config"
	"github.com/jeranaias/chatbar/internal/ui/widget"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a widget instance. APIBaseURL and WidgetKey are
// required; everything else falls back to built-in defaults and may be
// overridden again by the remote configuration fetched at bootstrap.
type Options struct {
	// APIBaseURL is the widget backend, e.g. "https://api.example.com".
	APIBaseURL string

	// WidgetKey identifies the widget deployment to the backend.
	WidgetKey string

	// WelcomeMessage, PlaceholderText, and PrimaryColor override the
	// defaults when non-empty.
	WelcomeMessage  string
	PlaceholderText string
	PrimaryColor    string

	// HideBranding suppresses the footer.
	HideBranding bool

	// SendTimeout bounds one message exchange. Zero means the default.
	SendTimeout time.Duration
}

func (o Options) config() *config.Config {
	cfg := config.Default()
	cfg.APIBaseURL = o.APIBaseURL
	cfg.WidgetKey = o.WidgetKey
	if o.WelcomeMessage != "" {
		cfg.WelcomeMessage = o.WelcomeMessage
	}
	if o.PlaceholderText != "" {
		cfg.PlaceholderText = o.PlaceholderText
	}
	if o.PrimaryColor != "" {
		cfg.PrimaryColor = o.PrimaryColor
	}
	cfg.ShowBranding = !o.HideBranding
	return cfg
}

// =============================================================================
// WIDGET
// =============================================================================

// Widget is one chat widget instance. It implements tea.Model so it can
// be mounted directly in a Bubble Tea program, or run standalone via Run.
type Widget struct {
	model  *widget.Model
	client *client.Client
}

// New validates the options and builds a widget. The remote configuration
// fetch happens later, from the model's Init command.
func New(opts Options) (*Widget, error) {
	cfg := opts.config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := client.New(cfg.APIBaseURL, cfg.WidgetKey)
	if opts.SendTimeout > 0 {
		c = c.WithTimeout(opts.SendTimeout)
	}

	m := widget.New(*cfg, c)
	if opts.SendTimeout > 0 {
		m.SetSendTimeout(opts.SendTimeout)
	}

	return &Widget{model: m, client: c}, nil
}

// NewFromConfig builds a widget from an already-loaded configuration.
func NewFromConfig(cfg *config.Config) (*Widget, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := client.New(cfg.APIBaseURL, cfg.WidgetKey)
	return &Widget{model: widget.New(*cfg, c), client: c}, nil
}

// Init implements tea.Model.
func (w *Widget) Init() tea.Cmd { return w.model.Init() }

// Update implements tea.Model. Ctrl+C quits here rather than inside the
// widget so an embedding program keeps control of its own lifecycle.
func (w *Widget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		return w, tea.Quit
	}
	_, cmd := w.model.Update(msg)
	return w, cmd
}

// View implements tea.Model.
func (w *Widget) View() string { return w.model.View() }

// Run mounts the widget in its own Bubble Tea program and blocks until
// the program exits.
func (w *Widget) Run() error {
	p := tea.NewProgram(w, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Teardown detaches the widget and releases the backend client's idle
// connections. The widget renders nothing and ignores input afterwards.
// Safe to call more than once.
func (w *Widget) Teardown() {
	w.model.Teardown()
	w.client.Close()
}

// SessionID returns the widget's current session identifier.
func (w *Widget) SessionID() string { return w.model.SessionID() }

// =============================================================================
// DEFAULT INSTANCE
// =============================================================================

// ErrNotInitialized is returned by Default before Init has succeeded.
var ErrNotInitialized = errors.New("chatbar: not initialized")

var (
	defaultMu     sync.Mutex
	defaultWidget *Widget
)

// Init creates the process-wide default widget. Calling Init again while
// a default widget exists returns the existing instance untouched, so
// bootstrap code may run more than once without duplicating widgets.
func Init(opts Options) (*Widget, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultWidget != nil {
		return defaultWidget, nil
	}

	w, err := New(opts)
	if err != nil {
		return nil, err
	}
	defaultWidget = w
	return w, nil
}

// Default returns the process-wide widget created by Init.
func Default() (*Widget, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultWidget == nil {
		return nil, ErrNotInitialized
	}
	return defaultWidget, nil
}

// Teardown tears down the process-wide widget, if any, and clears it so
// a later Init starts fresh. A no-op when nothing is initialized.
func Teardown() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultWidget != nil {
		defaultWidget.Teardown()
		defaultWidget = nil
	}
}
