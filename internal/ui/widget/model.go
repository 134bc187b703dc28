// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatbar/internal/client"
	"github.com/jeranaias/chatbar/internal/config"
	"github.com/jeranaias/chatbar/internal/model"
	"github.com/jeranaias/chatbar/internal/ui/components"
	"github.com/jeranaias/chatbar/internal/ui/styles"
)

// =============================================================================
// STATES
// =============================================================================

// ConversationState tags where the widget is in the request cycle.
type ConversationState int

const (
	// StateIdle means no exchange is in flight; input is enabled.
	StateIdle ConversationState = iota

	// StateSending means a message is in flight; input is disabled and
	// further submits are rejected until the exchange settles.
	StateSending
)

// PanelState tags whether the message panel is visible.
type PanelState int

const (
	// PanelCollapsed shows only the chat bar.
	PanelCollapsed PanelState = iota

	// PanelExpanded shows the message panel above the bar.
	PanelExpanded
)

// DefaultSendTimeout bounds a single message exchange. A backend that
// never answers settles the conversation as a transport failure.
const DefaultSendTimeout = 30 * time.Second

// =============================================================================
// BACKEND
// =============================================================================

// Backend is the slice of the HTTP client the widget needs. Tests
// substitute a fake; production code passes *client.Client.
type Backend interface {
	FetchConfig(ctx context.Context) (*config.Remote, error)
	Send(ctx context.Context, message, sessionID string) (*client.ChatResponse, error)
}

// =============================================================================
// WIDGET MODEL
// =============================================================================

// Model is the chat widget. Each instance carries its own state; nothing
// is shared between instances, so several widgets can run in one process.
type Model struct {
	convState ConversationState
	panel     PanelState

	cfg   config.Config
	theme *styles.Theme

	session    *model.Session
	transcript *model.Transcript

	backend     Backend
	sendTimeout time.Duration

	textarea textarea.Model
	viewport viewport.Model
	typing   components.TypingIndicator
	keyMap   KeyMap

	width  int
	height int

	inputHeight     int
	containerHeight int

	tornDown bool
}

// New builds a widget from an already-validated config and a backend.
// The widget starts collapsed and idle with an empty transcript and a
// freshly generated session identifier.
func New(cfg config.Config, backend Backend) *Model {
	ta := textarea.New()
	ta.Placeholder = cfg.PlaceholderText
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	// Plain Enter submits; newline moves to a chord so multi-line input
	// stays possible.
	ta.KeyMap.InsertNewline.SetKeys("alt+enter")

	vp := viewport.New(0, 0)

	m := &Model{
		convState:   StateIdle,
		panel:       PanelCollapsed,
		cfg:         cfg,
		theme:       styles.NewTheme(cfg.PrimaryColor),
		session:     model.NewSession(),
		transcript:  model.NewTranscript(),
		backend:     backend,
		sendTimeout: DefaultSendTimeout,
		textarea:    ta,
		viewport:    vp,
		typing:      components.NewTypingIndicator(),
		keyMap:      DefaultKeyMap(),
	}
	m.applyInputResize()
	return m
}

// Init fetches the remote widget configuration. A fetch failure is
// tolerated; the widget keeps its local configuration.
func (m *Model) Init() tea.Cmd {
	return m.fetchConfigCmd()
}

// Teardown detaches the widget: View renders nothing and Update ignores
// all messages from here on. Safe to call more than once.
func (m *Model) Teardown() {
	m.tornDown = true
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Sending reports whether an exchange is in flight.
func (m *Model) Sending() bool { return m.convState == StateSending }

// Expanded reports whether the message panel is visible.
func (m *Model) Expanded() bool { return m.panel == PanelExpanded }

// InputEnabled reports whether the input surface accepts typing.
func (m *Model) InputEnabled() bool { return m.convState == StateIdle && !m.tornDown }

// SessionID returns the current conversation session identifier.
func (m *Model) SessionID() string { return m.session.ID }

// Transcript exposes the conversation history.
func (m *Model) Transcript() *model.Transcript { return m.transcript }

// Config returns the widget's effective configuration.
func (m *Model) Config() config.Config { return m.cfg }

// PanelMarker exposes the presentation state for host styling.
func (m *Model) PanelMarker() string {
	if m.panel == PanelExpanded {
		return "expanded"
	}
	return "collapsed"
}

// InputMarker exposes the input state for host styling.
func (m *Model) InputMarker() string {
	if m.InputEnabled() {
		return "enabled"
	}
	return "disabled"
}

// SetSendTimeout overrides the per-exchange timeout. Values <= 0 are ignored.
func (m *Model) SetSendTimeout(d time.Duration) {
	if d > 0 {
		m.sendTimeout = d
	}
}
