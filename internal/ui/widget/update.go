// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatbar/internal/client"
	"github.com/jeranaias/chatbar/internal/config"
	"github.com/jeranaias/chatbar/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// sendResultMsg settles one message exchange. Exactly one arrives per
// submit: either a reply or an error, never both.
type sendResultMsg struct {
	reply *client.ChatResponse
	err   error
}

// remoteConfigMsg carries the bootstrap configuration fetch result.
type remoteConfigMsg struct {
	remote *config.Remote
	err    error
}

// focusInputMsg requests input focus once the panel has settled open.
type focusInputMsg struct{}

// expandSettleDelay is how long the panel is given to settle after
// expanding before focus moves to the input surface.
const expandSettleDelay = 250 * time.Millisecond

// Fallback assistant texts for failed exchanges. The conversation always
// settles with a visible reply so the user is never left staring at a
// pending indicator.
const (
	apologyText      = "Sorry, something went wrong on our end. Please try again in a moment."
	connectivityText = "Hmm, we can't reach the server right now. Please check your connection and try again."
)

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.tornDown {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case remoteConfigMsg:
		m.applyRemoteConfig(msg)
		return m, nil

	case sendResultMsg:
		m.settle(msg)
		return m, nil

	case focusInputMsg:
		if m.InputEnabled() && m.panel == PanelExpanded {
			return m, m.textarea.Focus()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.typing, cmd = m.typing.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Toggle):
		return m, m.Toggle()

	case key.Matches(msg, m.keyMap.Submit) && m.textarea.Focused():
		return m, m.submit()
	}

	var cmds []tea.Cmd
	if m.InputEnabled() {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
		m.applyInputResize()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// =============================================================================
// SUBMIT & SETTLE
// =============================================================================

// submit validates the drafted message and starts an exchange. Blank
// drafts and submits while an exchange is in flight are silent no-ops.
func (m *Model) submit() tea.Cmd {
	content := strings.TrimSpace(m.textarea.Value())
	if content == "" || m.convState == StateSending {
		return nil
	}

	m.convState = StateSending
	m.textarea.Blur()
	m.transcript.AddUser(content)
	m.textarea.Reset()
	m.applyInputResize()
	m.expand()
	m.syncViewport()

	return tea.Batch(m.typing.Start(), m.sendCmd(content, m.session.ID))
}

// settle finishes an exchange: the pending indicator disappears, exactly
// one assistant message enters the transcript, and input re-enables.
func (m *Model) settle(msg sendResultMsg) {
	m.typing.Stop()
	m.transcript.AddAssistant(resolveReply(msg.reply, msg.err))
	if msg.err == nil && msg.reply != nil {
		m.session.Replace(msg.reply.SessionID)
	}
	m.convState = StateIdle
	m.syncViewport()
	if m.panel == PanelExpanded {
		m.textarea.Focus()
	}
}

// resolveReply decides the assistant text for a settled exchange. It is
// pure so the decision is testable apart from any rendering: a successful
// exchange yields the backend's reply verbatim, a backend-reported failure
// yields an apology, and a transport failure yields a connectivity notice.
func resolveReply(reply *client.ChatResponse, err error) string {
	if err == nil && reply != nil {
		return reply.Response
	}
	var be *client.BackendError
	if errors.As(err, &be) {
		return apologyText
	}
	return connectivityText
}

// =============================================================================
// PANEL TRANSITIONS
// =============================================================================

// Toggle flips the panel between collapsed and expanded.
func (m *Model) Toggle() tea.Cmd {
	if m.panel == PanelExpanded {
		m.panel = PanelCollapsed
		m.textarea.Blur()
		return nil
	}
	m.panel = PanelExpanded
	m.syncViewport()
	return tea.Tick(expandSettleDelay, func(time.Time) tea.Msg {
		return focusInputMsg{}
	})
}

// expand opens the panel if it is collapsed. It never collapses, so a
// message arriving while the panel is already open leaves it open.
func (m *Model) expand() {
	if m.panel == PanelCollapsed {
		m.panel = PanelExpanded
	}
}

// =============================================================================
// REMOTE CONFIG
// =============================================================================

// applyRemoteConfig overlays the fetched remote configuration. A fetch
// failure is tolerated silently; the widget keeps its local values.
func (m *Model) applyRemoteConfig(msg remoteConfigMsg) {
	if msg.err != nil || msg.remote == nil {
		return
	}
	m.cfg.Overlay(msg.remote)
	m.theme = styles.NewTheme(m.cfg.PrimaryColor)
	m.textarea.Placeholder = m.cfg.PlaceholderText
}

// =============================================================================
// COMMANDS
// =============================================================================

func (m *Model) fetchConfigCmd() tea.Cmd {
	backend := m.backend
	timeout := m.sendTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		remote, err := backend.FetchConfig(ctx)
		return remoteConfigMsg{remote: remote, err: err}
	}
}

func (m *Model) sendCmd(message, sessionID string) tea.Cmd {
	backend := m.backend
	timeout := m.sendTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		reply, err := backend.Send(ctx, message, sessionID)
		return sendResultMsg{reply: reply, err: err}
	}
}
