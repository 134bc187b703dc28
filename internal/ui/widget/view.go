// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatbar/internal/model"
	"github.com/jeranaias/chatbar/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

const (
	barTitle     = "Chat with us"
	brandingText = "Powered by Chatbar"

	// defaultWidth is used until the first window size message arrives.
	defaultWidth  = 60
	defaultHeight = 24

	// panelHeightShare is how much of the terminal the expanded panel takes.
	panelHeightShare = 2
	panelHeightDiv   = 3
)

// View implements tea.Model. A torn-down widget renders nothing.
func (m *Model) View() string {
	if m.tornDown {
		return ""
	}
	if m.panel == PanelCollapsed {
		return m.barView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.panelView(), m.barView())
}

// barView renders the always-visible chat bar. While a send is in flight
// the bar takes the hover shade and a pending marker, so the collapsed
// widget still signals activity.
func (m *Model) barView() string {
	style := m.theme.Bar
	marker := "▸"
	if m.panel == PanelExpanded {
		marker = "▾"
	}
	if m.convState == StateSending {
		style = m.theme.BarActive
		marker = "…"
	}

	title := m.theme.BarTitle.Render(barTitle)
	line := marker + " " + title

	if last := m.transcript.Last(); last != nil && m.panel == PanelCollapsed {
		preview := util.FirstLine(last.Content)
		room := m.barWidth() - lipgloss.Width(line) - 5
		if room > 3 {
			line += "  " + m.theme.BarPreview.Render(util.TruncateWidth(preview, room))
		}
	}

	return style.Width(m.barWidth()).Render(line)
}

// panelView renders the expanded message panel: greeting, transcript,
// pending indicator, input surface, and the optional branding footer.
func (m *Model) panelView() string {
	var b strings.Builder

	b.WriteString(m.theme.Greeting.Render(m.cfg.WelcomeMessage))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.inputView())

	b.WriteString("\n")
	b.WriteString(m.theme.StateMarker.Render(m.PanelMarker() + " · " + m.InputMarker()))

	if m.cfg.ShowBranding {
		b.WriteString("\n")
		b.WriteString(m.theme.Branding.Width(m.barWidth() - 2).Render(brandingText))
	}

	return m.theme.Panel.Width(m.barWidth() - 2).Render(b.String())
}

// inputView renders the input surface, dimmed while disabled.
func (m *Model) inputView() string {
	container := m.theme.InputContainer
	if !m.InputEnabled() {
		container = m.theme.InputDisabled
	}
	return container.Render(m.textarea.View())
}

// renderTranscript formats the conversation history for the viewport.
func (m *Model) renderTranscript() string {
	var b strings.Builder
	for i, msg := range m.transcript.Messages() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		label, text := m.theme.AssistantLabel, m.theme.AssistantText
		if msg.Role == model.RoleUser {
			label, text = m.theme.UserLabel, m.theme.UserText
		}
		b.WriteString(label.Render(msg.Role.DisplayName()))
		b.WriteString("\n")
		b.WriteString(text.Render(msg.Content))
	}
	if m.typing.IsActive() {
		if m.transcript.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.typing.View())
	}
	return b.String()
}

// syncViewport refreshes the viewport content and pins it to the newest
// message.
func (m *Model) syncViewport() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// =============================================================================
// SIZING
// =============================================================================

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height

	inner := m.barWidth() - 4
	if inner < 10 {
		inner = 10
	}
	m.textarea.SetWidth(inner)

	vpHeight := (m.panelHeight() * panelHeightShare / panelHeightDiv) - m.textarea.Height() - 6
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = inner
	m.viewport.Height = vpHeight
	m.syncViewport()
}

func (m *Model) barWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m *Model) panelHeight() int {
	if m.height <= 0 {
		return defaultHeight
	}
	return m.height
}
