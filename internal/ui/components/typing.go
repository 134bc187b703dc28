// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatbar/internal/ui/styles"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingIndicator is the pending indicator shown while a send is in flight.
// Exactly one indicator is visible during the sending state; it disappears
// as soon as the exchange settles.
type TypingIndicator struct {
	spinner  spinner.Model
	isActive bool
}

// NewTypingIndicator creates an indicator with animated ASCII dots.
func NewTypingIndicator() TypingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
		FPS:    time.Second / 6,
	}
	return TypingIndicator{spinner: s}
}

// Start activates the indicator and returns its tick command.
func (t *TypingIndicator) Start() tea.Cmd {
	t.isActive = true
	return t.spinner.Tick
}

// Stop deactivates the indicator.
func (t *TypingIndicator) Stop() {
	t.isActive = false
}

// IsActive returns whether the indicator is currently shown.
func (t *TypingIndicator) IsActive() bool {
	return t.isActive
}

// Update handles spinner tick messages.
func (t TypingIndicator) Update(msg tea.Msg) (TypingIndicator, tea.Cmd) {
	if !t.isActive {
		return t, nil
	}
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return t, cmd
}

// View renders the indicator, or an empty string when inactive.
func (t TypingIndicator) View() string {
	if !t.isActive {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true).
		Render("typing" + t.spinner.View())
}
