// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds all the styled components for one widget instance.
// The accent styles are derived from the configured primary color; the
// hover shade comes from Darken and is applied to the bar while a send
// is in flight.
type Theme struct {
	// Derived accent colors
	Primary lipgloss.Color
	Hover   lipgloss.Color

	// ==========================================================================
	// BAR STYLES
	// ==========================================================================

	Bar        lipgloss.Style
	BarActive  lipgloss.Style
	BarTitle   lipgloss.Style
	BarPreview lipgloss.Style

	// ==========================================================================
	// PANEL STYLES
	// ==========================================================================

	Panel    lipgloss.Style
	Greeting lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserLabel      lipgloss.Style
	UserText       lipgloss.Style
	AssistantLabel lipgloss.Style
	AssistantText  lipgloss.Style
	Pending        lipgloss.Style

	// ==========================================================================
	// INPUT & FOOTER STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputDisabled  lipgloss.Style
	Branding       lipgloss.Style
	StateMarker    lipgloss.Style
}

// NewTheme builds a theme from a validated 6-hex-digit primary color.
func NewTheme(primaryColor string) *Theme {
	primary := lipgloss.Color(primaryColor)
	hover := lipgloss.Color(HoverShade(primaryColor))

	t := &Theme{
		Primary: primary,
		Hover:   hover,
	}

	t.Bar = lipgloss.NewStyle().
		Background(primary).
		Foreground(TextInverse).
		Padding(0, 1)

	t.BarActive = t.Bar.Background(hover)

	t.BarTitle = lipgloss.NewStyle().
		Foreground(TextInverse).
		Bold(true)

	t.BarPreview = lipgloss.NewStyle().
		Foreground(TextInverse).
		Faint(true)

	t.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(0, 1)

	t.Greeting = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.UserLabel = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	t.UserText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.AssistantLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.AssistantText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.Pending = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.InputContainer = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(Overlay)

	t.InputDisabled = t.InputContainer.
		BorderForeground(TextMuted).
		Faint(true)

	t.Branding = lipgloss.NewStyle().
		Foreground(TextMuted).
		Align(lipgloss.Right)

	t.StateMarker = lipgloss.NewStyle().
		Foreground(TextMuted)

	return t
}
