// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main panel background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Slightly darker/lighter surface for the input container
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, role prefixes
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Placeholder, branding, state markers
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on the primary-colored bar
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// =============================================================================
// COLOR DERIVATION
// =============================================================================

// hoverAmount is the fraction of full channel range subtracted from the
// primary color to produce its hover shade.
const hoverAmount = 0.1

// Darken subtracts a proportional amount from each channel of a
// 6-hex-digit color (leading '#' optional) and re-encodes it.
//
// amount is a fraction of full channel range; 0.1 darkens each channel by
// about 25 of 255. Channels clamp to [0, 255]. Input is assumed well-formed;
// the result for malformed input is unspecified (validation happens at
// configuration-merge time).
func Darken(hexColor string, amount float64) string {
	s := strings.TrimPrefix(hexColor, "#")

	delta := int(amount * 255)
	channels := [3]int{}
	for i := 0; i < 3 && (i+1)*2 <= len(s); i++ {
		v, err := strconv.ParseUint(s[i*2:(i+1)*2], 16, 16)
		if err != nil {
			continue
		}
		channels[i] = int(v) - delta
		if channels[i] < 0 {
			channels[i] = 0
		}
		if channels[i] > 255 {
			channels[i] = 255
		}
	}

	return fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2])
}

// HoverShade returns the hover-state shade derived from a base color.
func HoverShade(hexColor string) string {
	return Darken(hexColor, hoverAmount)
}
