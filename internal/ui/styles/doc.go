// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the chat widget.
//
// Fixed surface and text colors use lipgloss.AdaptiveColor so the widget
// reads correctly on light and dark terminals. The accent colors are not
// fixed: NewTheme derives them at bootstrap from the merged configuration's
// primary color, with the hover shade computed by Darken.
//
// Darken is the widget's only color arithmetic: it parses a 6-hex-digit
// color into three 8-bit channels, subtracts a proportional amount from
// each, clamps, and re-encodes. It is pure and deterministic so hosts can
// rely on stable derived colors for a given configuration.
package styles
