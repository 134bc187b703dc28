// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string helpers shared across the widget:
// rune-safe and display-width-aware truncation for previews, and first-line
// extraction for multi-line messages.
package util
