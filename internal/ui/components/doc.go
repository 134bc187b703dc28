// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the chat widget.
//
// The widget deliberately keeps its component surface small: the only
// stateful component is the TypingIndicator, the pending indicator shown
// during an in-flight exchange. Everything else in the widget renders from
// the model's state directly.
package components
