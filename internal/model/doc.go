// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the widget transcript and session.
//
// This package defines the core domain types used throughout the widget for
// representing the conversation exchanged with the remote backend.
//
// # Key Types
//
//   - Transcript: Append-only, ordered sequence of messages for one session
//   - Message: Single message with role, content, and timestamp
//   - Session: Opaque session identity, replaceable by a server-issued value
//   - Role: Message role enumeration (user, assistant)
//
// # Usage
//
// Create a transcript and append messages:
//
//	tr := model.NewTranscript()
//	tr.AddUser("Hello!")
//	tr.AddAssistant("Hi there, how can I help?")
//
// Messages are immutable once appended; the transcript never reorders,
// duplicates, or deletes them within a session.
package model
