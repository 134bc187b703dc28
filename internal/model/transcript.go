// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript holds the ordered, append-only message history for one widget
// session. Messages are never reordered, duplicated, or removed.
type Transcript struct {
	messages  []*Message
	UpdatedAt time.Time
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		messages: make([]*Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Add appends a message to the transcript.
func (t *Transcript) Add(msg *Message) {
	t.messages = append(t.messages, msg)
	t.UpdatedAt = time.Now()
}

// AddUser creates and appends a user message.
func (t *Transcript) AddUser(content string) *Message {
	msg := NewUserMessage(content)
	t.Add(msg)
	return msg
}

// AddAssistant creates and appends an assistant message.
func (t *Transcript) AddAssistant(content string) *Message {
	msg := NewAssistantMessage(content)
	t.Add(msg)
	return msg
}

// Last returns the most recent message, or nil if empty.
func (t *Transcript) Last() *Message {
	if len(t.messages) == 0 {
		return nil
	}
	return t.messages[len(t.messages)-1]
}

// LastAssistant returns the most recent assistant message, or nil.
func (t *Transcript) LastAssistant() *Message {
	for i := len(t.messages) - 1; i >= 0; i-- {
		if t.messages[i].Role == RoleAssistant {
			return t.messages[i]
		}
	}
	return nil
}

// Messages returns the message history in insertion order.
func (t *Transcript) Messages() []*Message {
	return t.messages
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// IsEmpty returns true if there are no messages.
func (t *Transcript) IsEmpty() bool {
	return len(t.messages) == 0
}
