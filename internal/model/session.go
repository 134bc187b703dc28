// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SESSION TYPE
// =============================================================================

// Session holds the opaque session identity for one widget instance.
// The backend may issue a replacement identifier after any successful
// exchange; Replace swaps it in wholesale (values are never merged).
type Session struct {
	ID        string
	CreatedAt time.Time
}

// NewSession creates a session with a freshly generated identifier.
func NewSession() *Session {
	return &Session{
		ID:        NewSessionID(),
		CreatedAt: time.Now(),
	}
}

// Replace swaps the session identifier for a server-issued value.
// Empty values are ignored so a backend that omits the field keeps
// the current session intact.
func (s *Session) Replace(id string) {
	if id != "" {
		s.ID = id
	}
}

// NewSessionID returns a probabilistically-unique opaque identifier.
// It combines a random component with a timestamp component so two calls
// in the same instant still differ with overwhelming probability.
func NewSessionID() string {
	return "sess_" + uuid.NewString() + "_" + strconv.FormatInt(time.Now().UnixNano(), 36)
}
