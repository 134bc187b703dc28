// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package client implements the HTTP client for the widget backend.
//
// Two endpoints exist: the configuration service
// (GET {base}/widget/{key}/config) and the chat exchange
// (POST {base}/widget/{key}/chat). Failures divide into transport errors
// (no response received; returned as wrapped errors) and backend-reported
// failures (*BackendError carrying the HTTP status). Callers classify with
// errors.As and never see a partial response.
package client
