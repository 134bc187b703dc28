// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides widget configuration loading and merging.
//
// Configuration is built in two phases: the embedding host supplies caller
// options, then fields fetched from the widget configuration service are
// overlaid on top (remote values win on conflict). The merged result is
// immutable once the widget finishes bootstrapping.
//
// The demo host additionally supports a TOML configuration file
// (~/.chatbar/config.toml) for the caller-supplied phase.
package config
