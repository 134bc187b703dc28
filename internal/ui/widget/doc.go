// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package widget implements the chat widget as a Bubble Tea model.

The widget is a floating chat bar: collapsed it renders a single accent-
colored bar, expanded it adds a message panel with the transcript, a
pending indicator while an exchange is in flight, the input surface, and
an optional branding footer.

# State machine

The widget's behavior is governed by two tagged states instead of ad-hoc
booleans, so illegal combinations are unrepresentable:

  - ConversationState: Idle or Sending. A valid submit moves Idle to
    Sending; the exchange settling (success, backend failure, or transport
    failure) unconditionally moves Sending back to Idle. While Sending the
    input surface is disabled and exactly one pending indicator is shown.
    Submits while Sending, and submits of blank input, are silent no-ops.
  - PanelState: Collapsed or Expanded. Toggle flips it; a user message
    arriving while collapsed auto-expands, and auto-expand never collapses.

Which assistant text enters the transcript after an exchange settles is
decided by resolveReply, a pure function kept apart from all rendering so
the conversation logic is testable without a terminal.

# Concurrency

The only asynchronous work is the configuration fetch at bootstrap and one
message send per submit, both run as Bubble Tea commands. Because a submit
is rejected while Sending, at most one send is ever in flight per instance
and no response races are possible. Sends carry a bounded timeout so a hung
backend returns the machine to Idle.

# Usage

	cfg := config.Default()
	cfg.APIBaseURL = "https://api.example.com"
	cfg.WidgetKey = "wk_live_..."
	m := widget.New(cfg, client.New(cfg.APIBaseURL, cfg.WidgetKey))
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
*/
package widget
