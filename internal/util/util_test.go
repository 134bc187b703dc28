// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"unicode preserved", "héllo wörld", 8, "héllo..."},
		{"tiny max no ellipsis", "hello", 2, "he"},
		{"zero max", "hello", 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateRunes(tc.input, tc.maxRunes); got != tc.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tc.input, tc.maxRunes, got, tc.want)
			}
		})
	}
}

func TestTruncateWidth_CJK(t *testing.T) {
	// Each CJK character is two columns wide; the result must respect the
	// column bound, not the rune count.
	got := TruncateWidth("你好世界", 5)
	if runewidth.StringWidth(got) > 5 {
		t.Errorf("TruncateWidth(你好世界, 5) = %q, wider than 5 columns", got)
	}
	if w := TruncateWidth("你好世界", 8); w != "你好世界" {
		t.Errorf("TruncateWidth should not truncate a string that fits, got %q", w)
	}
	if TruncateWidth("anything", 0) != "" {
		t.Error("zero width should return empty string")
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"single line", "single line"},
		{"first\nsecond", "first"},
		{"first\r\nsecond", "first"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := FirstLine(tc.input); got != tc.want {
			t.Errorf("FirstLine(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
