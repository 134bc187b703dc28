// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

// =============================================================================
// LAYOUT
// =============================================================================

// Layout is computed in abstract units so the sizing rules stay pure and
// testable, then mapped onto textarea rows. One row is unitsPerRow units.
const (
	// inputMinHeight is the floor for the input surface.
	inputMinHeight = 40

	// inputMaxHeight caps the input surface; past this point the
	// textarea scrolls internally instead of growing.
	inputMaxHeight = 80

	// containerMinHeight is the floor for the input container.
	containerMinHeight = 56

	// containerPadding is the container's chrome around the input.
	containerPadding = 16

	// unitsPerRow maps abstract units onto textarea rows.
	unitsPerRow = 20
)

// resizeInput computes the input and container heights for the given
// content height. It is pure: the same content height always yields the
// same result, so repeated application is a fixed point.
func resizeInput(contentHeight int) (inputHeight, containerHeight int) {
	inputHeight = contentHeight
	if inputHeight < inputMinHeight {
		inputHeight = inputMinHeight
	}
	if inputHeight > inputMaxHeight {
		inputHeight = inputMaxHeight
	}
	containerHeight = inputHeight + containerPadding
	if containerHeight < containerMinHeight {
		containerHeight = containerMinHeight
	}
	return inputHeight, containerHeight
}

// applyInputResize measures the textarea's current content and resizes
// the input surface and its container to fit.
func (m *Model) applyInputResize() {
	content := m.textarea.LineCount() * unitsPerRow
	m.inputHeight, m.containerHeight = resizeInput(content)
	m.textarea.SetHeight(m.inputHeight / unitsPerRow)
}
