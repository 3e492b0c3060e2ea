// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netui

import "github.com/charmbracelet/lipgloss"

// renderScrollbar returns one cell per row of a vertical scrollbar for
// a list of total rows of which visible are shown starting at offset.
// When everything fits the thumb fills the track.
func renderScrollbar(theme Theme, height, total, visible, offset int) []string {
	if height <= 0 {
		return nil
	}

	thumb := lipgloss.NewStyle().Foreground(theme.FocusForeground).Render("┃")
	track := lipgloss.NewStyle().Foreground(theme.BorderColor).Render("│")

	cells := make([]string, height)
	if total <= visible || total <= 0 {
		for index := range cells {
			cells[index] = thumb
		}
		return cells
	}

	thumbSize := max(height*visible/total, 1)
	thumbOffset := 0
	if scrollable, trackRange := total-visible, height-thumbSize; trackRange > 0 {
		thumbOffset = offset * trackRange / scrollable
	}
	thumbOffset = min(thumbOffset, height-thumbSize)

	for index := range cells {
		if index >= thumbOffset && index < thumbOffset+thumbSize {
			cells[index] = thumb
		} else {
			cells[index] = track
		}
	}
	return cells
}
