// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netui

import "github.com/bureau-foundation/netlog/lib/widget"

// TipTextID is the text node inside the command-line tip region.
const TipTextID = "capture-view-tip-text"

// PageOptions configures [NewPage].
type PageOptions struct {
	// PcapPath is the capture being viewed, shown in the tip.
	PcapPath string

	// ByteLogging is the initial state of the byte-logging checkbox.
	// It should match the controller's initial level.
	ByteLogging bool
}

// NewPage builds the element tree for both tabs. The tip region starts
// hidden; tab visibility is owned by the [TabSwitcher].
func NewPage(options PageOptions) *widget.Page {
	page := widget.NewPage()
	page.Add(
		&widget.Checkbox{
			ID:      ByteLoggingCheckboxID,
			Label:   "Include raw bytes (logs payloads)",
			Checked: options.ByteLogging,
		},
		&widget.Text{ID: PassivelyCapturedCountID, Label: "Passively captured events"},
		&widget.Text{ID: ActivelyCapturedCountID, Label: "Actively captured events"},
		&widget.Button{ID: DeleteAllID, Label: "Delete all captured events"},
		&widget.Link{ID: TipAnchorID, Label: "Capture from the command line", Href: "#" + TipDivID},
		&widget.Text{ID: TipTextID, Content: CommandLineTip(options.PcapPath)},
		&widget.Region{
			ID:       TipDivID,
			Children: []string{TipTextID},
		},
		&widget.Region{
			ID:    CaptureMainBoxID,
			Title: "Capture",
			Children: []string{
				ByteLoggingCheckboxID,
				PassivelyCapturedCountID,
				ActivelyCapturedCountID,
				DeleteAllID,
				TipAnchorID,
				TipDivID,
			},
		},

		&widget.Text{ID: EventsSummaryID},
		&widget.Button{ID: EventsDeleteSelectedID, Label: "Delete selected source"},
		&widget.Region{
			ID:       EventsMainBoxID,
			Title:    "Events",
			Children: []string{EventsSummaryID, EventsDeleteSelectedID},
		},
	)
	return page
}
