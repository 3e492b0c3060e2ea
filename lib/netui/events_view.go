// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/netlog/lib/netlog"
	"github.com/bureau-foundation/netlog/lib/widget"
)

// Page element IDs owned by the events tab.
const (
	EventsMainBoxID        = "events-view-tab-content"
	EventsSummaryID        = "events-view-summary"
	EventsDeleteSelectedID = "events-view-delete-selected"
)

// SourceRegistry is the part of [netlog.Tracker] the events tab uses.
type SourceRegistry interface {
	Sources() []*netlog.SourceEntry
	DeleteSources(sourceIDs []int)
	AddObserver(observer netlog.Observer)
}

// SourceRow is one rendered line of the events tab.
type SourceRow struct {
	ID          int
	Type        netlog.SourceType
	Description string
	EventCount  int
	Inactive    bool
}

// EventsView is the events tab: one row per source with its event
// count, a cursor, and deletion of the selected source.
type EventsView struct {
	DivView

	registry SourceRegistry
	summary  *widget.Text
	rows     []SourceRow
	cursor   int
	offset   int // first row drawn by Render
}

// NewEventsView binds the events tab on page and registers it as an
// observer of registry.
func NewEventsView(page *widget.Page, registry SourceRegistry) *EventsView {
	view := &EventsView{
		DivView:  NewDivView(page, EventsMainBoxID),
		registry: registry,
		summary:  page.Text(EventsSummaryID),
	}
	page.Button(EventsDeleteSelectedID).OnClick = view.DeleteSelected
	view.refresh()
	registry.AddObserver(view)
	return view
}

// OnSourceEntriesUpdated implements [netlog.Observer].
func (view *EventsView) OnSourceEntriesUpdated([]*netlog.SourceEntry) { view.refresh() }

// OnSourceEntriesDeleted implements [netlog.Observer].
func (view *EventsView) OnSourceEntriesDeleted([]int) { view.refresh() }

// OnAllSourceEntriesDeleted implements [netlog.Observer].
func (view *EventsView) OnAllSourceEntriesDeleted() { view.refresh() }

// OnLoadLogFinish implements [netlog.Observer]. Loaded logs are
// browsed here, so the tab asks to be surfaced.
func (view *EventsView) OnLoadLogFinish(*netlog.Dump) bool {
	view.refresh()
	view.cursor = 0
	view.offset = 0
	return true
}

// Rows returns the current rows in source ID order.
func (view *EventsView) Rows() []SourceRow { return view.rows }

// Cursor returns the selected row index.
func (view *EventsView) Cursor() int { return view.cursor }

// Selected returns the row under the cursor, if any.
func (view *EventsView) Selected() (SourceRow, bool) {
	if len(view.rows) == 0 {
		return SourceRow{}, false
	}
	return view.rows[view.cursor], true
}

// MoveUp moves the cursor one row up.
func (view *EventsView) MoveUp() {
	if view.cursor > 0 {
		view.cursor--
	}
}

// MoveDown moves the cursor one row down.
func (view *EventsView) MoveDown() {
	if view.cursor < len(view.rows)-1 {
		view.cursor++
	}
}

// DeleteSelected asks the registry to delete the source under the
// cursor. The row disappears when the deletion callback arrives.
func (view *EventsView) DeleteSelected() {
	row, ok := view.Selected()
	if !ok {
		return
	}
	view.registry.DeleteSources([]int{row.ID})
}

func (view *EventsView) refresh() {
	sources := view.registry.Sources()
	view.rows = make([]SourceRow, 0, len(sources))
	events := 0
	for _, source := range sources {
		view.rows = append(view.rows, SourceRow{
			ID:          source.ID(),
			Type:        source.Type(),
			Description: source.Description(),
			EventCount:  source.EventCount(),
			Inactive:    source.IsInactive(),
		})
		events += source.EventCount()
	}
	view.cursor = min(view.cursor, max(len(view.rows)-1, 0))
	view.summary.SetText(fmt.Sprintf("%d sources, %d events", len(view.rows), events))
}

// Render draws the rows in a window of at most height lines, each
// truncated to width cells, with a scrollbar in the last column. The
// window follows the cursor. height <= 0 draws every row. The selected
// row is highlighted when focused is true.
func (view *EventsView) Render(width, height int, theme Theme, focused bool) []string {
	if len(view.rows) == 0 {
		return []string{lipgloss.NewStyle().Foreground(theme.FaintText).Render("  (no sources)")}
	}
	if height <= 0 || height > len(view.rows) {
		height = len(view.rows)
	}

	// Keep the cursor inside the window.
	view.offset = min(view.offset, view.cursor)
	view.offset = max(view.offset, view.cursor-height+1)
	view.offset = min(view.offset, len(view.rows)-height)

	normal := lipgloss.NewStyle().Foreground(theme.NormalText)
	inactive := lipgloss.NewStyle().Foreground(theme.InactiveSource)
	selected := lipgloss.NewStyle().
		Background(theme.FocusBackground).
		Foreground(theme.FocusForeground)

	scrollbar := renderScrollbar(theme, height, len(view.rows), height, view.offset)
	textWidth := max(width-2, 1)

	lines := make([]string, 0, height)
	for index := view.offset; index < view.offset+height; index++ {
		row := view.rows[index]
		line := fmt.Sprintf("  %6d  %-10s %6d  %s", row.ID, row.Type, row.EventCount, row.Description)
		line = ansi.Truncate(line, textWidth, "…")
		if padding := textWidth - ansi.StringWidth(line); padding > 0 {
			line += strings.Repeat(" ", padding)
		}

		style := normal
		switch {
		case focused && index == view.cursor:
			style = selected
		case row.Inactive:
			style = inactive
		}
		lines = append(lines, style.Render(line)+" "+scrollbar[index-view.offset])
	}
	return lines
}
