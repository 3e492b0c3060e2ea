// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/netlog/lib/netlog"
)

func socketEvent(sourceID int, eventType netlog.EventType, description string) netlog.Event {
	event := netlog.Event{
		Type:   eventType,
		Source: netlog.SourceRef{ID: sourceID, Type: netlog.SourceSocket},
	}
	if description != "" {
		event.Params = map[string]any{netlog.ParamDescription: description}
	}
	return event
}

func TestEventsViewRows(t *testing.T) {
	tracker := netlog.NewTracker(nil)
	page := NewPage(PageOptions{})
	view := NewEventsView(page, tracker)

	if len(view.Rows()) != 0 {
		t.Fatalf("expected no rows, got %d", len(view.Rows()))
	}
	if summary := page.Text(EventsSummaryID).Content; summary != "0 sources, 0 events" {
		t.Errorf("summary = %q", summary)
	}

	tracker.AddEntries([]netlog.Event{
		socketEvent(2, netlog.EventTCPConnect, "10.0.0.1:5000 -> 10.0.0.2:80"),
		socketEvent(1, netlog.EventTCPConnect, "10.0.0.1:5001 -> 10.0.0.3:443"),
		socketEvent(2, netlog.EventSocketBytesSent, ""),
		socketEvent(2, netlog.EventSocketClosed, ""),
	})

	rows := view.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID != 1 || rows[1].ID != 2 {
		t.Errorf("rows not in ID order: %d, %d", rows[0].ID, rows[1].ID)
	}
	if rows[1].EventCount != 3 || !rows[1].Inactive {
		t.Errorf("row 2 = %+v, want 3 events and inactive", rows[1])
	}
	if rows[0].Description != "10.0.0.1:5001 -> 10.0.0.3:443" {
		t.Errorf("row 1 description = %q", rows[0].Description)
	}
	if summary := page.Text(EventsSummaryID).Content; summary != "2 sources, 4 events" {
		t.Errorf("summary = %q", summary)
	}
}

func TestEventsViewCursorAndDelete(t *testing.T) {
	tracker := netlog.NewTracker(nil)
	page := NewPage(PageOptions{})
	view := NewEventsView(page, tracker)
	tracker.AddEntries([]netlog.Event{
		socketEvent(1, netlog.EventTCPConnect, "a"),
		socketEvent(2, netlog.EventTCPConnect, "b"),
		socketEvent(3, netlog.EventTCPConnect, "c"),
	})

	view.MoveUp()
	if view.Cursor() != 0 {
		t.Errorf("cursor moved above the first row: %d", view.Cursor())
	}
	view.MoveDown()
	view.MoveDown()
	view.MoveDown()
	if view.Cursor() != 2 {
		t.Errorf("cursor = %d, want clamped to 2", view.Cursor())
	}

	if err := page.Click(EventsDeleteSelectedID); err != nil {
		t.Fatal(err)
	}
	if _, exists := tracker.Source(3); exists {
		t.Error("source 3 should be deleted")
	}
	if len(view.Rows()) != 2 || view.Cursor() != 1 {
		t.Errorf("after delete: %d rows, cursor %d", len(view.Rows()), view.Cursor())
	}

	tracker.DeleteAllSourceEntries()
	if _, ok := view.Selected(); ok {
		t.Error("expected no selection after delete-all")
	}
	// Deleting with nothing selected is a no-op.
	view.DeleteSelected()
}

func TestEventsViewSurfacesOnLoad(t *testing.T) {
	tracker := netlog.NewTracker(nil)
	view := NewEventsView(NewPage(PageOptions{}), tracker)

	surfaced := tracker.LoadLog(&netlog.Dump{Events: []netlog.Event{socketEvent(7, netlog.EventTCPConnect, "x")}})
	if len(surfaced) != 1 || surfaced[0] != netlog.Observer(view) {
		t.Errorf("surfaced = %v, want the events view", surfaced)
	}
	if len(view.Rows()) != 1 || view.Rows()[0].ID != 7 {
		t.Errorf("rows after load = %+v", view.Rows())
	}
}

func TestEventsViewRenderTruncates(t *testing.T) {
	tracker := netlog.NewTracker(nil)
	view := NewEventsView(NewPage(PageOptions{}), tracker)

	if lines := view.Render(40, 0, DefaultTheme, true); len(lines) != 1 || !strings.Contains(lines[0], "no sources") {
		t.Errorf("empty render = %q", lines)
	}

	tracker.AddEntries([]netlog.Event{
		socketEvent(1, netlog.EventTCPConnect, strings.Repeat("long description ", 20)),
	})
	lines := view.Render(40, 0, DefaultTheme, false)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if width := ansi.StringWidth(lines[0]); width > 40 {
		t.Errorf("line width %d exceeds 40", width)
	}
}

func TestEventsViewRenderScrollsWithCursor(t *testing.T) {
	tracker := netlog.NewTracker(nil)
	view := NewEventsView(NewPage(PageOptions{}), tracker)
	var events []netlog.Event
	for sourceID := 1; sourceID <= 10; sourceID++ {
		events = append(events, socketEvent(sourceID, netlog.EventTCPConnect, fmt.Sprintf("flow-%02d", sourceID)))
	}
	tracker.AddEntries(events)

	lines := view.Render(60, 3, DefaultTheme, true)
	if len(lines) != 3 || !strings.Contains(lines[0], "flow-01") {
		t.Fatalf("initial window = %q", lines)
	}

	for range 5 {
		view.MoveDown()
	}
	lines = view.Render(60, 3, DefaultTheme, true)
	if !strings.Contains(lines[2], "flow-06") {
		t.Errorf("window should end at the cursor row, got %q", lines)
	}

	view.MoveUp()
	view.MoveUp()
	view.MoveUp()
	lines = view.Render(60, 3, DefaultTheme, true)
	if !strings.Contains(lines[0], "flow-03") {
		t.Errorf("window should start at the cursor row, got %q", lines)
	}
}
