// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netui implements the netlog terminal viewer. Built on
// bubbletea (Elm architecture), it renders a fixed [widget.Page] with
// one region per tab and wires each tab's view to the event registry.
//
// Views compose a [DivView] for show/hide rather than sharing a base
// type. Each view locates its controls on the page by fixed ID at
// construction and registers itself with the [netlog.Tracker] as an
// observer:
//
//   - [CaptureView] toggles byte logging, shows actively and passively
//     captured event counts, deletes all events, and reveals a
//     command-line tip.
//   - [EventsView] lists captured sources and deletes the selected one.
//
// [TabSwitcher] decides which tab is visible, including which tabs to
// hide after a saved log is loaded.
//
// Data flow:
//
//	[packetsource.Replay goroutine]
//	        | program.Send(EntriesMsg)
//	    [Model.Update] -> tracker.AddEntries -> observer callbacks
//	        |
//	  [terminal output]
//
// Registry mutations made through the model happen on the bubbletea
// goroutine, so observer callbacks and page writes never race with
// rendering.
package netui
