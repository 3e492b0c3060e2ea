// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netui

import (
	"fmt"
	"strconv"

	"github.com/bureau-foundation/netlog/lib/netlog"
	"github.com/bureau-foundation/netlog/lib/widget"
)

// Page element IDs owned by the capture tab.
const (
	CaptureMainBoxID         = "capture-view-tab-content"
	ByteLoggingCheckboxID    = "capture-view-byte-logging-checkbox"
	PassivelyCapturedCountID = "capture-view-passively-captured-count"
	ActivelyCapturedCountID  = "capture-view-actively-captured-count"
	DeleteAllID              = "capture-view-delete-all"
	TipAnchorID              = "capture-view-tip-anchor"
	TipDivID                 = "capture-view-tip-div"
)

// EventRegistry is the part of [netlog.Tracker] the capture tab uses.
type EventRegistry interface {
	NumActivelyCapturedEvents() int
	NumPassivelyCapturedEvents() int
	DeleteAllSourceEntries()
	AddObserver(observer netlog.Observer)
}

// observerRemover is implemented by registries that support
// unsubscribing. *netlog.Tracker does.
type observerRemover interface {
	RemoveObserver(observer netlog.Observer)
}

// CaptureView is the capture tab: a byte-logging toggle, live counts
// of captured events, a delete-all button, and a command-line tip.
//
// Construct exactly one per page with [NewCaptureView]. The view only
// issues commands to the registry and the logging controller; every
// counter change arrives through its observer callbacks.
type CaptureView struct {
	DivView

	registry EventRegistry

	activelyCapturedCount  *widget.Text
	passivelyCapturedCount *widget.Text
	tip                    *widget.Region
}

// NewCaptureView binds the capture tab's controls on page, shows the
// registry's current counts, and registers the view as an observer of
// registry. Panics if any control is missing from page.
func NewCaptureView(page *widget.Page, registry EventRegistry, logging netlog.LoggingController) *CaptureView {
	view := &CaptureView{
		DivView:                NewDivView(page, CaptureMainBoxID),
		registry:               registry,
		activelyCapturedCount:  page.Text(ActivelyCapturedCountID),
		passivelyCapturedCount: page.Text(PassivelyCapturedCountID),
		tip:                    page.Region(TipDivID),
	}

	page.Checkbox(ByteLoggingCheckboxID).OnClick = func(checkbox *widget.Checkbox) {
		setByteLogging(logging, checkbox.Checked)
	}
	page.Button(DeleteAllID).OnClick = registry.DeleteAllSourceEntries
	page.Link(TipAnchorID).OnClick = view.toggleCommandLineTip

	view.updateEventCounts()
	registry.AddObserver(view)
	return view
}

// Close unregisters the view from its registry, when the registry
// supports it.
func (view *CaptureView) Close() {
	if remover, ok := view.registry.(observerRemover); ok {
		remover.RemoveObserver(view)
	}
}

// OnSourceEntriesUpdated implements [netlog.Observer].
func (view *CaptureView) OnSourceEntriesUpdated([]*netlog.SourceEntry) {
	view.updateEventCounts()
}

// OnSourceEntriesDeleted implements [netlog.Observer].
func (view *CaptureView) OnSourceEntriesDeleted([]int) {
	view.updateEventCounts()
}

// OnAllSourceEntriesDeleted implements [netlog.Observer].
func (view *CaptureView) OnAllSourceEntriesDeleted() {
	view.updateEventCounts()
}

// OnLoadLogFinish implements [netlog.Observer]. A loaded log is
// historical, so the capture tab asks not to be surfaced.
func (view *CaptureView) OnLoadLogFinish(*netlog.Dump) bool {
	return false
}

// TipVisible reports whether the command-line tip is shown.
func (view *CaptureView) TipVisible() bool { return view.tip.Visible }

// toggleCommandLineTip flips the tip's visibility. Returns false so the
// anchor's default navigation does not run.
func (view *CaptureView) toggleCommandLineTip() bool {
	view.tip.SetVisible(!view.tip.Visible)
	return false
}

func (view *CaptureView) updateEventCounts() {
	view.activelyCapturedCount.SetText(strconv.Itoa(view.registry.NumActivelyCapturedEvents()))
	view.passivelyCapturedCount.SetText(strconv.Itoa(view.registry.NumPassivelyCapturedEvents()))
}

func setByteLogging(logging netlog.LoggingController, enabled bool) {
	if enabled {
		logging.SetLogLevel(netlog.LogAll)
	} else {
		logging.SetLogLevel(netlog.LogAllButBytes)
	}
}

// CommandLineTip returns the command that captures pcapPath to a saved
// log with payload bytes included.
func CommandLineTip(pcapPath string) string {
	if pcapPath == "" {
		pcapPath = "<capture.pcap>"
	}
	return fmt.Sprintf("netlog dump --pcap %s --log-level %s --output capture.netlog", pcapPath, netlog.LogAll)
}
