// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/netlog/lib/netlog"
	"github.com/bureau-foundation/netlog/lib/widget"
)

// Tab IDs.
const (
	CaptureTabID = "capture"
	EventsTabID  = "events"
)

// EntriesMsg delivers a batch of captured events. The model adds them
// to the tracker, so observer callbacks run on the UI goroutine.
type EntriesMsg struct {
	Events []netlog.Event
}

// LoadedMsg replaces the tracker's contents with a saved log.
type LoadedMsg struct {
	Dump *netlog.Dump
	Path string
}

// ReplayDoneMsg reports that the packet replay stopped. Err is nil at
// end of capture.
type ReplayDoneMsg struct {
	Err error
}

// Config holds the dependencies of [NewModel].
type Config struct {
	Tracker *netlog.Tracker
	Logging netlog.LoggingController

	// PcapPath names the capture being replayed, if any.
	PcapPath string

	// ByteLogging is the initial byte-logging state and should agree
	// with Logging's initial level.
	ByteLogging bool
}

// statusLine is the message shown in place of the help line. It is
// shared by pointer so page callbacks can write it.
type statusLine struct {
	text     string
	level    slog.Level
	sequence int
}

func (status *statusLine) show(text string, level slog.Level) tea.Cmd {
	status.text = text
	status.level = level
	status.sequence++
	return status.fadeLater()
}

func (status *statusLine) fadeLater() tea.Cmd {
	sequence := status.sequence
	return tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
		return logRecordFadeMsg{sequence: sequence}
	})
}

func (status *statusLine) fade(sequence int) {
	if sequence == status.sequence {
		status.text = ""
	}
}

// regionView is a View bound to a page region. Both tab views are.
type regionView interface {
	View
	RegionID() string
}

// Model is the bubbletea model for the capture viewer.
type Model struct {
	keys  KeyMap
	theme Theme

	tracker *netlog.Tracker
	page    *widget.Page
	capture *CaptureView
	events  *EventsView
	tabs    *TabSwitcher
	status  *statusLine

	// source describes what is being viewed: a pcap or a loaded log.
	source    string
	replaying bool

	focus  int
	width  int
	height int
}

// NewModel builds the page, constructs the single capture view and the
// events view against config.Tracker, and activates the capture tab.
func NewModel(config Config) Model {
	page := NewPage(PageOptions{PcapPath: config.PcapPath, ByteLogging: config.ByteLogging})
	status := &statusLine{}
	page.OnNavigate = func(href string) {
		status.show("open "+href, slog.LevelInfo)
	}

	capture := NewCaptureView(page, config.Tracker, config.Logging)
	events := NewEventsView(page, config.Tracker)

	tabs := NewTabSwitcher()
	tabs.AddTab(CaptureTabID, "Capture", capture)
	tabs.AddTab(EventsTabID, "Events", events)

	return Model{
		keys:      DefaultKeyMap,
		theme:     DefaultTheme,
		tracker:   config.Tracker,
		page:      page,
		capture:   capture,
		events:    events,
		tabs:      tabs,
		status:    status,
		source:    config.PcapPath,
		replaying: config.PcapPath != "",
	}
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)

	case EntriesMsg:
		model.tracker.AddEntries(message.Events)
		return model, nil

	case LoadedMsg:
		if message.Dump == nil {
			return model, nil
		}
		surfaced := model.tracker.LoadLog(message.Dump)
		model.tabs.FinishLoad(surfaced)
		model.focus = 0
		model.source = message.Path
		model.replaying = false
		return model, model.status.show(
			fmt.Sprintf("loaded %d events from %s", len(message.Dump.Events), message.Path),
			slog.LevelInfo)

	case ReplayDoneMsg:
		model.replaying = false
		if message.Err != nil {
			return model, model.status.show("replay stopped: "+message.Err.Error(), slog.LevelError)
		}
		return model, model.status.show("end of capture", slog.LevelInfo)

	case logRecordMsg:
		return model, model.status.show(message.Summary, message.Level)

	case logRecordFadeMsg:
		model.status.fade(message.sequence)
		return model, nil
	}
	return model, nil
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit
	case key.Matches(message, model.keys.TabCapture):
		model.switchTab(CaptureTabID)
		return model, nil
	case key.Matches(message, model.keys.TabEvents):
		model.switchTab(EventsTabID)
		return model, nil
	case key.Matches(message, model.keys.FocusNext):
		model.moveFocus(1)
		return model, nil
	case key.Matches(message, model.keys.FocusPrevious):
		model.moveFocus(-1)
		return model, nil
	case key.Matches(message, model.keys.Activate):
		if id, ok := model.focusedID(); ok {
			return model, model.click(id)
		}
		return model, nil
	}

	switch model.tabs.Active().ID {
	case CaptureTabID:
		switch {
		case key.Matches(message, model.keys.ToggleByteLogging):
			return model, model.click(ByteLoggingCheckboxID)
		case key.Matches(message, model.keys.DeleteAll):
			return model, model.click(DeleteAllID)
		case key.Matches(message, model.keys.ToggleTip):
			return model, model.click(TipAnchorID)
		}
	case EventsTabID:
		switch {
		case key.Matches(message, model.keys.Up):
			model.events.MoveUp()
		case key.Matches(message, model.keys.Down):
			model.events.MoveDown()
		case key.Matches(message, model.keys.DeleteSelected):
			return model, model.click(EventsDeleteSelectedID)
		}
	}
	return model, nil
}

// click activates an element and schedules a fade if the click wrote
// the status line.
func (model *Model) click(id string) tea.Cmd {
	before := model.status.sequence
	if err := model.page.Click(id); err != nil {
		return model.status.show(err.Error(), slog.LevelError)
	}
	if model.status.sequence != before {
		return model.status.fadeLater()
	}
	return nil
}

func (model *Model) switchTab(id string) {
	if model.tabs.Switch(id) {
		model.focus = 0
	}
}

func (model *Model) focusable() []string {
	view, ok := model.tabs.Active().View.(regionView)
	if !ok {
		return nil
	}
	return model.page.Focusable(view.RegionID())
}

func (model *Model) moveFocus(delta int) {
	count := len(model.focusable())
	if count == 0 {
		model.focus = 0
		return
	}
	model.focus = ((model.focus+delta)%count + count) % count
}

func (model *Model) focusedID() (string, bool) {
	ids := model.focusable()
	if len(ids) == 0 {
		return "", false
	}
	return ids[min(model.focus, len(ids)-1)], true
}

// View implements tea.Model.
func (model Model) View() string {
	width := model.width
	if width <= 0 {
		width = 80
	}

	lines := []string{model.renderTabBar(width), ""}
	active := model.tabs.Active()
	if view, ok := active.View.(regionView); ok {
		focusedID, _ := model.focusedID()
		lines = model.renderRegion(lines, view.RegionID(), 0, focusedID)
	}
	if active.ID == EventsTabID {
		lines = append(lines, "")
		// Leave room for the status bar.
		rowHeight := 0
		if model.height > 0 {
			rowHeight = max(model.height-len(lines)-1, 1)
		}
		lines = append(lines, model.events.Render(width, rowHeight, model.theme, true)...)
	}

	if model.height > 0 {
		for len(lines) < model.height-1 {
			lines = append(lines, "")
		}
	}
	lines = append(lines, model.renderStatusBar(width))
	return strings.Join(lines, "\n")
}

func (model Model) renderTabBar(width int) string {
	activeStyle := lipgloss.NewStyle().Foreground(model.theme.TabActive).Bold(true).Underline(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(model.theme.TabInactive)

	active := model.tabs.Active()
	var parts []string
	for _, tab := range model.tabs.Tabs() {
		if tab == active {
			parts = append(parts, activeStyle.Render(tab.Label))
		} else {
			parts = append(parts, inactiveStyle.Render(tab.Label))
		}
	}

	bar := strings.Join(parts, "  ")
	if model.source != "" {
		source := model.source
		if model.replaying {
			source += " (replaying)"
		}
		bar += "   " + lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(source)
	}
	return ansi.Truncate(bar, width, "…")
}

// renderRegion appends the visible content of a region, depth-first.
func (model Model) renderRegion(lines []string, regionID string, indent int, focusedID string) []string {
	region := model.page.Region(regionID)
	if !region.Visible {
		return lines
	}

	padding := strings.Repeat(" ", indent)
	if region.Title != "" {
		header := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)
		lines = append(lines, padding+header.Render(region.Title), "")
	}

	normal := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	count := lipgloss.NewStyle().Foreground(model.theme.CountForeground).Bold(true)
	link := lipgloss.NewStyle().Foreground(model.theme.LinkForeground).Underline(true)
	focused := lipgloss.NewStyle().
		Background(model.theme.FocusBackground).
		Foreground(model.theme.FocusForeground)

	for _, childID := range region.Children {
		element, _ := model.page.Find(childID)
		var line string
		switch element := element.(type) {
		case *widget.Region:
			lines = model.renderRegion(lines, element.ID, indent+2, focusedID)
			continue
		case *widget.Text:
			if element.Label == "" {
				line = normal.Render(element.Content)
			} else {
				line = normal.Render(element.Label+": ") + count.Render(element.Content)
			}
		case *widget.Checkbox:
			mark := "[ ]"
			if element.Checked {
				mark = "[x]"
			}
			line = normal.Render(mark + " " + element.Label)
		case *widget.Button:
			line = normal.Render("[ " + element.Label + " ]")
		case *widget.Link:
			line = link.Render(element.Label)
		default:
			continue
		}
		if childID == focusedID {
			line = focused.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, padding+line)
	}
	return lines
}

func (model Model) renderStatusBar(width int) string {
	if model.status.text != "" {
		style := lipgloss.NewStyle().Foreground(model.theme.NormalText)
		switch {
		case model.status.level >= slog.LevelError:
			style = lipgloss.NewStyle().Foreground(model.theme.StatusError).Bold(true)
		case model.status.level >= slog.LevelWarn:
			style = lipgloss.NewStyle().Foreground(model.theme.StatusWarn)
		}
		return style.Render(ansi.Truncate(model.status.text, width, "…"))
	}

	bindings := []key.Binding{model.keys.FocusNext, model.keys.Activate}
	switch model.tabs.Active().ID {
	case CaptureTabID:
		bindings = append(bindings, model.keys.ToggleByteLogging, model.keys.DeleteAll, model.keys.ToggleTip)
	case EventsTabID:
		bindings = append(bindings, model.keys.Up, model.keys.Down, model.keys.DeleteSelected)
	}
	bindings = append(bindings, model.keys.TabCapture, model.keys.TabEvents, model.keys.Quit)

	var parts []string
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	help := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	return help.Render(ansi.Truncate(strings.Join(parts, " · "), width, "…"))
}

// CaptureView returns the model's capture view.
func (model Model) CaptureView() *CaptureView { return model.capture }

// EventsView returns the model's events view.
func (model Model) EventsView() *EventsView { return model.events }

// Page returns the model's element tree.
func (model Model) Page() *widget.Page { return model.page }
