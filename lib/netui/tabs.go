// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netui

import "github.com/bureau-foundation/netlog/lib/netlog"

// Tab is one entry of the tab bar.
type Tab struct {
	ID     string
	Label  string
	View   View
	Hidden bool // Link removed from the tab bar.
}

// TabSwitcher shows exactly one of its tabs at a time.
type TabSwitcher struct {
	tabs   []*Tab
	active int
}

// NewTabSwitcher returns a switcher with no tabs.
func NewTabSwitcher() *TabSwitcher {
	return &TabSwitcher{active: -1}
}

// AddTab appends a tab. The first tab added becomes active.
func (switcher *TabSwitcher) AddTab(id, label string, view View) {
	switcher.tabs = append(switcher.tabs, &Tab{ID: id, Label: label, View: view})
	if switcher.active < 0 {
		switcher.activate(len(switcher.tabs) - 1)
	} else {
		view.Show(false)
	}
}

// Switch activates the tab with id. Returns false when no visible tab
// has that ID.
func (switcher *TabSwitcher) Switch(id string) bool {
	for index, tab := range switcher.tabs {
		if tab.ID == id && !tab.Hidden {
			switcher.activate(index)
			return true
		}
	}
	return false
}

// Active returns the active tab, or nil when there are no tabs.
func (switcher *TabSwitcher) Active() *Tab {
	if switcher.active < 0 {
		return nil
	}
	return switcher.tabs[switcher.active]
}

// Tabs returns the tabs whose links are shown, in order.
func (switcher *TabSwitcher) Tabs() []*Tab {
	var visible []*Tab
	for _, tab := range switcher.tabs {
		if !tab.Hidden {
			visible = append(visible, tab)
		}
	}
	return visible
}

// FinishLoad applies the result of loading a log: tabs whose view is
// among surfaced stay in the bar and the first of them becomes active,
// every other tab is hidden. When nothing asked to be surfaced the bar
// is left as it was.
func (switcher *TabSwitcher) FinishLoad(surfaced []netlog.Observer) {
	first := -1
	for index, tab := range switcher.tabs {
		tab.Hidden = !containsView(surfaced, tab.View)
		if !tab.Hidden && first < 0 {
			first = index
		}
	}
	if first < 0 {
		for _, tab := range switcher.tabs {
			tab.Hidden = false
		}
		return
	}
	switcher.activate(first)
}

func (switcher *TabSwitcher) activate(index int) {
	switcher.active = index
	for position, tab := range switcher.tabs {
		tab.View.Show(position == index)
	}
}

func containsView(observers []netlog.Observer, view View) bool {
	for _, observer := range observers {
		if any(observer) == any(view) {
			return true
		}
	}
	return false
}
