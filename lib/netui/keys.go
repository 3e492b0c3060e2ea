// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the viewer.
type KeyMap struct {
	// Control focus within the active tab.
	FocusNext     key.Binding
	FocusPrevious key.Binding
	Activate      key.Binding // Click the focused control.

	// Capture tab shortcuts, equivalent to clicking the control.
	ToggleByteLogging key.Binding
	DeleteAll         key.Binding
	ToggleTip         key.Binding

	// Events tab.
	Up             key.Binding
	Down           key.Binding
	DeleteSelected key.Binding

	// Tab switching.
	TabCapture key.Binding
	TabEvents  key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	FocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next control"),
	),
	FocusPrevious: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "prev control"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "activate"),
	),
	ToggleByteLogging: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "byte logging"),
	),
	DeleteAll: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete all"),
	),
	ToggleTip: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "command-line tip"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	DeleteSelected: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete source"),
	),
	TabCapture: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "capture"),
	),
	TabEvents: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "events"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
