// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the viewer. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Focused control.
	FocusBackground lipgloss.Color
	FocusForeground lipgloss.Color

	// Tab bar.
	TabActive   lipgloss.Color
	TabInactive lipgloss.Color

	// Counter values and link labels.
	CountForeground lipgloss.Color
	LinkForeground  lipgloss.Color

	// Source rows: closed sources render faint.
	InactiveSource lipgloss.Color

	// Status bar log messages.
	StatusWarn  lipgloss.Color
	StatusError lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	FocusBackground: lipgloss.Color("236"),
	FocusForeground: lipgloss.Color("255"),

	TabActive:   lipgloss.Color("255"),
	TabInactive: lipgloss.Color("241"),

	CountForeground: lipgloss.Color("114"), // green
	LinkForeground:  lipgloss.Color("75"),  // blue

	InactiveSource: lipgloss.Color("240"),

	StatusWarn:  lipgloss.Color("220"), // amber
	StatusError: lipgloss.Color("196"), // red

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
}
