// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netui

import "github.com/bureau-foundation/netlog/lib/widget"

// View is the show/hide capability every tab provides.
type View interface {
	Show(visible bool)
	IsVisible() bool
}

// DivView shows and hides one page region. Views embed it to get the
// [View] capability.
type DivView struct {
	region *widget.Region
}

// NewDivView binds to the region with regionID. Panics if the page has
// no such region.
func NewDivView(page *widget.Page, regionID string) DivView {
	return DivView{region: page.Region(regionID)}
}

// Show sets the region's visibility.
func (view DivView) Show(visible bool) { view.region.SetVisible(visible) }

// IsVisible reports whether the region is shown.
func (view DivView) IsVisible() bool { return view.region.Visible }

// RegionID returns the ID of the region this view controls.
func (view DivView) RegionID() string { return view.region.ID }
