// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"fmt"
	"slices"
)

// Element is implemented by every node kind.
type Element interface {
	// ElementID returns the element's page-unique ID.
	ElementID() string
}

// Text is a display node whose content is written by views.
type Text struct {
	ID      string
	Label   string // Static caption drawn before the content.
	Content string
}

func (text *Text) ElementID() string { return text.ID }

// SetText replaces the node's content.
func (text *Text) SetText(content string) { text.Content = content }

// Checkbox is a boolean control. Clicking flips Checked before the
// handler runs, so the handler observes the new state.
type Checkbox struct {
	ID      string
	Label   string
	Checked bool
	OnClick func(checkbox *Checkbox)
}

func (checkbox *Checkbox) ElementID() string { return checkbox.ID }

// Button is a push control.
type Button struct {
	ID      string
	Label   string
	OnClick func()
}

func (button *Button) ElementID() string { return button.ID }

// Link is an anchor. When clicked, OnClick runs first; unless it
// returns false, the page performs the default action of navigating
// to Href.
type Link struct {
	ID      string
	Label   string
	Href    string
	OnClick func() bool
}

func (link *Link) ElementID() string { return link.ID }

// Region groups child elements and can be shown or hidden.
type Region struct {
	ID       string
	Title    string
	Visible  bool
	Children []string
}

func (region *Region) ElementID() string { return region.ID }

// SetVisible shows or hides the region.
func (region *Region) SetVisible(visible bool) { region.Visible = visible }

// Page is a table of elements keyed by ID. Not safe for concurrent
// use; pages are owned by the UI goroutine.
type Page struct {
	elements map[string]Element
	order    []string

	// OnNavigate performs a link's default action. Nil discards.
	OnNavigate func(href string)
}

// NewPage returns an empty page.
func NewPage() *Page {
	return &Page{elements: make(map[string]Element)}
}

// Add inserts elements. Panics on a duplicate ID.
func (page *Page) Add(elements ...Element) {
	for _, element := range elements {
		id := element.ElementID()
		if _, exists := page.elements[id]; exists {
			panic(fmt.Sprintf("widget: duplicate element ID %q", id))
		}
		page.elements[id] = element
		page.order = append(page.order, id)
	}
}

// Find returns the element with id.
func (page *Page) Find(id string) (Element, bool) {
	element, exists := page.elements[id]
	return element, exists
}

// mustFind returns the element with id as a T, panicking when it is
// missing or of another kind.
func mustFind[T Element](page *Page, id string) T {
	element, exists := page.elements[id]
	if !exists {
		panic(fmt.Sprintf("widget: no element with ID %q", id))
	}
	typed, ok := element.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("widget: element %q is %T, not %T", id, element, zero))
	}
	return typed
}

// Text returns the text node with id. Panics if absent.
func (page *Page) Text(id string) *Text { return mustFind[*Text](page, id) }

// Checkbox returns the checkbox with id. Panics if absent.
func (page *Page) Checkbox(id string) *Checkbox { return mustFind[*Checkbox](page, id) }

// Button returns the button with id. Panics if absent.
func (page *Page) Button(id string) *Button { return mustFind[*Button](page, id) }

// Link returns the link with id. Panics if absent.
func (page *Page) Link(id string) *Link { return mustFind[*Link](page, id) }

// Region returns the region with id. Panics if absent.
func (page *Page) Region(id string) *Region { return mustFind[*Region](page, id) }

// Click activates the element with id the way a pointer click would.
// Text nodes and regions are inert.
func (page *Page) Click(id string) error {
	element, exists := page.elements[id]
	if !exists {
		return fmt.Errorf("click: no element with ID %q", id)
	}

	switch element := element.(type) {
	case *Checkbox:
		element.Checked = !element.Checked
		if element.OnClick != nil {
			element.OnClick(element)
		}
	case *Button:
		if element.OnClick != nil {
			element.OnClick()
		}
	case *Link:
		proceed := true
		if element.OnClick != nil {
			proceed = element.OnClick()
		}
		if proceed && page.OnNavigate != nil {
			page.OnNavigate(element.Href)
		}
	}
	return nil
}

// Focusable returns the IDs of clickable elements inside the visible
// regions listed, in region then child order.
func (page *Page) Focusable(regionIDs ...string) []string {
	var ids []string
	for _, regionID := range regionIDs {
		region, ok := page.elements[regionID].(*Region)
		if !ok || !region.Visible {
			continue
		}
		for _, childID := range region.Children {
			switch page.elements[childID].(type) {
			case *Checkbox, *Button, *Link:
				ids = append(ids, childID)
			case *Region:
				ids = append(ids, page.Focusable(childID)...)
			}
		}
	}
	return ids
}

// Regions returns the IDs of every region in insertion order.
func (page *Page) Regions() []string {
	return slices.DeleteFunc(slices.Clone(page.order), func(id string) bool {
		_, isRegion := page.elements[id].(*Region)
		return !isRegion
	})
}
