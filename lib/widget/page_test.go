// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"slices"
	"strings"
	"testing"
)

func testPage() *Page {
	page := NewPage()
	page.Add(
		&Region{ID: "main", Visible: true, Children: []string{"label", "toggle", "clear", "more", "details"}},
		&Text{ID: "label", Label: "Count"},
		&Checkbox{ID: "toggle", Label: "Enable"},
		&Button{ID: "clear", Label: "Clear"},
		&Link{ID: "more", Label: "More", Href: "#more"},
		&Region{ID: "details", Children: []string{"detail-link"}},
		&Link{ID: "detail-link", Href: "#detail"},
	)
	return page
}

func expectPanic(t *testing.T, want string, function func()) {
	t.Helper()
	defer func() {
		recovered := recover()
		if recovered == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		if message, ok := recovered.(string); !ok || !strings.Contains(message, want) {
			t.Fatalf("panic = %v, want message containing %q", recovered, want)
		}
	}()
	function()
}

func TestTypedLookup(t *testing.T) {
	page := testPage()
	page.Text("label").SetText("42")
	if page.Text("label").Content != "42" {
		t.Errorf("content = %q, want 42", page.Text("label").Content)
	}
	if page.Region("main").ID != "main" {
		t.Error("region lookup returned the wrong element")
	}
}

func TestLookupPanicsOnMissingOrMistyped(t *testing.T) {
	page := testPage()
	expectPanic(t, `no element with ID "absent"`, func() { page.Text("absent") })
	expectPanic(t, `element "clear" is *widget.Button`, func() { page.Checkbox("clear") })
}

func TestAddPanicsOnDuplicate(t *testing.T) {
	page := testPage()
	expectPanic(t, `duplicate element ID "label"`, func() { page.Add(&Text{ID: "label"}) })
}

func TestClickCheckboxFlipsBeforeHandler(t *testing.T) {
	page := testPage()
	var observed []bool
	page.Checkbox("toggle").OnClick = func(checkbox *Checkbox) {
		observed = append(observed, checkbox.Checked)
	}

	for range 3 {
		if err := page.Click("toggle"); err != nil {
			t.Fatalf("Click: %v", err)
		}
	}
	if !slices.Equal(observed, []bool{true, false, true}) {
		t.Errorf("handler observed %v, want [true false true]", observed)
	}
}

func TestClickButton(t *testing.T) {
	page := testPage()
	clicks := 0
	page.Button("clear").OnClick = func() { clicks++ }
	if err := page.Click("clear"); err != nil {
		t.Fatalf("Click: %v", err)
	}
	if clicks != 1 {
		t.Errorf("handler ran %d times, want 1", clicks)
	}
}

func TestClickLinkDefaultAction(t *testing.T) {
	tests := []struct {
		name         string
		handler      func() bool
		wantNavigate bool
	}{
		{"no handler navigates", nil, true},
		{"handler returning true navigates", func() bool { return true }, true},
		{"handler returning false suppresses", func() bool { return false }, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			page := testPage()
			var navigated []string
			page.OnNavigate = func(href string) { navigated = append(navigated, href) }
			page.Link("more").OnClick = test.handler

			if err := page.Click("more"); err != nil {
				t.Fatalf("Click: %v", err)
			}
			if got := len(navigated) == 1; got != test.wantNavigate {
				t.Errorf("navigated = %v, want navigation %v", navigated, test.wantNavigate)
			}
		})
	}
}

func TestClickUnknownID(t *testing.T) {
	if err := testPage().Click("nowhere"); err == nil {
		t.Fatal("expected error for unknown ID")
	}
}

func TestClickInertElements(t *testing.T) {
	page := testPage()
	if err := page.Click("label"); err != nil {
		t.Errorf("Click(text) = %v", err)
	}
	if err := page.Click("main"); err != nil {
		t.Errorf("Click(region) = %v", err)
	}
}

func TestFocusableSkipsHiddenRegions(t *testing.T) {
	page := testPage()
	if got := page.Focusable("main"); !slices.Equal(got, []string{"toggle", "clear", "more"}) {
		t.Errorf("focusable = %v", got)
	}

	page.Region("details").SetVisible(true)
	if got := page.Focusable("main"); !slices.Equal(got, []string{"toggle", "clear", "more", "detail-link"}) {
		t.Errorf("focusable with details shown = %v", got)
	}

	page.Region("main").SetVisible(false)
	if got := page.Focusable("main"); len(got) != 0 {
		t.Errorf("focusable in hidden region = %v", got)
	}
}

func TestRegionsInInsertionOrder(t *testing.T) {
	if got := testPage().Regions(); !slices.Equal(got, []string{"main", "details"}) {
		t.Errorf("regions = %v", got)
	}
}
