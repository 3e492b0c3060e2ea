// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package widget is the fixed-layout element table that netlog's
// terminal views render from.
//
// A [Page] holds elements by ID: [Text] nodes whose content views
// write, [Checkbox] and [Button] controls with click handlers, [Link]
// anchors whose default action (navigation to Href) can be suppressed
// by their handler, and [Region] containers with a visibility flag.
// Views look their controls up by fixed ID at construction; a missing
// or mistyped ID is a programming error and panics.
//
// There is no layout engine. The renderer walks regions in the order
// they were added and draws each child by kind.
package widget
