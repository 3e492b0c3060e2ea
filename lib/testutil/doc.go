// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil holds channel helpers shared by netlog tests.
//
// [RequireReceive] wraps the select-with-timeout
// pattern so tests that wait on goroutines (packet replay, program
// message delivery) never hang forever. [RequireEmpty] asserts that a
// channel has nothing buffered, for checking that no extra batch or
// notification was produced.
//
// Helpers call t.Fatalf on failure.
package testutil
