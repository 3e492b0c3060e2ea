// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netlog models captured network log events and the registry
// that owns them.
//
// Events are grouped by the source (connection, socket) that emitted
// them. [Tracker] keeps one [SourceEntry] per source and counts events
// as either actively captured (streamed while the viewer was attached)
// or passively captured (backfilled from before it attached, or loaded
// from a saved log). Views subscribe to the tracker through [Observer]
// and treat it as the sole source of truth: they issue commands
// (delete, load) and re-read counts from callbacks, never mutating
// entries themselves.
//
// [Controller] owns the global capture verbosity ([LogLevel]). Capture
// producers read the level per packet, so changes take effect on the
// next captured event.
//
// [WriteDump] and [ReadDump] persist a capture as a zstd-compressed
// CBOR [Dump].
package netlog
