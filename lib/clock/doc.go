// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock paces packet replay through an injectable ticker.
//
// Production code passes [Real]. Tests pass a [FakeClock] and step
// time by hand:
//
//	fake := clock.Fake(start)
//	go packetsource.Replay(ctx, reader, packetsource.Options{Clock: fake}, sink)
//	fake.WaitForTickers(1)
//	fake.Advance(time.Second)
package clock
