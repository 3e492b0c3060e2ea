// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package packetsource

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/bureau-foundation/netlog/lib/clock"
	"github.com/bureau-foundation/netlog/lib/netlog"
)

// Default pacing for [Replay].
const (
	DefaultBatchSize = 16
	DefaultInterval  = 250 * time.Millisecond
)

// Options controls [Replay] pacing.
type Options struct {
	// Backfill is the number of leading packets delivered at once as
	// passively captured events before live replay begins.
	Backfill int

	// BatchSize is the number of packets read per tick. Zero uses
	// DefaultBatchSize.
	BatchSize int

	// Interval is the tick period. Zero uses DefaultInterval.
	Interval time.Duration

	// Clock drives the ticker. Nil uses clock.Real().
	Clock clock.Clock
}

// Replay reads reader to the end, delivering events to sink. The
// backfill batch is marked passive; later batches are active. Batches
// with no events are not delivered. Returns nil at end of capture or
// ctx.Err() on cancellation. sink is called on Replay's goroutine.
func Replay(ctx context.Context, reader *Reader, options Options, sink func([]netlog.Event)) error {
	if options.BatchSize <= 0 {
		options.BatchSize = DefaultBatchSize
	}
	if options.Interval <= 0 {
		options.Interval = DefaultInterval
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}

	if options.Backfill > 0 {
		backfill, err := readBatch(reader, options.Backfill)
		for index := range backfill {
			backfill[index].Passive = true
		}
		if len(backfill) > 0 {
			sink(backfill)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	ticker := options.Clock.NewTicker(options.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		batch, err := readBatch(reader, options.BatchSize)
		if len(batch) > 0 {
			sink(batch)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// readBatch reads up to packets packets. The returned error is io.EOF
// when the capture ended during the batch; events read before the end
// are still returned.
func readBatch(reader *Reader, packets int) ([]netlog.Event, error) {
	var events []netlog.Event
	for count := 0; count < packets; count++ {
		batch, err := reader.Next()
		if err != nil {
			return events, err
		}
		events = append(events, batch...)
	}
	return events, nil
}
