// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"time"
)

// FakeClock is a Clock whose time only moves when Advance is called.
// Safe for concurrent use.
type FakeClock struct {
	mutex   sync.Mutex
	now     time.Time
	tickers []*fakeTicker
	changed *sync.Cond
}

type fakeTicker struct {
	next     time.Time
	interval time.Duration
	ticks    chan time.Time
}

// Fake returns a FakeClock reading start.
func Fake(start time.Time) *FakeClock {
	fake := &FakeClock{now: start}
	fake.changed = sync.NewCond(&fake.mutex)
	return fake
}

// Now returns the fake time.
func (f *FakeClock) Now() time.Time {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.now
}

// NewTicker registers a ticker whose first tick is due d after the
// current fake time.
func (f *FakeClock) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}
	f.mutex.Lock()
	defer f.mutex.Unlock()

	ticker := &fakeTicker{
		next:     f.now.Add(d),
		interval: d,
		ticks:    make(chan time.Time, 1),
	}
	f.tickers = append(f.tickers, ticker)
	f.changed.Broadcast()
	return &Ticker{C: ticker.ticks, stop: func() { f.remove(ticker) }}
}

// Advance moves time forward by d. Every ticker that came due ticks
// once, however many intervals d spans.
func (f *FakeClock) Advance(d time.Duration) {
	f.mutex.Lock()
	f.now = f.now.Add(d)
	now := f.now
	var due []*fakeTicker
	for _, ticker := range f.tickers {
		if ticker.next.After(now) {
			continue
		}
		due = append(due, ticker)
		for !ticker.next.After(now) {
			ticker.next = ticker.next.Add(ticker.interval)
		}
	}
	f.mutex.Unlock()

	for _, ticker := range due {
		select {
		case ticker.ticks <- now:
		default:
		}
	}
}

// WaitForTickers blocks until at least n tickers are running. Tests
// call it before Advance so the goroutine under test has registered.
func (f *FakeClock) WaitForTickers(n int) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	for len(f.tickers) < n {
		f.changed.Wait()
	}
}

// Tickers returns the number of running tickers.
func (f *FakeClock) Tickers() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return len(f.tickers)
}

func (f *FakeClock) remove(target *fakeTicker) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	for i, ticker := range f.tickers {
		if ticker == target {
			f.tickers = append(f.tickers[:i], f.tickers[i+1:]...)
			f.changed.Broadcast()
			return
		}
	}
}
