// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netlog

import (
	"log/slog"
	"slices"
	"sync"
)

// Observer receives change notifications from a [Tracker]. Callbacks
// are invoked after the tracker's lock is released, so an observer may
// call back into the tracker (to re-read counts, for example).
type Observer interface {
	// OnSourceEntriesUpdated is called after a batch of events has been
	// added. entries holds every source touched by the batch.
	OnSourceEntriesUpdated(entries []*SourceEntry)

	// OnSourceEntriesDeleted is called after the listed sources were
	// removed.
	OnSourceEntriesDeleted(sourceIDs []int)

	// OnAllSourceEntriesDeleted is called after every entry was removed.
	OnAllSourceEntriesDeleted()

	// OnLoadLogFinish is called after a saved log replaced the
	// tracker's contents. Returning false asks the host not to surface
	// this observer's view.
	OnLoadLogFinish(dump *Dump) bool
}

// SourceEntry is every event seen so far for one source.
type SourceEntry struct {
	ref         SourceRef
	description string
	events      []Event
	active      int
	passive     int
	inactive    bool
}

// ID returns the source ID.
func (entry *SourceEntry) ID() int { return entry.ref.ID }

// Type returns the source type.
func (entry *SourceEntry) Type() SourceType { return entry.ref.Type }

// Description returns the first description param seen for the
// source, typically the flow endpoints.
func (entry *SourceEntry) Description() string { return entry.description }

// Events returns a copy of the source's events in arrival order.
func (entry *SourceEntry) Events() []Event { return slices.Clone(entry.events) }

// EventCount returns the number of events held for the source.
func (entry *SourceEntry) EventCount() int { return len(entry.events) }

// IsInactive reports whether the source has closed.
func (entry *SourceEntry) IsInactive() bool { return entry.inactive }

// Tracker is the process-wide registry of captured events. It is safe
// for concurrent use; observers see callbacks in mutation order per
// goroutine.
type Tracker struct {
	mutex     sync.Mutex
	logger    *slog.Logger
	entries   map[int]*SourceEntry
	active    int
	passive   int
	observers []Observer
}

// NewTracker returns an empty tracker. A nil logger discards.
func NewTracker(logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Tracker{
		logger:  logger,
		entries: make(map[int]*SourceEntry),
	}
}

// AddObserver registers observer for change notifications. Registering
// the same observer twice has no effect, so it never receives a
// notification twice for one change.
func (tracker *Tracker) AddObserver(observer Observer) {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	if slices.Contains(tracker.observers, observer) {
		return
	}
	tracker.observers = append(tracker.observers, observer)
}

// RemoveObserver unregisters observer. Unknown observers are ignored.
func (tracker *Tracker) RemoveObserver(observer Observer) {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	tracker.observers = slices.DeleteFunc(slices.Clone(tracker.observers), func(candidate Observer) bool {
		return candidate == observer
	})
}

// AddEntries records a batch of events and notifies observers with the
// sources the batch touched.
func (tracker *Tracker) AddEntries(events []Event) {
	if len(events) == 0 {
		return
	}

	tracker.mutex.Lock()
	var updated []*SourceEntry
	seen := make(map[int]bool)
	for _, event := range events {
		entry, exists := tracker.entries[event.Source.ID]
		if !exists {
			entry = &SourceEntry{ref: event.Source}
			tracker.entries[event.Source.ID] = entry
		}
		entry.events = append(entry.events, event)
		if entry.description == "" {
			if description, ok := event.Params[ParamDescription].(string); ok {
				entry.description = description
			}
		}
		if event.Type == EventSocketClosed {
			entry.inactive = true
		}
		if event.Passive {
			entry.passive++
			tracker.passive++
		} else {
			entry.active++
			tracker.active++
		}
		if !seen[entry.ID()] {
			seen[entry.ID()] = true
			updated = append(updated, entry)
		}
	}
	observers := tracker.observers
	tracker.mutex.Unlock()

	for _, observer := range observers {
		observer.OnSourceEntriesUpdated(updated)
	}
}

// DeleteSources removes the listed sources. IDs that are not tracked
// are ignored; observers are told only about sources actually removed.
func (tracker *Tracker) DeleteSources(sourceIDs []int) {
	tracker.mutex.Lock()
	var deleted []int
	for _, sourceID := range sourceIDs {
		entry, exists := tracker.entries[sourceID]
		if !exists {
			continue
		}
		tracker.active -= entry.active
		tracker.passive -= entry.passive
		delete(tracker.entries, sourceID)
		deleted = append(deleted, sourceID)
	}
	observers := tracker.observers
	tracker.mutex.Unlock()

	if len(deleted) == 0 {
		return
	}
	tracker.logger.Debug("deleted source entries", "count", len(deleted))
	for _, observer := range observers {
		observer.OnSourceEntriesDeleted(deleted)
	}
}

// DeleteAllSourceEntries removes every entry and zeroes both counters.
func (tracker *Tracker) DeleteAllSourceEntries() {
	tracker.mutex.Lock()
	tracker.entries = make(map[int]*SourceEntry)
	tracker.active = 0
	tracker.passive = 0
	observers := tracker.observers
	tracker.mutex.Unlock()

	tracker.logger.Info("deleted all source entries")
	for _, observer := range observers {
		observer.OnAllSourceEntriesDeleted()
	}
}

// LoadLog replaces the tracker's contents with a saved log. Every
// loaded event counts as passively captured. Returns the observers
// that asked to be surfaced from OnLoadLogFinish, in registration
// order.
func (tracker *Tracker) LoadLog(dump *Dump) []Observer {
	tracker.DeleteAllSourceEntries()

	events := make([]Event, len(dump.Events))
	for index, event := range dump.Events {
		event.Passive = true
		events[index] = event
	}
	tracker.AddEntries(events)

	tracker.mutex.Lock()
	observers := tracker.observers
	tracker.mutex.Unlock()

	var surfaced []Observer
	for _, observer := range observers {
		if observer.OnLoadLogFinish(dump) {
			surfaced = append(surfaced, observer)
		}
	}
	tracker.logger.Info("loaded log",
		"events", len(events),
		"surfaced_views", len(surfaced),
	)
	return surfaced
}

// NumActivelyCapturedEvents returns the number of live-captured events
// currently held.
func (tracker *Tracker) NumActivelyCapturedEvents() int {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	return tracker.active
}

// NumPassivelyCapturedEvents returns the number of backfilled or
// loaded events currently held.
func (tracker *Tracker) NumPassivelyCapturedEvents() int {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	return tracker.passive
}

// Source returns the entry for sourceID.
func (tracker *Tracker) Source(sourceID int) (*SourceEntry, bool) {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	entry, exists := tracker.entries[sourceID]
	return entry, exists
}

// Sources returns every entry ordered by source ID.
func (tracker *Tracker) Sources() []*SourceEntry {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	entries := make([]*SourceEntry, 0, len(tracker.entries))
	for _, entry := range tracker.entries {
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b *SourceEntry) int { return a.ID() - b.ID() })
	return entries
}

// Events returns every held event grouped by source, sources in ID
// order. Used when saving the current capture.
func (tracker *Tracker) Events() []Event {
	var events []Event
	for _, entry := range tracker.Sources() {
		tracker.mutex.Lock()
		events = append(events, entry.events...)
		tracker.mutex.Unlock()
	}
	return events
}
