// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netlog

import (
	"fmt"
	"time"
)

// EventType names what happened. Values match the capture format
// written by "netlog dump".
type EventType string

const (
	EventTCPConnect          EventType = "TCP_CONNECT"
	EventSocketBytesSent     EventType = "SOCKET_BYTES_SENT"
	EventSocketBytesReceived EventType = "SOCKET_BYTES_RECEIVED"
	EventUDPBytesSent        EventType = "UDP_BYTES_SENT"
	EventUDPBytesReceived    EventType = "UDP_BYTES_RECEIVED"
	EventSocketClosed        EventType = "SOCKET_CLOSED"
)

// IsByteTransfer reports whether events of this type carry payload.
func (eventType EventType) IsByteTransfer() bool {
	switch eventType {
	case EventSocketBytesSent, EventSocketBytesReceived,
		EventUDPBytesSent, EventUDPBytesReceived:
		return true
	}
	return false
}

// Phase marks whether an event opens, closes, or stands alone within
// its source's timeline.
type Phase string

const (
	PhaseNone  Phase = "none"
	PhaseBegin Phase = "begin"
	PhaseEnd   Phase = "end"
)

// SourceType classifies the emitter of an event.
type SourceType string

const (
	SourceSocket    SourceType = "SOCKET"
	SourceUDPSocket SourceType = "UDP_SOCKET"
)

// SourceRef identifies the source an event belongs to.
type SourceRef struct {
	ID   int        `cbor:"id"`
	Type SourceType `cbor:"type"`
}

// Event is one captured network log record.
type Event struct {
	Time   time.Time      `cbor:"time"`
	Type   EventType      `cbor:"type"`
	Phase  Phase          `cbor:"phase"`
	Source SourceRef      `cbor:"source"`
	Params map[string]any `cbor:"params,omitempty"`

	// Passive is true for events captured before the viewer attached
	// (backfill) or loaded from a saved log.
	Passive bool `cbor:"passive,omitempty"`
}

// Param key conventions shared by producers and views.
const (
	ParamDescription = "description"
	ParamByteCount   = "byte_count"
	ParamBytes       = "bytes"
)

// LogLevel is the capture verbosity.
type LogLevel int

const (
	// LogAll captures everything, including payload bytes.
	LogAll LogLevel = iota
	// LogAllButBytes captures everything except payload bytes. Byte
	// events still report their byte_count.
	LogAllButBytes
	// LogBasic captures connection lifecycle events only.
	LogBasic
)

// String returns the configuration spelling of the level.
func (level LogLevel) String() string {
	switch level {
	case LogAll:
		return "all"
	case LogAllButBytes:
		return "all_but_bytes"
	case LogBasic:
		return "basic"
	default:
		return fmt.Sprintf("unknown(%d)", int(level))
	}
}

// ParseLogLevel parses the configuration spelling of a level.
func ParseLogLevel(name string) (LogLevel, error) {
	switch name {
	case "all":
		return LogAll, nil
	case "all_but_bytes":
		return LogAllButBytes, nil
	case "basic":
		return LogBasic, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (want all, all_but_bytes, or basic)", name)
	}
}
