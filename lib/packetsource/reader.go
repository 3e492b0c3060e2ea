// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package packetsource

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/bureau-foundation/netlog/lib/netlog"
)

// LevelSource reports the verbosity to capture at. *netlog.Controller
// satisfies it.
type LevelSource interface {
	LogLevel() netlog.LogLevel
}

// fixedLevel is a LevelSource that never changes.
type fixedLevel netlog.LogLevel

func (level fixedLevel) LogLevel() netlog.LogLevel { return netlog.LogLevel(level) }

// FixedLevel returns a LevelSource pinned to level.
func FixedLevel(level netlog.LogLevel) LevelSource { return fixedLevel(level) }

// flowState is the per-flow bookkeeping for one netlog source.
type flowState struct {
	sourceID int

	// initiator is the "network|transport" key of the first packet's
	// direction. Packets in that direction count as sent.
	initiator string
	closed    bool
}

// Reader decodes a pcap stream into netlog events. Not safe for
// concurrent use.
type Reader struct {
	packets  *pcapgo.Reader
	decoder  gopacket.Decoder
	levels   LevelSource
	flows    map[string]*flowState
	nextID   int
	closer   io.Closer
	packetNo int
}

// NewReader reads a pcap stream from r. levels is consulted for every
// packet.
func NewReader(r io.Reader, levels LevelSource) (*Reader, error) {
	packets, err := pcapgo.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading pcap header: %w", err)
	}
	return &Reader{
		packets: packets,
		decoder: packets.LinkType(),
		levels:  levels,
		flows:   make(map[string]*flowState),
		nextID:  1,
	}, nil
}

// Open opens the pcap file at path. Close the returned reader when
// done.
func Open(path string, levels LevelSource) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	reader, err := NewReader(file, levels)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	reader.closer = file
	return reader, nil
}

// Close releases the underlying file, if the reader owns one.
func (reader *Reader) Close() error {
	if reader.closer == nil {
		return nil
	}
	return reader.closer.Close()
}

// Packets returns the number of packets read so far.
func (reader *Reader) Packets() int { return reader.packetNo }

// Next reads one packet and returns the events it produced, possibly
// none. Returns io.EOF when the capture is exhausted.
func (reader *Reader) Next() ([]netlog.Event, error) {
	data, captureInfo, err := reader.packets.ReadPacketData()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("reading packet %d: %w", reader.packetNo+1, err)
	}
	reader.packetNo++

	packet := gopacket.NewPacket(data, reader.decoder, gopacket.DecodeOptions{Lazy: true, NoCopy: true})
	network := packet.NetworkLayer()
	transport := packet.TransportLayer()
	if network == nil || transport == nil {
		return nil, nil
	}

	level := reader.levels.LogLevel()
	template := netlog.Event{Time: captureInfo.Timestamp, Phase: netlog.PhaseNone}

	switch segment := transport.(type) {
	case *layers.TCP:
		return reader.tcpEvents(network.NetworkFlow(), segment, template, level), nil
	case *layers.UDP:
		return reader.udpEvents(network.NetworkFlow(), segment, template, level), nil
	default:
		return nil, nil
	}
}

// ReadAll drains the reader.
func (reader *Reader) ReadAll() ([]netlog.Event, error) {
	var events []netlog.Event
	for {
		batch, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, batch...)
	}
}

// flow returns the state for the flow a packet belongs to, creating it
// when the packet opens a new one. Both directions map to the same
// state.
func (reader *Reader) flow(network, transport gopacket.Flow) (*flowState, string, bool) {
	forward := network.String() + "|" + transport.String()
	if state, exists := reader.flows[forward]; exists {
		return state, forward, false
	}
	reverse := network.Reverse().String() + "|" + transport.Reverse().String()
	if state, exists := reader.flows[reverse]; exists {
		return state, forward, false
	}
	state := &flowState{sourceID: reader.nextID, initiator: forward}
	reader.nextID++
	reader.flows[forward] = state
	return state, forward, true
}

func (reader *Reader) tcpEvents(network gopacket.Flow, segment *layers.TCP, template netlog.Event, level netlog.LogLevel) []netlog.Event {
	state, direction, created := reader.flow(network, segment.TransportFlow())
	if state.closed {
		return nil
	}
	template.Source = netlog.SourceRef{ID: state.sourceID, Type: netlog.SourceSocket}

	var events []netlog.Event
	if created {
		connect := template
		connect.Type = netlog.EventTCPConnect
		connect.Phase = netlog.PhaseBegin
		connect.Params = map[string]any{
			netlog.ParamDescription: describe(network, int(segment.SrcPort), int(segment.DstPort)),
		}
		events = append(events, connect)
	}

	if len(segment.Payload) > 0 && level != netlog.LogBasic {
		eventType := netlog.EventSocketBytesReceived
		if direction == state.initiator {
			eventType = netlog.EventSocketBytesSent
		}
		events = append(events, byteEvent(template, eventType, segment.Payload, level))
	}

	if segment.FIN || segment.RST {
		state.closed = true
		closed := template
		closed.Type = netlog.EventSocketClosed
		closed.Phase = netlog.PhaseEnd
		events = append(events, closed)
	}
	return events
}

func (reader *Reader) udpEvents(network gopacket.Flow, datagram *layers.UDP, template netlog.Event, level netlog.LogLevel) []netlog.Event {
	state, direction, created := reader.flow(network, datagram.TransportFlow())
	if level == netlog.LogBasic || len(datagram.Payload) == 0 {
		return nil
	}
	template.Source = netlog.SourceRef{ID: state.sourceID, Type: netlog.SourceUDPSocket}

	eventType := netlog.EventUDPBytesReceived
	if direction == state.initiator {
		eventType = netlog.EventUDPBytesSent
	}
	event := byteEvent(template, eventType, datagram.Payload, level)
	if created {
		event.Params[netlog.ParamDescription] = describe(network, int(datagram.SrcPort), int(datagram.DstPort))
	}
	return []netlog.Event{event}
}

func byteEvent(template netlog.Event, eventType netlog.EventType, payload []byte, level netlog.LogLevel) netlog.Event {
	event := template
	event.Type = eventType
	event.Params = map[string]any{netlog.ParamByteCount: len(payload)}
	if level == netlog.LogAll {
		event.Params[netlog.ParamBytes] = hex.EncodeToString(payload)
	}
	return event
}

// describe renders a flow as "src:port -> dst:port".
func describe(network gopacket.Flow, sourcePort, destinationPort int) string {
	source, destination := network.Endpoints()
	return fmt.Sprintf("%s:%d -> %s:%d", source, sourcePort, destination, destinationPort)
}
