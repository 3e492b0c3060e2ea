// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package packetsource turns a pcap capture into netlog events.
//
// [Reader] decodes packets with gopacket and tracks TCP and UDP flows.
// Each flow becomes a netlog source: the first packet of a TCP flow
// emits TCP_CONNECT, payload-carrying packets emit byte events in the
// direction relative to the flow's initiator, and FIN or RST emits
// SOCKET_CLOSED. Packets without an IP network layer and a TCP or UDP
// transport layer produce no events.
//
// Verbosity is consulted per packet through [LevelSource]: payload
// bytes are attached only at netlog.LogAll, and byte events are
// dropped entirely at netlog.LogBasic.
//
// [Replay] feeds a reader into a sink the way a live capture would: a
// passive backfill batch first, then paced active batches on a clock
// ticker.
package packetsource
