// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration shared by
// netlog's on-disk formats.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2), so the
// same dump always produces identical bytes. Timestamps are written as
// RFC 3339 text with nanosecond precision so that event ordering in a
// saved log survives a round trip.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Stream use:
//
//	encoder := codec.NewEncoder(writer)
//	decoder := codec.NewDecoder(reader)
package codec
