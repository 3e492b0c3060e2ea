// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"io"
	"math"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Encoder and Decoder are the cbor stream types, configured by
// [NewEncoder] and [NewDecoder].
type (
	Encoder = cbor.Encoder
	Decoder = cbor.Decoder
)

var encMode, decMode = mustModes()

func mustModes() (cbor.EncMode, cbor.DecMode) {
	encOptions := cbor.CoreDetEncOptions()
	encOptions.Time = cbor.TimeRFC3339Nano
	enc, err := encOptions.EncMode()
	if err != nil {
		panic("codec: building encode mode: " + err.Error())
	}

	dec, err := cbor.DecOptions{
		// Event params decode as map[string]any at every depth.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		// A long capture holds far more events than the library's
		// default array cap of 131072.
		MaxArrayElements: math.MaxInt32,
		// A repeated key means the file is corrupt.
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("codec: building decode mode: " + err.Error())
	}
	return enc, dec
}

// Marshal encodes v deterministically: map keys are sorted, so equal
// dumps produce identical bytes.
func Marshal(v any) ([]byte, error) { return encMode.Marshal(v) }

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error { return decMode.Unmarshal(data, v) }

// NewEncoder returns a deterministic stream encoder writing to w.
func NewEncoder(w io.Writer) *Encoder { return encMode.NewEncoder(w) }

// NewDecoder returns a stream decoder reading from r.
func NewDecoder(r io.Reader) *Decoder { return decMode.NewDecoder(r) }

// Diagnose renders data in CBOR diagnostic notation (RFC 8949 §8),
// as printed by "netlog stat --diagnose".
func Diagnose(data []byte) (string, error) { return cbor.Diagnose(data) }
