// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netlog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/bureau-foundation/netlog/lib/codec"
)

// DumpVersion is the current saved-log format version.
const DumpVersion = 1

// dumpMagic precedes the compressed body of every saved log.
var dumpMagic = []byte("NETLOG1\n")

// ErrNotDump is returned by [ReadDump] when the input does not start
// with the saved-log magic.
var ErrNotDump = errors.New("not a netlog dump")

// Dump is a saved capture.
type Dump struct {
	Version      int       `cbor:"version"`
	Created      time.Time `cbor:"created"`
	LogLevel     string    `cbor:"log_level"`
	UserComments string    `cbor:"user_comments,omitempty"`
	Events       []Event   `cbor:"events"`
}

// WriteDump writes dump to w as magic followed by zstd-compressed
// CBOR.
func WriteDump(w io.Writer, dump *Dump) error {
	if _, err := w.Write(dumpMagic); err != nil {
		return fmt.Errorf("writing dump header: %w", err)
	}

	compressor, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}
	if err := codec.NewEncoder(compressor).Encode(dump); err != nil {
		compressor.Close()
		return fmt.Errorf("encoding dump: %w", err)
	}
	if err := compressor.Close(); err != nil {
		return fmt.Errorf("flushing dump: %w", err)
	}
	return nil
}

// ReadDump reads a dump written by [WriteDump].
func ReadDump(r io.Reader) (*Dump, error) {
	buffered := bufio.NewReader(r)
	header := make([]byte, len(dumpMagic))
	if _, err := io.ReadFull(buffered, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrNotDump
		}
		return nil, fmt.Errorf("reading dump header: %w", err)
	}
	if !bytes.Equal(header, dumpMagic) {
		return nil, ErrNotDump
	}

	decompressor, err := zstd.NewReader(buffered)
	if err != nil {
		return nil, fmt.Errorf("creating zstd reader: %w", err)
	}
	defer decompressor.Close()

	var dump Dump
	if err := codec.NewDecoder(decompressor).Decode(&dump); err != nil {
		return nil, fmt.Errorf("decoding dump: %w", err)
	}
	if dump.Version > DumpVersion {
		return nil, fmt.Errorf("dump version %d is newer than supported version %d", dump.Version, DumpVersion)
	}
	return &dump, nil
}

// LoadDumpFile reads a dump from path.
func LoadDumpFile(path string) (*Dump, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadDump(file)
}

// SaveDumpFile writes dump to path, replacing any existing file.
func SaveDumpFile(path string, dump *Dump) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDump(file, dump); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
