// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netlog

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func sampleDump() *Dump {
	connect := testEvent(1, EventTCPConnect, false)
	connect.Phase = PhaseBegin
	connect.Params = map[string]any{ParamDescription: "10.0.0.1:5000 -> 10.0.0.2:443"}
	sent := testEvent(1, EventSocketBytesSent, false)
	sent.Params = map[string]any{ParamByteCount: 4, ParamBytes: "deadbeef"}
	return &Dump{
		Version:      DumpVersion,
		Created:      time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		LogLevel:     LogAll.String(),
		UserComments: "handshake stall",
		Events:       []Event{connect, sent},
	}
}

func TestDumpRoundTrip(t *testing.T) {
	var buffer bytes.Buffer
	if err := WriteDump(&buffer, sampleDump()); err != nil {
		t.Fatalf("WriteDump: %v", err)
	}
	if !bytes.HasPrefix(buffer.Bytes(), dumpMagic) {
		t.Fatal("dump does not start with magic")
	}

	dump, err := ReadDump(&buffer)
	if err != nil {
		t.Fatalf("ReadDump: %v", err)
	}
	if dump.UserComments != "handshake stall" || dump.LogLevel != "all" {
		t.Errorf("metadata = %+v", dump)
	}
	if len(dump.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(dump.Events))
	}
	if dump.Events[0].Params[ParamDescription] != "10.0.0.1:5000 -> 10.0.0.2:443" {
		t.Errorf("description = %v", dump.Events[0].Params[ParamDescription])
	}
	if dump.Events[1].Params[ParamBytes] != "deadbeef" {
		t.Errorf("bytes = %v", dump.Events[1].Params[ParamBytes])
	}
	if !dump.Events[1].Time.Equal(sampleDump().Events[1].Time) {
		t.Errorf("event time = %v", dump.Events[1].Time)
	}
}

func TestReadDumpRejectsForeignInput(t *testing.T) {
	for _, input := range []string{"", "NET", "PCAPDATA-not-netlog"} {
		_, err := ReadDump(bytes.NewReader([]byte(input)))
		if !errors.Is(err, ErrNotDump) {
			t.Errorf("ReadDump(%q) error = %v, want ErrNotDump", input, err)
		}
	}
}

func TestReadDumpRejectsNewerVersion(t *testing.T) {
	dump := sampleDump()
	dump.Version = DumpVersion + 1
	var buffer bytes.Buffer
	if err := WriteDump(&buffer, dump); err != nil {
		t.Fatalf("WriteDump: %v", err)
	}
	if _, err := ReadDump(&buffer); err == nil {
		t.Fatal("expected error for newer dump version")
	}
}

func TestDumpFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.netlog")
	if err := SaveDumpFile(path, sampleDump()); err != nil {
		t.Fatalf("SaveDumpFile: %v", err)
	}
	dump, err := LoadDumpFile(path)
	if err != nil {
		t.Fatalf("LoadDumpFile: %v", err)
	}
	if len(dump.Events) != 2 {
		t.Errorf("got %d events, want 2", len(dump.Events))
	}
}
