// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/bureau-foundation/netlog/cmd/netlog/cli"
	"github.com/bureau-foundation/netlog/lib/config"
	"github.com/bureau-foundation/netlog/lib/netlog"
)

// writeSession writes a pcap holding one TCP connection: SYN, a
// request, a response, and FIN.
func writeSession(t *testing.T, path string) {
	t.Helper()
	client, server := net.IP{192, 168, 1, 10}, net.IP{192, 168, 1, 20}
	segments := []struct {
		reverse  bool
		syn, fin bool
		payload  string
	}{
		{syn: true},
		{payload: "GET / HTTP/1.1\r\n\r\n"},
		{reverse: true, payload: "HTTP/1.1 204 No Content\r\n\r\n"},
		{fin: true},
	}

	var capture bytes.Buffer
	writer := pcapgo.NewWriter(&capture)
	if err := writer.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		t.Fatalf("WriteFileHeader: %v", err)
	}
	start := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	for index, segment := range segments {
		sourceIP, destinationIP := client, server
		sourcePort, destinationPort := layers.TCPPort(51000), layers.TCPPort(80)
		if segment.reverse {
			sourceIP, destinationIP = destinationIP, sourceIP
			sourcePort, destinationPort = destinationPort, sourcePort
		}
		ethernet := &layers.Ethernet{
			SrcMAC:       net.HardwareAddr{0x02, 0, 0, 0, 0, 1},
			DstMAC:       net.HardwareAddr{0x02, 0, 0, 0, 0, 2},
			EthernetType: layers.EthernetTypeIPv4,
		}
		ip := &layers.IPv4{Version: 4, TTL: 64, Protocol: layers.IPProtocolTCP, SrcIP: sourceIP, DstIP: destinationIP}
		tcp := &layers.TCP{SrcPort: sourcePort, DstPort: destinationPort, SYN: segment.syn, FIN: segment.fin, ACK: !segment.syn, Window: 65535}
		if err := tcp.SetNetworkLayerForChecksum(ip); err != nil {
			t.Fatalf("SetNetworkLayerForChecksum: %v", err)
		}

		buffer := gopacket.NewSerializeBuffer()
		serializable := []gopacket.SerializableLayer{ethernet, ip, tcp}
		if segment.payload != "" {
			serializable = append(serializable, gopacket.Payload(segment.payload))
		}
		if err := gopacket.SerializeLayers(buffer, gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}, serializable...); err != nil {
			t.Fatalf("SerializeLayers: %v", err)
		}
		data := buffer.Bytes()
		info := gopacket.CaptureInfo{Timestamp: start.Add(time.Duration(index) * time.Millisecond), CaptureLength: len(data), Length: len(data)}
		if err := writer.WritePacket(info, data); err != nil {
			t.Fatalf("WritePacket: %v", err)
		}
	}
	if err := os.WriteFile(path, capture.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")
	var stdout bytes.Buffer
	err := root(&stdout).Execute(args)
	return stdout.String(), err
}

func requireCategory(t *testing.T, err error, category cli.ErrorCategory) {
	t.Helper()
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected a ToolError, got %T: %v", err, err)
	}
	if toolErr.Category != category {
		t.Errorf("category = %q, want %q (error: %v)", toolErr.Category, category, err)
	}
}

func TestDumpThenStat(t *testing.T) {
	directory := t.TempDir()
	pcapPath := filepath.Join(directory, "session.pcap")
	dumpPath := filepath.Join(directory, "session.netlog")
	writeSession(t, pcapPath)

	output, err := execute(t, "dump", "--pcap", pcapPath, "--output", dumpPath, "--log-level", "all", "--comment", "homepage fetch")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(output, "4 packets, 1 sources, 4 events") {
		t.Errorf("dump output = %q", output)
	}

	dump, err := netlog.LoadDumpFile(dumpPath)
	if err != nil {
		t.Fatalf("LoadDumpFile: %v", err)
	}
	if dump.LogLevel != "all" || dump.UserComments != "homepage fetch" {
		t.Errorf("header = %q / %q", dump.LogLevel, dump.UserComments)
	}
	if _, hasBytes := dump.Events[1].Params[netlog.ParamBytes]; !hasBytes {
		t.Error("log level all should keep payload bytes")
	}

	output, err = execute(t, "stat", "--sources", "--diagnose", "1", dumpPath)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	for _, want := range []string{
		"comments:",
		"homepage fetch",
		"192.168.1.10:51000 -> 192.168.1.20:80",
		"closed",
		"header:",
		"event 0:",
		`"TCP_CONNECT"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("stat output missing %q:\n%s", want, output)
		}
	}
}

func TestDumpWithoutBytes(t *testing.T) {
	directory := t.TempDir()
	pcapPath := filepath.Join(directory, "session.pcap")
	dumpPath := filepath.Join(directory, "session.netlog")
	writeSession(t, pcapPath)

	if _, err := execute(t, "dump", "--pcap", pcapPath, "--output", dumpPath); err != nil {
		t.Fatalf("dump: %v", err)
	}
	dump, err := netlog.LoadDumpFile(dumpPath)
	if err != nil {
		t.Fatal(err)
	}
	if dump.LogLevel != "all_but_bytes" {
		t.Errorf("default log level = %q", dump.LogLevel)
	}
	for _, event := range dump.Events {
		if _, hasBytes := event.Params[netlog.ParamBytes]; hasBytes {
			t.Errorf("%s event kept payload bytes", event.Type)
		}
	}
}

func TestDumpErrors(t *testing.T) {
	directory := t.TempDir()

	_, err := execute(t, "dump", "--pcap", filepath.Join(directory, "x.pcap"))
	requireCategory(t, err, cli.CategoryValidation)

	_, err = execute(t, "dump", "--pcap", filepath.Join(directory, "absent.pcap"), "--output", filepath.Join(directory, "out"))
	requireCategory(t, err, cli.CategoryNotFound)

	pcapPath := filepath.Join(directory, "session.pcap")
	writeSession(t, pcapPath)
	_, err = execute(t, "dump", "--pcap", pcapPath, "--output", filepath.Join(directory, "out"), "--log-level", "everything")
	requireCategory(t, err, cli.CategoryValidation)
}

func TestStatRejectsNonDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("not a saved log"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "stat", path)
	requireCategory(t, err, cli.CategoryValidation)
	if !strings.Contains(err.Error(), "netlog dump") {
		t.Errorf("error should hint at netlog dump: %v", err)
	}

	_, err = execute(t, "stat")
	requireCategory(t, err, cli.CategoryValidation)
}

func TestViewValidation(t *testing.T) {
	directory := t.TempDir()
	tests := []struct {
		name     string
		args     []string
		category cli.ErrorCategory
	}{
		{"no input", []string{"view"}, cli.CategoryValidation},
		{"both inputs", []string{"view", "--pcap", "a.pcap", "--load", "b.netlog"}, cli.CategoryValidation},
		{"missing pcap", []string{"view", "--pcap", filepath.Join(directory, "absent.pcap")}, cli.CategoryNotFound},
		{"missing log", []string{"view", "--load", filepath.Join(directory, "absent.netlog")}, cli.CategoryNotFound},
		{"missing config", []string{"view", "--pcap", "a.pcap", "--config", filepath.Join(directory, "absent.yaml")}, cli.CategoryNotFound},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := execute(t, test.args...)
			requireCategory(t, err, test.category)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	output, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(output, "Go: ") {
		t.Errorf("version output = %q", output)
	}
}
