// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/netlog/cmd/netlog/cli"
	"github.com/bureau-foundation/netlog/lib/netlog"
	"github.com/bureau-foundation/netlog/lib/packetsource"
)

type dumpOptions struct {
	pcapPath   string
	outputPath string
	logLevel   string
	comment    string
	configPath string
}

func dumpCommand(stdout io.Writer) *cli.Command {
	var options dumpOptions
	return &cli.Command{
		Name:    "dump",
		Summary: "Convert a pcap capture into a saved log",
		Description: `Read every packet of a pcap capture and write the resulting events
as a saved log (zstd-compressed CBOR).

A bare --output file name is placed in paths.state from the config.`,
		Usage: "netlog dump --pcap FILE --output FILE [flags]",
		Examples: []cli.Example{
			{Description: "Save with payload bytes", Command: "netlog dump --pcap session.pcap --log-level all --output session.netlog"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("dump", pflag.ContinueOnError)
			flagSet.StringVar(&options.pcapPath, "pcap", "", "pcap file to read (required)")
			flagSet.StringVarP(&options.outputPath, "output", "o", "", "saved log to write (required)")
			flagSet.StringVar(&options.logLevel, "log-level", "", "capture verbosity: all, all_but_bytes, basic (default: capture.log_level)")
			flagSet.StringVar(&options.comment, "comment", "", "free-form comment stored in the log")
			flagSet.StringVar(&options.configPath, "config", "", "config file (default: $NETLOG_CONFIG)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runDump(options, stdout)
		},
	}
}

func runDump(options dumpOptions, stdout io.Writer) error {
	if options.pcapPath == "" || options.outputPath == "" {
		return cli.Validation("--pcap and --output are required").
			WithHint("Run 'netlog dump --help' for usage.")
	}

	cfg, err := loadConfig(options.configPath)
	if err != nil {
		return err
	}
	level, err := captureLevel(options.logLevel, cfg)
	if err != nil {
		return err
	}
	logLevel, _ := cfg.SlogLevel()
	logger := cli.NewCommandLogger(logLevel).With("command", "dump")

	reader, err := packetsource.Open(options.pcapPath, packetsource.FixedLevel(level))
	if err != nil {
		return openError("capture", options.pcapPath, err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		return cli.Validation("reading %s after %d packets: %w", options.pcapPath, reader.Packets(), err)
	}

	tracker := netlog.NewTracker(logger)
	tracker.AddEntries(events)

	outputPath := cfg.StatePath(options.outputPath)
	if filepath.Dir(outputPath) == filepath.Clean(cfg.Paths.State) {
		if err := cfg.EnsurePaths(); err != nil {
			return cli.Internal("%w", err)
		}
	}

	dump := &netlog.Dump{
		Version:      netlog.DumpVersion,
		Created:      time.Now().UTC(),
		LogLevel:     level.String(),
		UserComments: options.comment,
		Events:       tracker.Events(),
	}
	if err := netlog.SaveDumpFile(outputPath, dump); err != nil {
		return cli.Internal("writing %s: %w", outputPath, err)
	}

	logger.Info("wrote saved log",
		"path", outputPath,
		"packets", reader.Packets(),
		"events", len(dump.Events),
	)
	fmt.Fprintf(stdout, "%s: %d packets, %d sources, %d events\n",
		outputPath, reader.Packets(), len(tracker.Sources()), len(dump.Events))
	return nil
}
