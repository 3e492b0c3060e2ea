// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/netlog/cmd/netlog/cli"
	"github.com/bureau-foundation/netlog/lib/netlog"
	"github.com/bureau-foundation/netlog/lib/netui"
	"github.com/bureau-foundation/netlog/lib/packetsource"
)

type viewOptions struct {
	pcapPath    string
	loadPath    string
	byteLogging bool
	configPath  string
	logOutput   string
	backfill    int
	interval    time.Duration
}

func viewCommand() *cli.Command {
	var options viewOptions
	return &cli.Command{
		Name:    "view",
		Summary: "Browse a capture or saved log interactively",
		Description: `Open the interactive viewer.

With --pcap, packets are replayed into the viewer in timed batches so
the counters grow as a live capture would. With --load, a saved log
from "netlog dump" is shown on the events tab.

Warnings and errors appear in the status bar. --log-output also writes
every record to a JSON file.`,
		Usage: "netlog view (--pcap FILE | --load FILE) [flags]",
		Examples: []cli.Example{
			{Description: "Replay a capture", Command: "netlog view --pcap session.pcap"},
			{Description: "Replay with payload bytes logged from the start", Command: "netlog view --pcap session.pcap --byte-logging"},
			{Description: "Browse a saved log", Command: "netlog view --load session.netlog"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("view", pflag.ContinueOnError)
			flagSet.StringVar(&options.pcapPath, "pcap", "", "pcap file to replay")
			flagSet.StringVar(&options.loadPath, "load", "", "saved log to browse")
			flagSet.BoolVarP(&options.byteLogging, "byte-logging", "b", false, "start with payload byte logging enabled")
			flagSet.StringVar(&options.configPath, "config", "", "config file (default: $NETLOG_CONFIG)")
			flagSet.StringVar(&options.logOutput, "log-output", "", "write JSON log records to this file (in addition to the status bar)")
			flagSet.IntVar(&options.backfill, "backfill", -1, "packets delivered at start-up as passively captured (default: capture.backfill)")
			flagSet.DurationVar(&options.interval, "interval", 0, "time between replay batches (default: capture.interval)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runView(options)
		},
	}
}

func runView(options viewOptions) error {
	switch {
	case options.pcapPath == "" && options.loadPath == "":
		return cli.Validation("one of --pcap or --load is required").
			WithHint("Run 'netlog view --help' for usage.")
	case options.pcapPath != "" && options.loadPath != "":
		return cli.Validation("--pcap and --load are mutually exclusive")
	}

	cfg, err := loadConfig(options.configPath)
	if err != nil {
		return err
	}
	initial, err := captureLevel("", cfg)
	if err != nil {
		return err
	}
	if options.byteLogging {
		initial = netlog.LogAll
	}
	statusLevel, _ := cfg.SlogLevel()

	// stderr belongs to the alt screen, so logs go to the status bar.
	tuiHandler := netui.NewTUILogHandler(statusLevel)
	var handler slog.Handler = tuiHandler
	logOutput := options.logOutput
	if logOutput == "" {
		logOutput = cfg.Log.Output
	}
	if logOutput != "" {
		fileHandler, closeFile, err := openFileLogHandler(logOutput)
		if err != nil {
			return cli.Validation("cannot open log file %s: %w", logOutput, err)
		}
		defer closeFile()
		handler = fanoutHandler{tuiHandler, fileHandler}
	}
	logger := slog.New(handler).With("command", "view")

	tracker := netlog.NewTracker(logger)
	controller := netlog.NewController(initial, logger)

	var reader *packetsource.Reader
	if options.pcapPath != "" {
		reader, err = packetsource.Open(options.pcapPath, controller)
		if err != nil {
			return openError("capture", options.pcapPath, err)
		}
		defer reader.Close()
	}

	var dump *netlog.Dump
	if options.loadPath != "" {
		dump, err = netlog.LoadDumpFile(options.loadPath)
		if err != nil {
			return openError("saved log", options.loadPath, err)
		}
	}

	model := netui.NewModel(netui.Config{
		Tracker:     tracker,
		Logging:     controller,
		PcapPath:    options.pcapPath,
		ByteLogging: initial == netlog.LogAll,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	tuiHandler.SetProgram(program)

	ctx, cancel := context.WithCancel(context.Background())
	replayDone := make(chan struct{})
	go func() {
		defer close(replayDone)
		if dump != nil {
			program.Send(netui.LoadedMsg{Dump: dump, Path: options.loadPath})
			return
		}

		replayOptions := packetsource.Options{
			Backfill:  cfg.Capture.Backfill,
			BatchSize: cfg.Capture.BatchSize,
			Interval:  cfg.CaptureInterval(),
		}
		if options.backfill >= 0 {
			replayOptions.Backfill = options.backfill
		}
		if options.interval > 0 {
			replayOptions.Interval = options.interval
		}
		err := packetsource.Replay(ctx, reader, replayOptions, func(events []netlog.Event) {
			program.Send(netui.EntriesMsg{Events: events})
		})
		if errors.Is(err, context.Canceled) {
			return
		}
		if err != nil {
			logger.Error("replay failed", "path", options.pcapPath, "error", err)
		}
		program.Send(netui.ReplayDoneMsg{Err: err})
	}()

	_, err = program.Run()
	cancel()
	// The reader is closed by the deferred call once replay has stopped.
	<-replayDone
	return err
}

// openError classifies a failure to open an input file.
func openError(what, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cli.NotFound("%s %s does not exist", what, path)
	case errors.Is(err, netlog.ErrNotDump):
		return cli.Validation("%s is not a netlog saved log", path).
			WithHint("Saved logs are written by 'netlog dump'.")
	default:
		return cli.Validation("cannot read %s %s: %w", what, path, err)
	}
}
