// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/netlog/cmd/netlog/cli"
	"github.com/bureau-foundation/netlog/lib/codec"
	"github.com/bureau-foundation/netlog/lib/netlog"
)

type statOptions struct {
	sources  bool
	diagnose int
}

func statCommand(stdout io.Writer) *cli.Command {
	var options statOptions
	return &cli.Command{
		Name:    "stat",
		Summary: "Summarize a saved log",
		Usage:   "netlog stat [flags] FILE",
		Examples: []cli.Example{
			{Description: "List every source", Command: "netlog stat --sources session.netlog"},
			{Description: "Show the raw encoding of the first two events", Command: "netlog stat --diagnose 2 session.netlog"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("stat", pflag.ContinueOnError)
			flagSet.BoolVar(&options.sources, "sources", false, "list each source with its event count")
			flagSet.IntVar(&options.diagnose, "diagnose", 0, "print CBOR diagnostic notation for the header and the first N events")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one saved log, got %d arguments", len(args))
			}
			return runStat(args[0], options, stdout)
		},
	}
}

func runStat(path string, options statOptions, stdout io.Writer) error {
	dump, err := netlog.LoadDumpFile(path)
	if err != nil {
		return openError("saved log", path, err)
	}

	tracker := netlog.NewTracker(nil)
	tracker.AddEntries(dump.Events)

	tw := tabwriter.NewWriter(stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "version:\t%d\n", dump.Version)
	fmt.Fprintf(tw, "created:\t%s\n", dump.Created.Format(time.RFC3339))
	fmt.Fprintf(tw, "log level:\t%s\n", dump.LogLevel)
	if dump.UserComments != "" {
		fmt.Fprintf(tw, "comments:\t%s\n", dump.UserComments)
	}
	fmt.Fprintf(tw, "sources:\t%d\n", len(tracker.Sources()))
	fmt.Fprintf(tw, "events:\t%d\n", len(dump.Events))
	fmt.Fprintf(tw, "  active:\t%d\n", tracker.NumActivelyCapturedEvents())
	fmt.Fprintf(tw, "  passive:\t%d\n", tracker.NumPassivelyCapturedEvents())
	if err := tw.Flush(); err != nil {
		return err
	}

	if options.sources {
		fmt.Fprintln(stdout)
		tw = tabwriter.NewWriter(stdout, 2, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTYPE\tEVENTS\tSTATE\tDESCRIPTION")
		for _, source := range tracker.Sources() {
			state := "open"
			if source.IsInactive() {
				state = "closed"
			}
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
				source.ID(), source.Type(), source.EventCount(), state, source.Description())
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if options.diagnose > 0 {
		header := *dump
		header.Events = nil
		if err := printDiagnostic(stdout, "header", header); err != nil {
			return err
		}
		for index, event := range dump.Events[:min(options.diagnose, len(dump.Events))] {
			if err := printDiagnostic(stdout, fmt.Sprintf("event %d", index), event); err != nil {
				return err
			}
		}
	}
	return nil
}

func printDiagnostic(w io.Writer, label string, value any) error {
	data, err := codec.Marshal(value)
	if err != nil {
		return cli.Internal("encoding %s: %w", label, err)
	}
	notation, err := codec.Diagnose(data)
	if err != nil {
		return cli.Internal("diagnosing %s: %w", label, err)
	}
	fmt.Fprintf(w, "\n%s:\n  %s\n", label, notation)
	return nil
}
