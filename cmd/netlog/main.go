// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// netlog browses network event logs built from packet captures.
//
// "netlog view" replays a pcap file into an interactive terminal UI
// with a capture tab (byte logging, event counts, delete-all) and an
// events tab listing each socket. "netlog dump" converts a pcap into a
// saved log that "netlog view --load" and "netlog stat" read back.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/netlog/cmd/netlog/cli"
	"github.com/bureau-foundation/netlog/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Handle --version before dispatch to match other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println(version.Info())
		return nil
	}
	return root(os.Stdout).Execute(os.Args[1:])
}

// root assembles the command tree. Command output goes to stdout.
func root(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "netlog",
		Description: "Browse network event logs built from packet captures.",
		Subcommands: []*cli.Command{
			viewCommand(),
			dumpCommand(stdout),
			statCommand(stdout),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					if len(args) > 0 {
						return cli.Validation("unexpected argument: %s", args[0])
					}
					fmt.Fprintln(stdout, version.Full())
					return nil
				},
			},
		},
	}
}
