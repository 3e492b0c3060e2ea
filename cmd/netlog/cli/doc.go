// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the netlog
// binary.
//
// The central type is [Command]: a named subcommand with optional
// nested [Command.Subcommands], a [pflag.FlagSet] factory, and a Run
// function. [Command.Execute] parses flags, routes subcommands, and
// prints help with examples. Unknown subcommands and flags get a
// "did you mean" suggestion when one is within edit distance 3.
//
// Commands report failures as categorized [ToolError] values
// ([Validation], [NotFound], [Internal]) optionally carrying a hint,
// or as [ExitError] when the command has already printed its own
// output.
package cli
