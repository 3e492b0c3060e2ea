// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestToolError_ErrorWithHint(t *testing.T) {
	err := Validation("one of --pcap or --load is required").
		WithHint("Run 'netlog view --help' for usage.")

	want := "one of --pcap or --load is required\n\nRun 'netlog view --help' for usage."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestToolError_EmptyHintNotAppended(t *testing.T) {
	err := Internal("unexpected failure")
	if strings.Contains(err.Error(), "\n\n") {
		t.Error("empty hint should not add blank line to error message")
	}
}

func TestToolError_WithHintReturnsReceiver(t *testing.T) {
	original := NotFound("no such capture")
	if original.WithHint("check the path") != original {
		t.Error("WithHint should return the same pointer")
	}
	if original.Category != CategoryNotFound {
		t.Errorf("Category = %q after WithHint", original.Category)
	}
}

func TestToolError_UnwrapsToCause(t *testing.T) {
	err := NotFound("cannot open %s: %w", "trace.pcap", fs.ErrNotExist)
	wrapped := fmt.Errorf("view: %w", err)

	if !errors.Is(wrapped, fs.ErrNotExist) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) || toolErr.Category != CategoryNotFound {
		t.Error("errors.As should find the ToolError")
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 3}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok || coder.ExitCode() != 3 {
		t.Errorf("ExitCode() not reported, err = %v", err)
	}
	if err.Error() != "exit code 3" {
		t.Errorf("Error() = %q", err.Error())
	}
}
