// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the netlog
// binary.
//
// Four variables are injected at build time via -ldflags -X:
//
//	go build -ldflags "-X github.com/bureau-foundation/netlog/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// [GitCommit], [GitDirty], [BuildTime] and [Version] default to
// "unknown" / "0.1.0-dev" in development builds. [Commit] then falls
// back to the toolchain's embedded VCS revision when present.
package version
