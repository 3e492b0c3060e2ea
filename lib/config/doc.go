// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for netlog.
//
// Configuration comes from a single file named by the NETLOG_CONFIG
// environment variable (via [Load]) or a --config flag (via
// [LoadFile]). There is no file search. Commands that run without a
// file use [Default].
//
// The file may contain development and production sections that
// override base values when [Config].Environment matches.
//
// After loading, ${HOME}, ${NETLOG_STATE} and ${VAR:-default}
// patterns are expanded in path fields.
//
// This package depends on no other netlog packages.
package config
