// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "ab", 1},
		{"ab", "abc", 1},
		{"abc", "bac", 2},
		{"kitten", "sitting", 3},
		{"dump", "dupm", 2},
		{"view", "veiw", 2},
	}

	for _, test := range tests {
		t.Run(test.a+"->"+test.b, func(t *testing.T) {
			if got := levenshtein(test.a, test.b); got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{{Name: "view"}, {Name: "dump"}, {Name: "stat"}, {Name: "version"}}

	tests := []struct {
		input string
		want  string
	}{
		{"veiw", "view"},
		{"stats", "stat"},
		{"verison", "version"},
		{"completely-different", ""},
	}
	for _, test := range tests {
		if got := suggestCommand(test.input, commands); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("view", pflag.ContinueOnError)
	flagSet.String("pcap", "", "")
	flagSet.String("load", "", "")
	flagSet.BoolP("byte-logging", "b", false, "")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--pacp", "x.pcap"}, "--pcap"},
		{[]string{"--pcap", "x.pcap", "--lod=y"}, "--load"},
		{[]string{"--byte-loging"}, "--byte-logging"},
		{[]string{"--nothing-like-it"}, ""},
		{[]string{"--", "--pacp"}, ""},
	}
	for _, test := range tests {
		if got := suggestFlag(test.args, flagSet); got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
