package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	// Reset flag state between runs.
	flagJSON = false
	flagOptimized = false
	flagVerbose = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	return out.String()
}

func TestSplitFromArgs(t *testing.T) {
	out := execute(t, "",
		"123 Main Street, Apartment 4B, Springfield, IL 62701, United States")

	want := "123 Main Street, Apartment 4B\nSpringfield, IL 62701\nUnited States\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestSplitFromStdin(t *testing.T) {
	out := execute(t, "123 Short St\n\nFlat 301, Krishna Towers, MG Road, Bangalore 560001\n")

	want := "123\nShort\nSt\n" +
		"\n" +
		"Flat 301, Krishna Towers\nMG Road, Bangalore 560001\n\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestSplitJSON(t *testing.T) {
	out := execute(t, "", "--json", "123 Short St")

	var resp output
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if resp.AddressLine1 != "123" || resp.AddressLine2 != "Short" || resp.AddressLine3 != "St" {
		t.Errorf("lines = (%q, %q, %q)", resp.AddressLine1, resp.AddressLine2, resp.AddressLine3)
	}
	if resp.OriginalAddress != "123 Short St" {
		t.Errorf("original_address = %q", resp.OriginalAddress)
	}
}
