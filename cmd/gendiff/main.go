// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command gendiff regenerates the diff viewer's diff.json from two
// document snapshots.
//
// Usage:
//
//	gendiff -a data/json/2015.json -b data/json/2025.json -o data/diff/diff.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/pollcast/pollcast/diffdoc"
)

func main() {
	aPath := flag.String("a", "data/json/2015.json", "older snapshot")
	bPath := flag.String("b", "data/json/2025.json", "newer snapshot")
	outPath := flag.String("o", "data/diff/diff.json", "output diff file")
	flag.Parse()

	docA, err := diffdoc.Load(*aPath)
	if err != nil {
		slog.Error("failed to load snapshot", "path", *aPath, "error", err)
		os.Exit(1)
	}
	docB, err := diffdoc.Load(*bPath)
	if err != nil {
		slog.Error("failed to load snapshot", "path", *bPath, "error", err)
		os.Exit(1)
	}

	diff := diffdoc.Compare(docA, docB)

	data, err := json.MarshalIndent(diff, "", "  ")
	if err != nil {
		slog.Error("failed to marshal diff", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		slog.Error("failed to write diff", "path", *outPath, "error", err)
		os.Exit(1)
	}

	color.New(color.FgGreen).Printf("  new        %d\n", diff.Summary.New)
	color.New(color.FgYellow).Printf("  modified   %d\n", diff.Summary.Modified)
	color.New(color.FgRed).Printf("  removed    %d\n", diff.Summary.Removed)
	fmt.Printf("  unchanged  %d\n", diff.Summary.Unchanged)
	fmt.Printf("wrote %s (%d pairs)\n", *outPath, len(diff.Pairs))
}
