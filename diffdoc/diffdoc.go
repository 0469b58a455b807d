// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package diffdoc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Block content types
const (
	BlockParagraph = "p"
	BlockList      = "list"
	BlockTable     = "table"
	BlockRef       = "ref"
)

// Document is one snapshot of the structured document the diff viewer
// compares.
type Document struct {
	Version  string    `json:"version"`
	Sections []Section `json:"sections"`
}

type Section struct {
	ID      string  `json:"id"`
	Path    string  `json:"path,omitempty"`
	Title   string  `json:"title"`
	Content []Block `json:"content"`
}

// Block is one content unit inside a section. Type selects which of the
// remaining fields carries the payload.
type Block struct {
	Type  string     `json:"type"`
	Text  string     `json:"text,omitempty"`
	Items []string   `json:"items,omitempty"`
	Rows  [][]string `json:"rows,omitempty"`
}

// Load reads a snapshot file. A missing file yields an empty document
// whose version is derived from the file name, so a diff can be
// generated before both snapshots exist.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		version := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return &Document{Version: version, Sections: []Section{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}
	return &doc, nil
}

// Key identifies a section across snapshots: path plus normalized title.
func Key(s Section) string {
	return strings.TrimSpace(s.Path) + "||" + strings.ToLower(strings.TrimSpace(s.Title))
}

// SectionText flattens a section's blocks into comparable text, one
// line per paragraph, list item, or table row.
func SectionText(s Section) string {
	parts := make([]string, 0, len(s.Content))
	for _, b := range s.Content {
		switch b.Type {
		case BlockParagraph, BlockRef:
			parts = append(parts, b.Text)
		case BlockList:
			parts = append(parts, strings.Join(b.Items, "\n"))
		case BlockTable:
			rows := make([]string, len(b.Rows))
			for i, r := range b.Rows {
				rows[i] = strings.Join(r, "\t")
			}
			parts = append(parts, strings.Join(rows, "\n"))
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
