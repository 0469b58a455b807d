// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package diffdoc

import (
	"sort"
	"strings"
	"time"
)

// Pair status values
const (
	StatusNew       = "new"
	StatusModified  = "modified"
	StatusRemoved   = "removed"
	StatusUnchanged = "unchanged"
)

// Op types for modified pairs
const (
	OpEqual   = "equal"
	OpReplace = "replace"
	OpDelete  = "delete"
	OpInsert  = "insert"
)

type SectionRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Op is one line-level edit: a_range/b_range are half-open line index
// ranges into the flattened section texts.
type Op struct {
	Type   string `json:"type"`
	ARange [2]int `json:"a_range"`
	BRange [2]int `json:"b_range"`
}

type Pair struct {
	Key    string      `json:"key"`
	Status string      `json:"status"`
	A      *SectionRef `json:"a"`
	B      *SectionRef `json:"b"`
	Ops    []Op        `json:"ops,omitempty"`
}

type Summary struct {
	New       int `json:"new"`
	Modified  int `json:"modified"`
	Removed   int `json:"removed"`
	Unchanged int `json:"unchanged"`
}

// File is the diff document the viewer consumes.
type File struct {
	GeneratedAt time.Time `json:"generated_at"`
	Summary     Summary   `json:"summary"`
	Pairs       []Pair    `json:"pairs"`
}

// Compare pairs the sections of two snapshots by key and classifies
// each pair. Pairs are ordered by key so output is deterministic.
func Compare(a, b *Document) *File {
	aMap := make(map[string]Section, len(a.Sections))
	for _, s := range a.Sections {
		aMap[Key(s)] = s
	}
	bMap := make(map[string]Section, len(b.Sections))
	for _, s := range b.Sections {
		bMap[Key(s)] = s
	}

	keys := make([]string, 0, len(aMap)+len(bMap))
	seen := make(map[string]bool, len(aMap)+len(bMap))
	for k := range aMap {
		keys = append(keys, k)
		seen[k] = true
	}
	for k := range bMap {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	f := &File{GeneratedAt: time.Now(), Pairs: make([]Pair, 0, len(keys))}

	for _, k := range keys {
		aSec, aOK := aMap[k]
		bSec, bOK := bMap[k]

		pair := Pair{Key: k}
		switch {
		case aOK && bOK:
			pair.A = &SectionRef{ID: aSec.ID, Title: aSec.Title}
			pair.B = &SectionRef{ID: bSec.ID, Title: bSec.Title}
			aText := SectionText(aSec)
			bText := SectionText(bSec)
			if aText == bText {
				pair.Status = StatusUnchanged
				f.Summary.Unchanged++
			} else {
				pair.Status = StatusModified
				pair.Ops = lineOps(splitLines(aText), splitLines(bText))
				f.Summary.Modified++
			}
		case aOK:
			pair.A = &SectionRef{ID: aSec.ID, Title: aSec.Title}
			pair.Status = StatusRemoved
			f.Summary.Removed++
		default:
			pair.B = &SectionRef{ID: bSec.ID, Title: bSec.Title}
			pair.Status = StatusNew
			f.Summary.New++
		}
		f.Pairs = append(f.Pairs, pair)
	}

	return f
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// lineOps produces edit opcodes over two line slices from a longest
// common subsequence. Adjacent non-matching runs on both sides collapse
// into a single replace.
func lineOps(a, b []string) []Op {
	n, m := len(a), len(b)

	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case a[i] == b[j]:
				lcs[i][j] = lcs[i+1][j+1] + 1
			case lcs[i+1][j] >= lcs[i][j+1]:
				lcs[i][j] = lcs[i+1][j]
			default:
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	ops := []Op{}
	emitGap := func(ai, aj, bi, bj int) {
		switch {
		case ai < aj && bi < bj:
			ops = append(ops, Op{Type: OpReplace, ARange: [2]int{ai, aj}, BRange: [2]int{bi, bj}})
		case ai < aj:
			ops = append(ops, Op{Type: OpDelete, ARange: [2]int{ai, aj}, BRange: [2]int{bi, bi}})
		case bi < bj:
			ops = append(ops, Op{Type: OpInsert, ARange: [2]int{ai, ai}, BRange: [2]int{bi, bj}})
		}
	}

	i, j := 0, 0
	for {
		// equal run
		si, sj := i, j
		for i < n && j < m && a[i] == b[j] {
			i++
			j++
		}
		if i > si {
			ops = append(ops, Op{Type: OpEqual, ARange: [2]int{si, i}, BRange: [2]int{sj, j}})
		}
		if i == n && j == m {
			break
		}

		// gap run: walk the LCS table until lines match again
		gi, gj := i, j
		for i < n && j < m && a[i] != b[j] {
			if lcs[i+1][j] >= lcs[i][j+1] {
				i++
			} else {
				j++
			}
		}
		// once either side is exhausted nothing later can match
		if i == n || j == m {
			i, j = n, m
		}
		emitGap(gi, i, gj, j)
	}

	return ops
}
