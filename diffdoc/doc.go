// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package diffdoc models the diff viewer's data files and generates the
diff between two document snapshots.

# Documents

A snapshot is a version plus ordered sections; each section holds ordered
content blocks of type "p" (paragraph), "list", "table", or "ref":

	doc, err := diffdoc.Load("data/json/2015.json")

A missing file loads as an empty document so a valid (empty) diff can be
produced before content exists.

# Comparing

Compare pairs sections across snapshots by path plus normalized title and
classifies every pair:

	diff := diffdoc.Compare(docA, docB)

Statuses are "new", "modified", "removed", and "unchanged". Modified
pairs carry line-level opcodes (equal/replace/delete/insert with
half-open a_range/b_range) computed over the sections' flattened text.
The summary counts each status.

The resulting File marshals to the diff.json the viewer fetches alongside
the two snapshots. The viewer itself is static JavaScript; this package
only produces its data.
*/
package diffdoc
