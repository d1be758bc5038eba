package diag

import (
	"path/filepath"
	"sort"
)

// Bag accumulates diagnostics from one tool run up to a fixed limit.
type Bag struct {
	items []Diagnostic
	max   uint16
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   uint16(max),
	}
}

// Add appends a diagnostic, honoring the limit.
// Returns false when the diagnostic was not added (limit reached).
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only slice of diagnostics.
// Callers must not modify the returned slice; it aliases the Bag's array.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders diagnostics by: path, line, col, severity (desc), rule
// for stable and deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Col != dj.Col {
			return di.Col < dj.Col
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Rule < dj.Rule
	})
}

// Dedup drops exact repeats (tool, rule, position, message).
func (b *Bag) Dedup() {
	type key struct {
		tool, rule, path, msg string
		line, col             uint32
	}
	seen := make(map[key]bool)
	newitems := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		k := key{tool: d.Tool, rule: d.Rule, path: d.Path, msg: d.Message, line: d.Line, col: d.Col}
		if seen[k] {
			continue
		}
		seen[k] = true
		newitems = append(newitems, d)
	}
	b.items = newitems
}

// FilterPath keeps only diagnostics attributed to target, excluding
// issues the tool reported against imported modules or installed
// dependencies. Filtering an already-filtered bag is a no-op.
func (b *Bag) FilterPath(target string) {
	kept := b.items[:0]
	for _, d := range b.items {
		if SamePath(d.Path, target) {
			kept = append(kept, d)
		}
	}
	b.items = kept
}

// SamePath reports whether two paths refer to the same file. Cleaned
// forms are compared first; when one side is relative, both are
// resolved against the working directory before giving up.
func SamePath(a, bpath string) bool {
	ca, cb := filepath.Clean(a), filepath.Clean(bpath)
	if ca == cb {
		return true
	}
	if filepath.Base(ca) != filepath.Base(cb) {
		return false
	}
	aa, errA := filepath.Abs(ca)
	ab, errB := filepath.Abs(cb)
	return errA == nil && errB == nil && aa == ab
}
