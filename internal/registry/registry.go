// Package registry maps highlighted runs to screen rectangles and resolves
// taps against them.
//
// A Registry is built once per layout pass and never modified. Entries are
// keyed by token index and run range rather than by geometry, so two runs
// with identical rectangles are both kept. Resolve returns the first
// containing entry in document order.
package registry

import (
	"github.com/riverfjs/hashtagview-go/internal/geom"
	"github.com/riverfjs/hashtagview-go/internal/layout"
	"github.com/riverfjs/hashtagview-go/internal/types"
)

// Key identifies one highlighted run.
type Key struct {
	Token int
	Run   types.Range
}

// Entry is one highlighted run in view coordinates.
type Entry struct {
	Key   Key
	Rect  types.Rect
	Token types.Token
}

// Registry is an immutable snapshot of highlight entries.
type Registry struct {
	entries []Entry
	index   map[Key]int
	// Skipped counts highlighted runs whose position could not be resolved.
	Skipped int
}

// Empty is a registry with no entries.
var Empty = &Registry{}

// Build creates a registry from the lines of one layout pass. height is the
// view height used to flip text-space rects into view space.
func Build(lines []types.Line, engine layout.Engine, tokens []types.Token, height float64, pad geom.Padding) *Registry {
	byIndex := make(map[int]types.Token, len(tokens))
	for _, tok := range tokens {
		byIndex[tok.Index] = tok
	}

	flip := geom.Flip(height)
	reg := &Registry{index: make(map[Key]int)}
	for _, line := range lines {
		for _, run := range line.Runs {
			if !run.Highlighted() {
				continue
			}
			tok, ok := byIndex[run.Token]
			if !ok {
				reg.Skipped++
				continue
			}
			rect, ok := layout.RunRect(engine, line, run, pad)
			if !ok {
				reg.Skipped++
				continue
			}

			key := Key{Token: tok.Index, Run: run.Range}
			entry := Entry{Key: key, Rect: flip.Rect(rect), Token: tok}
			if i, dup := reg.index[key]; dup {
				reg.entries[i] = entry
				continue
			}
			reg.index[key] = len(reg.entries)
			reg.entries = append(reg.entries, entry)
		}
	}
	return reg
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the entries in document order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Lookup returns the entry for key.
func (r *Registry) Lookup(key Key) (Entry, bool) {
	i, ok := r.index[key]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Resolve returns the token of the first entry whose rect contains p.
func (r *Registry) Resolve(p types.Point) (types.Token, bool) {
	for _, e := range r.entries {
		if e.Rect.Contains(p) {
			return e.Token, true
		}
	}
	return types.Token{}, false
}
