// Package layout connects hashtag tokens to a text layout engine.
//
// The engine itself is external: anything that turns a string, a set of
// highlight attributes and a bounding box into lines of runs satisfies
// [Engine]. [FaceEngine] is a small word-wrapping implementation over an
// x/image font face.
package layout

import (
	"image/color"

	"github.com/riverfjs/hashtagview-go/internal/geom"
	"github.com/riverfjs/hashtagview-go/internal/types"
)

// Engine is the text layout engine consumed by the view.
//
// Layout must copy each attribute's colour and token index onto every run
// inside the attribute's range, splitting runs at attribute boundaries.
// Returned lines are in text space (origin bottom-left, y up) and must not
// be modified afterwards.
type Engine interface {
	Layout(text string, attrs []types.Attribute, box types.Size) []types.Line
	TypographicBounds(run types.Run) (ascent, descent, advance float64)
	// OffsetForIndex returns the x offset of the character at index from the
	// line origin. ok is false when index is not inside the line.
	OffsetForIndex(line types.Line, index int) (offset float64, ok bool)
}

// RunRef locates a run inside a slice of lines.
type RunRef struct {
	Line int
	Run  int
}

// Adapter resolves tokens to layout attributes and runs.
type Adapter struct {
	Engine Engine
	Color  color.RGBA
}

// NewAdapter creates a new Adapter.
func NewAdapter(engine Engine, c color.RGBA) *Adapter {
	return &Adapter{Engine: engine, Color: c}
}

// Attribute turns tokens into highlight attributes. A token whose range no
// longer points at its own text in text is returned in dropped instead.
func (a *Adapter) Attribute(text string, tokens []types.Token) (attrs []types.Attribute, dropped []types.Token) {
	runes := []rune(text)
	for _, tok := range tokens {
		if !resolvable(runes, tok) {
			dropped = append(dropped, tok)
			continue
		}
		attrs = append(attrs, types.Attribute{
			Range: tok.Range,
			Color: a.Color,
			Token: tok.Index,
		})
	}
	return attrs, dropped
}

func resolvable(runes []rune, tok types.Token) bool {
	r := tok.Range
	if r.Start < 0 || r.Length <= 0 || r.End() > len(runes) {
		return false
	}
	return string(runes[r.Start:r.End()]) == tok.Text
}

// Layout runs the engine.
func (a *Adapter) Layout(text string, attrs []types.Attribute, box types.Size) []types.Line {
	return a.Engine.Layout(text, attrs, box)
}

// RunsFor returns every run whose range intersects r, in document order.
func RunsFor(lines []types.Line, r types.Range) []RunRef {
	var refs []RunRef
	for li, line := range lines {
		if !line.Range.Intersects(r) {
			continue
		}
		for ri, run := range line.Runs {
			if run.Range.Intersects(r) {
				refs = append(refs, RunRef{Line: li, Run: ri})
			}
		}
	}
	return refs
}

// RunRect returns the text-space highlight rect of run. Drawing and
// hit-testing both go through here. ok is false when the engine cannot place
// the run's first character in line.
func RunRect(engine Engine, line types.Line, run types.Run, pad geom.Padding) (types.Rect, bool) {
	offset, ok := engine.OffsetForIndex(line, run.Range.Start)
	if !ok {
		return types.Rect{}, false
	}
	run.Ascent, run.Descent, run.Advance = engine.TypographicBounds(run)
	return geom.RunRect(line, run, offset, pad), true
}
