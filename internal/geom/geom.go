// Package geom holds the rectangle computation shared by drawing and
// hit-testing, plus the text-space to view-space transform.
package geom

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/riverfjs/hashtagview-go/internal/types"
)

// Padding around a highlighted run.
type Padding struct {
	// Left shifts the rect right of the run start.
	Left float64 `yaml:"left"`
	// Vertical shifts the rect along y from the baseline (text space).
	Vertical float64 `yaml:"vertical"`
	// Horizontal is added to the run advance.
	Horizontal float64 `yaml:"horizontal"`
}

// DefaultPadding encloses glyph ink plus a small margin.
var DefaultPadding = Padding{Left: 2, Vertical: -4, Horizontal: 6}

// DefaultCornerRadius of the highlight shape.
const DefaultCornerRadius = 5.0

// RunRect returns the highlight rect for run in text space. offset is the
// x distance from the line origin to the first character of the run.
func RunRect(line types.Line, run types.Run, offset float64, pad Padding) types.Rect {
	return types.Rect{
		X:      line.Origin.X + offset + pad.Left,
		Y:      line.Origin.Y + pad.Vertical,
		Width:  run.Advance + pad.Horizontal,
		Height: run.Ascent + run.Descent,
	}
}

// Transform is a translate followed by a scale, applied as p' = t + s*p.
type Transform struct {
	Translate types.Point
	Scale     types.Point
}

// Identity leaves points unchanged.
var Identity = Transform{Scale: types.Point{X: 1, Y: 1}}

// Flip maps text space (origin bottom-left, y up) to view space
// (origin top-left, y down) for a surface of the given height.
func Flip(height float64) Transform {
	return Transform{
		Translate: types.Point{X: 0, Y: height},
		Scale:     types.Point{X: 1, Y: -1},
	}
}

// Point transforms p.
func (t Transform) Point(p types.Point) types.Point {
	return types.Point{
		X: t.Translate.X + t.Scale.X*p.X,
		Y: t.Translate.Y + t.Scale.Y*p.Y,
	}
}

// Rect transforms both corners of r and returns the normalized result.
func (t Transform) Rect(r types.Rect) types.Rect {
	a := t.Point(types.Point{X: r.X, Y: r.Y})
	b := t.Point(types.Point{X: r.MaxX(), Y: r.MaxY()})
	return types.Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// Then returns the transform applying t first and then next.
func (t Transform) Then(next Transform) Transform {
	return Transform{
		Translate: next.Point(t.Translate),
		Scale: types.Point{
			X: next.Scale.X * t.Scale.X,
			Y: next.Scale.Y * t.Scale.Y,
		},
	}
}

// Aff3 returns t as a row-major affine matrix.
func (t Transform) Aff3() f64.Aff3 {
	return f64.Aff3{
		t.Scale.X, 0, t.Translate.X,
		0, t.Scale.Y, t.Translate.Y,
	}
}
