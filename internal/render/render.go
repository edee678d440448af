package render

import (
	"image/color"

	"github.com/riverfjs/hashtagview-go/internal/geom"
	"github.com/riverfjs/hashtagview-go/internal/layout"
	"github.com/riverfjs/hashtagview-go/internal/types"
)

// Surface is the 2D drawing surface consumed by the renderer.
type Surface interface {
	// ApplyTransform concatenates translate-then-scale onto the current
	// transform; later drawing is mapped through it.
	ApplyTransform(translate, scale types.Point)
	FillAndStrokeRoundedRect(r types.Rect, radius float64, c color.RGBA)
}

// Renderer draws a rounded background behind every highlighted run.
type Renderer struct {
	Engine       layout.Engine
	Padding      geom.Padding
	CornerRadius float64
}

// NewRenderer creates a Renderer with the default padding and radius.
func NewRenderer(engine layout.Engine) *Renderer {
	return &Renderer{
		Engine:       engine,
		Padding:      geom.DefaultPadding,
		CornerRadius: geom.DefaultCornerRadius,
	}
}

// Draw paints the highlights of lines onto s and returns how many were drawn.
// The text-to-view flip is applied once, so rects are issued in text space.
// Drawing is additive: s is expected to be cleared by the caller.
func (r *Renderer) Draw(s Surface, lines []types.Line, height float64) int {
	flip := geom.Flip(height)
	s.ApplyTransform(flip.Translate, flip.Scale)

	drawn := 0
	for _, line := range lines {
		for _, run := range line.Runs {
			if !run.Highlighted() {
				continue
			}
			rect, ok := layout.RunRect(r.Engine, line, run, r.Padding)
			if !ok {
				continue
			}
			s.FillAndStrokeRoundedRect(rect, r.CornerRadius, *run.Highlight)
			drawn++
		}
	}
	return drawn
}
