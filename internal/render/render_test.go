package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/hashtagview-go/internal/geom"
	"github.com/riverfjs/hashtagview-go/internal/layout"
	"github.com/riverfjs/hashtagview-go/internal/matcher"
	"github.com/riverfjs/hashtagview-go/internal/registry"
	"github.com/riverfjs/hashtagview-go/internal/types"
)

type call struct {
	rect   types.Rect
	radius float64
	color  color.RGBA
}

// recorder is a Surface that keeps every call.
type recorder struct {
	transforms []geom.Transform
	calls      []call
}

func (r *recorder) ApplyTransform(translate, scale types.Point) {
	r.transforms = append(r.transforms, geom.Transform{Translate: translate, Scale: scale})
}

func (r *recorder) FillAndStrokeRoundedRect(rect types.Rect, radius float64, c color.RGBA) {
	r.calls = append(r.calls, call{rect: rect, radius: radius, color: c})
}

var green = color.RGBA{G: 0xc0, A: 0xff}

func pass(engine layout.Engine, text string, box types.Size) ([]types.Line, []types.Token) {
	tokens := matcher.Find(text)
	a := layout.NewAdapter(engine, green)
	attrs, _ := a.Attribute(text, tokens)
	return a.Layout(text, attrs, box), tokens
}

func TestDraw(t *testing.T) {
	engine := layout.NewFaceEngine(nil)
	lines, _ := pass(engine, "#one two #three", types.Size{Width: 400, Height: 60})

	rec := &recorder{}
	n := NewRenderer(engine).Draw(rec, lines, 60)

	assert.Equal(t, 2, n)
	require.Len(t, rec.transforms, 1, "transform is applied once per pass")
	assert.Equal(t, geom.Flip(60), rec.transforms[0])
	require.Len(t, rec.calls, 2)
	assert.Equal(t, geom.DefaultCornerRadius, rec.calls[0].radius)
	assert.Equal(t, green, rec.calls[0].color)
	assert.Equal(t, types.Rect{X: 2, Y: 45, Width: 34, Height: 13}, rec.calls[0].rect)
}

func TestDraw_NoHighlights(t *testing.T) {
	engine := layout.NewFaceEngine(nil)
	lines, _ := pass(engine, "nothing to see", types.Size{Width: 400, Height: 60})

	rec := &recorder{}
	assert.Equal(t, 0, NewRenderer(engine).Draw(rec, lines, 60))
	assert.Empty(t, rec.calls)
	assert.Len(t, rec.transforms, 1)
}

// Drawn rects and registry rects must describe the same area.
func TestDraw_MatchesRegistry(t *testing.T) {
	engine := layout.NewFaceEngine(nil)
	box := types.Size{Width: 90, Height: 120}
	lines, tokens := pass(engine, "#alpha beta #gamma\n#delta", box)

	rec := &recorder{}
	NewRenderer(engine).Draw(rec, lines, box.Height)
	reg := registry.Build(lines, engine, tokens, box.Height, geom.DefaultPadding)

	entries := reg.Entries()
	require.Len(t, rec.calls, len(entries))
	for i, e := range entries {
		assert.Equal(t, e.Rect, rec.transforms[0].Rect(rec.calls[i].rect))
	}
}
