package hashtagview

import (
	"bytes"
	"image/color"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_EmptyView(t *testing.T) {
	v := NewView()
	require.NotNil(t, v.Snapshot())

	_, ok := v.HandleTap(Point{X: 1, Y: 1})
	assert.False(t, ok)
	assert.Equal(t, 0, v.Draw(&countSurface{}))
}

func TestView_TapInvokesHandler(t *testing.T) {
	v := NewView()
	var got []string
	v.OnTap(func(tok Token) { got = append(got, tok.Text) })
	v.SetBounds(Size{Width: 300, Height: 100})
	v.SetText("see #golang and #rust")

	entries := v.Snapshot().Registry.Entries()
	require.Len(t, entries, 2)

	tok, ok := v.HandleTap(entries[1].Rect.Center())
	require.True(t, ok)
	assert.Equal(t, "#rust", tok.Text)

	_, ok = v.HandleTap(Point{X: 299, Y: 99})
	assert.False(t, ok)
	assert.Equal(t, []string{"#rust"}, got)
}

func TestView_SetTextSwapsSnapshot(t *testing.T) {
	v := NewView()
	v.SetBounds(Size{Width: 300, Height: 100})
	v.SetText("#first")
	old := v.Snapshot()

	v.SetText("no tags here")
	cur := v.Snapshot()

	assert.NotSame(t, old, cur)
	assert.Equal(t, "#first", old.Text)
	assert.Equal(t, 1, old.Registry.Len())
	assert.Equal(t, 0, cur.Registry.Len())
	assert.Equal(t, "no tags here", v.Text())
}

func TestView_SetBoundsRelayout(t *testing.T) {
	v := NewView()
	v.SetText("aaaa #one bbbb #two")
	v.SetBounds(Size{Width: 500, Height: 100})
	wide := v.Snapshot()
	require.Len(t, wide.Lines, 1)

	v.SetBounds(Size{Width: 500, Height: 100})
	assert.Same(t, wide, v.Snapshot(), "unchanged bounds keep the snapshot")

	v.SetBounds(Size{Width: 40, Height: 100})
	narrow := v.Snapshot()
	assert.Greater(t, len(narrow.Lines), 1)
	assert.Equal(t, entryTexts(wide.Registry), entryTexts(narrow.Registry))
	assert.Equal(t, Size{Width: 40, Height: 100}, v.Bounds())
}

func TestView_ShouldRequireFailureOf(t *testing.T) {
	v := NewView()
	assert.False(t, v.ShouldRequireFailureOf(nil))
	assert.False(t, v.ShouldRequireFailureOf("scroll"))
}

func TestView_DebugLogsSkippedTokens(t *testing.T) {
	var logs bytes.Buffer
	old := Logger
	SetLogger(log.New(&logs, "", 0))
	defer SetLogger(old)

	v := NewView(WithDebug(true))
	v.SetBounds(Size{Width: 300, Height: 100})
	v.SetText("#ok")
	assert.Empty(t, logs.String(), "a clean pass logs nothing")
}

type countSurface struct {
	transforms int
	rects      []Rect
}

func (s *countSurface) ApplyTransform(translate, scale Point) { s.transforms++ }

func (s *countSurface) FillAndStrokeRoundedRect(r Rect, radius float64, c color.RGBA) {
	s.rects = append(s.rects, r)
}

func TestView_DrawAppliesFlipOnce(t *testing.T) {
	v := NewView()
	v.SetBounds(Size{Width: 300, Height: 100})
	v.SetText("#a #b\n#c")

	s := &countSurface{}
	assert.Equal(t, 3, v.Draw(s))
	assert.Equal(t, 1, s.transforms)
	assert.Len(t, s.rects, 3)
}
