package layout

import (
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/riverfjs/hashtagview-go/internal/buffer"
	"github.com/riverfjs/hashtagview-go/internal/types"
)

// FaceEngine lays text out with a single font face. Paragraphs break at
// '\n'; lines wrap greedily at spaces. A word wider than the box gets a line
// of its own and is never split, so a token never spans two lines.
type FaceEngine struct {
	Face font.Face
	// LineSpacing is extra leading added to the face's line height.
	LineSpacing float64
}

// NewFaceEngine creates a FaceEngine. A nil face uses basicfont.Face7x13.
func NewFaceEngine(face font.Face) *FaceEngine {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &FaceEngine{Face: face}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func (e *FaceEngine) advance(r rune) float64 {
	adv, ok := e.Face.GlyphAdvance(r)
	if !ok {
		adv, _ = e.Face.GlyphAdvance('?')
	}
	return fixedToFloat(adv)
}

func (e *FaceEngine) measure(runes []rune) float64 {
	w := 0.0
	for _, r := range runes {
		w += e.advance(r)
	}
	return w
}

type span struct {
	start  int
	carets []float64
}

// wrap breaks runes[start:end], a paragraph without '\n', into lines.
func (e *FaceEngine) wrap(runes []rune, start, end int, width float64) []span {
	var spans []span
	buf := buffer.New(start)
	for i := start; i < end; {
		j := i
		for j < end && runes[j] != ' ' {
			j++
		}
		wordEnd := j
		for j < end && runes[j] == ' ' {
			j++
		}

		if buf.Len() > 0 && buf.X()+e.measure(runes[i:wordEnd]) > width {
			spans = append(spans, span{start: buf.Start(), carets: buf.Carets()})
			buf.Reset(i)
		}
		for k := i; k < j; k++ {
			buf.Write(e.advance(runes[k]))
		}
		i = j
	}
	return append(spans, span{start: buf.Start(), carets: buf.Carets()})
}

// Layout implements Engine.
func (e *FaceEngine) Layout(text string, attrs []types.Attribute, box types.Size) []types.Line {
	if text == "" {
		return nil
	}
	runes := []rune(text)

	m := e.Face.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	lineHeight := fixedToFloat(m.Height) + e.LineSpacing
	if lineHeight <= 0 {
		lineHeight = ascent + descent
	}

	var spans []span
	for start := 0; start <= len(runes); {
		end := start
		for end < len(runes) && runes[end] != '\n' {
			end++
		}
		spans = append(spans, e.wrap(runes, start, end, box.Width)...)
		start = end + 1
	}

	lines := make([]types.Line, 0, len(spans))
	for i, sp := range spans {
		r := types.Range{Start: sp.start, Length: len(sp.carets) - 1}
		lines = append(lines, types.Line{
			Origin: types.Point{X: 0, Y: box.Height - ascent - float64(i)*lineHeight},
			Range:  r,
			Runs:   splitRuns(r, sp.carets, attrs, ascent, descent),
			Carets: sp.carets,
		})
	}
	return lines
}

// splitRuns cuts the line range at every attribute boundary inside it.
func splitRuns(r types.Range, carets []float64, attrs []types.Attribute, ascent, descent float64) []types.Run {
	if r.Length == 0 {
		return nil
	}
	bounds := []int{r.Start, r.End()}
	for _, a := range attrs {
		for _, b := range []int{a.Range.Start, a.Range.End()} {
			if b > r.Start && b < r.End() {
				bounds = append(bounds, b)
			}
		}
	}
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)

	runs := make([]types.Run, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		run := types.Run{
			Range:   types.Range{Start: lo, Length: hi - lo},
			Ascent:  ascent,
			Descent: descent,
			Advance: carets[hi-r.Start] - carets[lo-r.Start],
			Token:   -1,
		}
		for _, a := range attrs {
			if a.Range.Start <= lo && a.Range.End() >= hi {
				c := a.Color
				run.Highlight = &c
				run.Token = a.Token
				break
			}
		}
		runs = append(runs, run)
	}
	return runs
}

// TypographicBounds implements Engine.
func (e *FaceEngine) TypographicBounds(run types.Run) (ascent, descent, advance float64) {
	return run.Ascent, run.Descent, run.Advance
}

// OffsetForIndex implements Engine.
func (e *FaceEngine) OffsetForIndex(line types.Line, index int) (float64, bool) {
	if index < line.Range.Start || index > line.Range.End() {
		return 0, false
	}
	i := index - line.Range.Start
	if i >= len(line.Carets) {
		return 0, false
	}
	return line.Carets[i], true
}
