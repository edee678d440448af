// Package raster is an in-memory drawing surface backed by the
// golang.org/x/image/vector rasterizer.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/riverfjs/hashtagview-go/internal/geom"
	"github.com/riverfjs/hashtagview-go/internal/types"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Canvas draws onto an RGBA image.
type Canvas struct {
	Image *image.RGBA
	// StrokeWidth of the outline drawn around filled shapes.
	StrokeWidth float64

	ctm geom.Transform
	ras *vector.Rasterizer
}

// NewCanvas creates a transparent w×h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		Image:       image.NewRGBA(image.Rect(0, 0, w, h)),
		StrokeWidth: 1,
		ctm:         geom.Identity,
		ras:         vector.NewRasterizer(w, h),
	}
}

// Clear fills the canvas with c and resets the transform.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Image, c.Image.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	c.ctm = geom.Identity
}

// ApplyTransform implements render.Surface.
func (c *Canvas) ApplyTransform(translate, scale types.Point) {
	c.ctm = geom.Transform{Translate: translate, Scale: scale}.Then(c.ctm)
}

// Transform returns the current transform matrix.
func (c *Canvas) Transform() f64.Aff3 {
	return c.ctm.Aff3()
}

// FillAndStrokeRoundedRect implements render.Surface. Fill and stroke share
// one colour, so the stroke is rasterised as the fill outset by half the
// stroke width.
func (c *Canvas) FillAndStrokeRoundedRect(r types.Rect, radius float64, col color.RGBA) {
	d := c.ctm.Rect(r)
	scale := math.Min(math.Abs(c.ctm.Scale.X), math.Abs(c.ctm.Scale.Y))
	radius *= scale

	if half := c.StrokeWidth / 2; half > 0 {
		d = types.Rect{X: d.X - half, Y: d.Y - half, Width: d.Width + 2*half, Height: d.Height + 2*half}
		radius += half
	}
	if d.Width <= 0 || d.Height <= 0 {
		return
	}
	bounds := c.Image.Bounds()
	if d.MaxX() < float64(bounds.Min.X) || d.X > float64(bounds.Max.X) ||
		d.MaxY() < float64(bounds.Min.Y) || d.Y > float64(bounds.Max.Y) {
		return
	}

	size := bounds.Size()
	c.ras.Reset(size.X, size.Y)
	roundedRectPath(c.ras, d, radius)
	c.ras.Draw(c.Image, bounds, image.NewUniform(col), bounds.Min)
}

func roundedRectPath(z *vector.Rasterizer, r types.Rect, radius float64) {
	radius = math.Max(0, math.Min(radius, math.Min(r.Width, r.Height)/2))
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.MaxX()), float32(r.MaxY())
	rad := float32(radius)
	k := float32(kappa * radius)

	z.MoveTo(x0+rad, y0)
	z.LineTo(x1-rad, y0)
	z.CubeTo(x1-rad+k, y0, x1, y0+rad-k, x1, y0+rad)
	z.LineTo(x1, y1-rad)
	z.CubeTo(x1, y1-rad+k, x1-rad+k, y1, x1-rad, y1)
	z.LineTo(x0+rad, y1)
	z.CubeTo(x0+rad-k, y1, x0, y1-rad+k, x0, y1-rad)
	z.LineTo(x0, y0+rad)
	z.CubeTo(x0, y0+rad-k, x0+rad-k, y0, x0+rad, y0)
	z.ClosePath()
}
