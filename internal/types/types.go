package types

import "image/color"

// Range 表示源文本中的字符区间（以 rune 计数）
type Range struct {
	Start  int
	Length int
}

// End returns the exclusive end offset.
func (r Range) End() int {
	return r.Start + r.Length
}

// Intersects reports whether r and o share at least one character.
func (r Range) Intersects(o Range) bool {
	return r.Start < o.End() && o.Start < r.End()
}

// Contains reports whether o lies entirely inside r.
func (r Range) Contains(o Range) bool {
	return o.Start >= r.Start && o.End() <= r.End()
}

// Token 表示一次匹配得到的子串
type Token struct {
	// Index is the position of the token in its matching pass.
	Index int
	Range Range
	Text  string
}

// Point is a location in view or text space.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the far edge along y.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Contains is closed on the min edges and open on the max edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Attribute marks a character range to be highlighted in a given colour.
// Engines copy it onto every run they produce inside Range.
type Attribute struct {
	Range Range
	Color color.RGBA
	Token int
}

// Run 是布局引擎输出的一段属性相同的字形
type Run struct {
	Range   Range
	Ascent  float64
	Descent float64
	Advance float64

	// Highlight is nil for runs outside every token.
	Highlight *color.RGBA
	// Token is the index of the covering token, or -1.
	Token int
}

// Highlighted reports whether the run carries a highlight colour.
func (r Run) Highlighted() bool {
	return r.Highlight != nil
}

// Line 是一行排版结果
type Line struct {
	// Origin is the baseline start in text space (origin bottom-left, y up).
	Origin Point
	Range  Range
	Runs   []Run

	// Carets holds the x offset from Origin of every character boundary in
	// Range, so len(Carets) == Range.Length+1.
	Carets []float64
}

// MessageEntity 表示 Telegram 风格的消息实体
type MessageEntity struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// ToDict 将 MessageEntity 转换为 map
func (e MessageEntity) ToDict() map[string]interface{} {
	return map[string]interface{}{
		"type":   e.Type,
		"offset": e.Offset,
		"length": e.Length,
	}
}
