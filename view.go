package hashtagview

import "sync/atomic"

// ActionHandler receives the hashtag a tap resolved to.
type ActionHandler func(tok Token)

// View holds the text and bounds assigned by the host and the latest layout
// snapshot. SetText and SetBounds run on the host's UI thread; every change
// builds a new Snapshot and swaps it in whole, so Draw and HandleTap only
// ever see one complete pass.
type View struct {
	text    string
	bounds  Size
	options *Options
	handler ActionHandler

	snapshot atomic.Pointer[Snapshot]
}

// NewView creates an empty View.
func NewView(opts ...Option) *View {
	v := &View{options: applyOptions(opts...)}
	v.relayout()
	return v
}

// OnTap sets the handler called when a tap hits a hashtag.
func (v *View) OnTap(h ActionHandler) {
	v.handler = h
}

// SetText assigns new text and re-runs the layout pass.
func (v *View) SetText(text string) {
	v.text = text
	v.relayout()
}

// SetBounds assigns a new bounding box and re-runs the layout pass.
func (v *View) SetBounds(box Size) {
	if box == v.bounds {
		return
	}
	v.bounds = box
	v.relayout()
}

// Text returns the current text.
func (v *View) Text() string {
	return v.text
}

// Bounds returns the current bounding box.
func (v *View) Bounds() Size {
	return v.bounds
}

func (v *View) relayout() {
	v.snapshot.Store(layoutPass(v.text, v.bounds, v.options))
}

// Snapshot returns the current layout snapshot.
func (v *View) Snapshot() *Snapshot {
	return v.snapshot.Load()
}

// Draw paints the current snapshot's highlights onto surface.
func (v *View) Draw(surface Surface) int {
	return v.Snapshot().Draw(surface)
}

// HandleTap resolves p against the current snapshot and passes a hit to the
// tap handler. A miss is not an error.
func (v *View) HandleTap(p Point) (Token, bool) {
	tok, ok := v.Snapshot().Resolve(p)
	if ok && v.handler != nil {
		v.handler(tok)
	}
	return tok, ok
}

// ShouldRequireFailureOf reports whether the tap recognizer must wait for
// another recognizer to fail first. It never does, so taps coexist with the
// container's scroll and swipe gestures.
func (v *View) ShouldRequireFailureOf(other any) bool {
	return false
}
