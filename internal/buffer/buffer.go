package buffer

// CaretBuffer accumulates character advances for one visual line and tracks
// the current x offset.
type CaretBuffer struct {
	start  int
	carets []float64
}

// New creates a new CaretBuffer for a line starting at rune index start.
func New(start int) *CaretBuffer {
	return &CaretBuffer{
		start:  start,
		carets: []float64{0},
	}
}

// Write appends one character of the given advance.
func (cb *CaretBuffer) Write(advance float64) {
	cb.carets = append(cb.carets, cb.X()+advance)
}

// X returns the current x offset.
func (cb *CaretBuffer) X() float64 {
	return cb.carets[len(cb.carets)-1]
}

// Start returns the rune index of the first character.
func (cb *CaretBuffer) Start() int {
	return cb.start
}

// Len returns the number of characters written.
func (cb *CaretBuffer) Len() int {
	return len(cb.carets) - 1
}

// PopLast removes the last written character.
func (cb *CaretBuffer) PopLast() {
	if cb.Len() == 0 {
		return
	}
	cb.carets = cb.carets[:len(cb.carets)-1]
}

// Carets returns a copy of the caret offsets, one more than Len.
func (cb *CaretBuffer) Carets() []float64 {
	out := make([]float64, len(cb.carets))
	copy(out, cb.carets)
	return out
}

// Reset clears the buffer for a new line starting at start.
func (cb *CaretBuffer) Reset(start int) {
	cb.start = start
	cb.carets = cb.carets[:1]
}
