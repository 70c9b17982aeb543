package trend

// Window is a fixed-capacity circular buffer of raw samples that yields the
// moving average of everything it currently holds.
type Window struct {
	buf    []float64
	next   int
	filled int
}

// NewWindow allocates an empty window holding up to capacity samples.
func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		panic("trend: window capacity must be positive")
	}
	return &Window{buf: make([]float64, capacity)}
}

// Insert overwrites the oldest slot with sample and returns the new average.
func (w *Window) Insert(sample float64) float64 {
	w.buf[w.next] = sample
	w.next = (w.next + 1) % len(w.buf)
	if w.filled < len(w.buf) {
		w.filled++
	}

	avg, ok := w.Average()
	if !ok {
		return sample
	}
	return avg
}

// Average scans the valid entries. Slots fill in index order, so the valid
// entries are always buf[:filled].
func (w *Window) Average() (float64, bool) {
	if w.filled == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range w.buf[:w.filled] {
		sum += v
	}
	return sum / float64(w.filled), true
}

// Len reports the number of valid samples.
func (w *Window) Len() int { return w.filled }

// Cap reports the window capacity.
func (w *Window) Cap() int { return len(w.buf) }
