package display

import "tiretemp/internal/trend"

// Series is a fixed-length point series in shift mode: each push drops the
// oldest point. Positions that were never written hold trend.None.
type Series struct {
	points []trend.Point
	start  int
}

// NewSeries allocates a series of n empty points.
func NewSeries(n int) *Series {
	if n <= 0 {
		panic("display: point count must be positive")
	}
	return &Series{points: make([]trend.Point, n)}
}

// Push appends p at the newest position.
func (s *Series) Push(p trend.Point) {
	s.points[s.start] = p
	s.start = (s.start + 1) % len(s.points)
}

// Len returns the fixed point count.
func (s *Series) Len() int { return len(s.points) }

// Points returns a copy ordered oldest first.
func (s *Series) Points() []trend.Point {
	out := make([]trend.Point, 0, len(s.points))
	out = append(out, s.points[s.start:]...)
	out = append(out, s.points[:s.start]...)
	return out
}

// Last returns the newest point.
func (s *Series) Last() trend.Point {
	idx := (s.start - 1 + len(s.points)) % len(s.points)
	return s.points[idx]
}

// Run is a contiguous stretch of present points.
type Run struct {
	Start  int
	Values []float64
}

// Runs splits points into contiguous stretches of present values. A gap
// between runs is where nothing should be drawn.
func Runs(points []trend.Point) []Run {
	var runs []Run
	var cur *Run
	for i, p := range points {
		v, ok := p.Get()
		if !ok {
			cur = nil
			continue
		}
		if cur == nil {
			runs = append(runs, Run{Start: i})
			cur = &runs[len(runs)-1]
		}
		cur.Values = append(cur.Values, float64(v))
	}
	return runs
}
