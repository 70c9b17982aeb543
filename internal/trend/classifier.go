package trend

// Direction is the short-term trend of a channel's moving average.
type Direction uint8

const (
	// Rising is also the state before any sample has been seen.
	Rising Direction = iota
	Falling
)

func (d Direction) String() string {
	if d == Falling {
		return "falling"
	}
	return "rising"
}

// Classifier tracks the previous scaled average and direction of one channel.
type Classifier struct {
	prev    int
	hasPrev bool
	prevDir Direction
}

// Classify compares scaled against the previous value. Equal values count as
// rising. The first call never reports a transition.
func (c *Classifier) Classify(scaled int) (Direction, bool) {
	dir := Rising
	if c.hasPrev && scaled < c.prev {
		dir = Falling
	}
	transitioned := c.hasPrev && dir != c.prevDir

	c.prev = scaled
	c.hasPrev = true
	c.prevDir = dir
	return dir, transitioned
}

// Previous returns the last classified value, if any.
func (c *Classifier) Previous() (int, bool) {
	return c.prev, c.hasPrev
}
