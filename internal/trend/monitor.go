package trend

import "errors"

// DefaultWindowSize covers two minutes at one sample per second.
const DefaultWindowSize = 120

// ErrNonFiniteSample is returned for NaN or infinite input.
var ErrNonFiniteSample = errors.New("trend: non-finite sample")

// Tick holds both channel updates produced by one OnSample call.
type Tick struct {
	Front Update
	Rear  Update
}

// Monitor owns the front and rear pipelines. It is not safe for concurrent
// use; callers deliver ticks from a single goroutine.
type Monitor struct {
	front *Pipeline
	rear  *Pipeline
}

// NewMonitor allocates both channels with empty windows.
func NewMonitor(capacity int, front, rear Sinks) *Monitor {
	return &Monitor{
		front: NewPipeline(Front, capacity, front),
		rear:  NewPipeline(Rear, capacity, rear),
	}
}

// OnSample feeds one sample pair. Both values are validated before either
// channel is touched, so a rejected pair leaves all state unchanged.
func (m *Monitor) OnSample(front, rear float64) (Tick, error) {
	if err := checkFinite(Front, front); err != nil {
		return Tick{}, err
	}
	if err := checkFinite(Rear, rear); err != nil {
		return Tick{}, err
	}

	f, err := m.front.Process(front)
	if err != nil {
		return Tick{}, err
	}
	r, err := m.rear.Process(rear)
	if err != nil {
		return Tick{}, err
	}
	return Tick{Front: f, Rear: r}, nil
}

// Updates returns the tick's channel updates in front, rear order.
func (t Tick) Updates() []Update {
	return []Update{t.Front, t.Rear}
}
