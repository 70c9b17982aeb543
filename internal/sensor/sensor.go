package sensor

import (
	"context"
	"errors"
)

// ErrExhausted is returned by finite sources once every reading was consumed.
var ErrExhausted = errors.New("sensor: source exhausted")

// Reading is one front/rear temperature pair in degrees.
type Reading struct {
	Front float64
	Rear  float64
}

// Source produces successive readings.
type Source interface {
	Next(ctx context.Context) (Reading, error)
}
