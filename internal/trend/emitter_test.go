package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmit(t *testing.T) {
	cases := []struct {
		name         string
		dir          Direction
		transitioned bool
		rising       Point
		falling      Point
	}{
		{"rising steady", Rising, false, Value(77), None},
		{"falling steady", Falling, false, None, Value(77)},
		{"rising pivot", Rising, true, Value(77), Value(77)},
		{"falling pivot", Falling, true, Value(77), Value(77)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rising, falling := Emit(77, tc.dir, tc.transitioned)
			assert.Equal(t, tc.rising, rising)
			assert.Equal(t, tc.falling, falling)
		})
	}
}

func TestEmitBridgesAtPivot(t *testing.T) {
	var c Classifier
	var rising, falling []Point
	for _, v := range []int{10, 20, 15} {
		dir, transitioned := c.Classify(v)
		r, f := Emit(v, dir, transitioned)
		rising = append(rising, r)
		falling = append(falling, f)
	}

	assert.Equal(t, []Point{Value(10), Value(20), Value(15)}, rising)
	assert.Equal(t, []Point{None, None, Value(15)}, falling)
}

func TestPointZeroIsNotNone(t *testing.T) {
	v, ok := Value(0).Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.True(t, None.IsNone())
	assert.False(t, Value(0).IsNone())
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "-12", Value(-12).String())
}
