package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifierFirstSampleIsRising(t *testing.T) {
	var c Classifier
	dir, transitioned := c.Classify(-500)
	assert.Equal(t, Rising, dir)
	assert.False(t, transitioned)

	prev, ok := c.Previous()
	assert.True(t, ok)
	assert.Equal(t, -500, prev)
}

func TestClassifierTieIsRising(t *testing.T) {
	var c Classifier
	c.Classify(250)
	dir, transitioned := c.Classify(250)
	assert.Equal(t, Rising, dir)
	assert.False(t, transitioned)
}

func TestClassifierMonotonicHasNoTransition(t *testing.T) {
	var c Classifier
	for v := 100; v < 200; v += 3 {
		dir, transitioned := c.Classify(v)
		require.Equal(t, Rising, dir, "value %d", v)
		require.False(t, transitioned, "value %d", v)
	}
}

func TestClassifierFlips(t *testing.T) {
	var c Classifier
	inputs := []int{10, 20, 15, 14, 14, 30}
	wantDir := []Direction{Rising, Rising, Falling, Falling, Rising, Rising}
	wantTrans := []bool{false, false, true, false, true, false}

	for i, v := range inputs {
		dir, transitioned := c.Classify(v)
		assert.Equal(t, wantDir[i], dir, "step %d", i)
		assert.Equal(t, wantTrans[i], transitioned, "step %d", i)
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "rising", Rising.String())
	assert.Equal(t, "falling", Falling.String())
}
