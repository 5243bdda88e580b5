package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMeasureCoversSleep(t *testing.T) {
	const nap = 20 * time.Millisecond

	d := Measure(func() { time.Sleep(nap) })

	assert.GreaterOrEqual(t, d, nap)
	// Generous upper bound; only guards against a wildly broken clock.
	assert.Less(t, d, time.Second)
}

func TestSecondsNonNegative(t *testing.T) {
	s := Seconds(func() {})

	assert.GreaterOrEqual(t, s, 0.0)
}

func TestSecondsResolution(t *testing.T) {
	// Sub-millisecond work must produce a non-zero reading.
	s := Seconds(func() { time.Sleep(100 * time.Microsecond) })

	assert.Greater(t, s, 0.0)
	assert.Less(t, s, 0.1)
}

func TestKeepAlive(t *testing.T) {
	KeepAlive(true)
	assert.True(t, Observed())

	KeepAlive(false)
	assert.False(t, Observed())
}
