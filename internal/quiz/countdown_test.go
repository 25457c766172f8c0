package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdownStopIsIdempotent(t *testing.T) {
	var c Countdown
	assert.False(t, c.Stop())

	c.Start(3)
	assert.True(t, c.Running())
	assert.True(t, c.Stop())
	assert.False(t, c.Stop())
	assert.False(t, c.Running())
}

func TestCountdownAcceptsOnlyArmedSession(t *testing.T) {
	var c Countdown
	assert.False(t, c.Accepts(0))

	c.Start(1)
	assert.True(t, c.Accepts(1))
	assert.False(t, c.Accepts(2))

	c.Start(2)
	assert.False(t, c.Accepts(1))
	assert.True(t, c.Accepts(2))
	assert.Equal(t, 2, c.Session())

	c.Stop()
	assert.False(t, c.Accepts(2))
}
