package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -0.13, Round2(-0.125))
	assert.Equal(t, 10.01, Round2(10.006))
	assert.Equal(t, 10.0, Round2(10.004))
	assert.Equal(t, 0.0, Round2(0))
}

func TestEffectivePrice(t *testing.T) {
	assert.Equal(t, 15.0, EffectivePrice(20.00, 25))
	assert.Equal(t, 20.0, EffectivePrice(20.00, 0))

	// out-of-range discounts clamp instead of erroring
	assert.Equal(t, 20.0, EffectivePrice(20.00, -5))
	assert.Equal(t, 2.0, EffectivePrice(20.00, 150))
}

func TestUnitPriceIncludesDeltas(t *testing.T) {
	// base 20.00 at 25% off is 15.00; a +2.50 option makes it 17.50
	assert.Equal(t, 17.50, UnitPrice(20.00, 25, 2.50))
	assert.Equal(t, 14.50, UnitPrice(20.00, 25, -0.50))
}
