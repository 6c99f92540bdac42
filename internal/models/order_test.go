package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatusProgression(t *testing.T) {
	assert.Equal(t, "preparing", NextStatus("pending"))
	assert.Equal(t, "cooking", NextStatus("preparing"))
	assert.Equal(t, "on the way", NextStatus("cooking"))
	assert.Equal(t, "delivered", NextStatus("on the way"))
	assert.Equal(t, "delivered", NextStatus("delivered"), "delivered is terminal")
	assert.Equal(t, "preparing", NextStatus("ready"), "free-form statuses rejoin the linear stages")
}
