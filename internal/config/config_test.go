package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetFPSLimitClamps(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	SetFPSLimit(5)
	assert.Equal(t, 10, GetFPSLimit())
	SetFPSLimit(5000)
	assert.Equal(t, 1000, GetFPSLimit())
	SetFPSLimit(-1)
	assert.Equal(t, 0, GetFPSLimit())
}

func TestToggleOverlay(t *testing.T) {
	defer SetOverlayVisible(GetOverlayVisible())

	SetOverlayVisible(false)
	assert.True(t, ToggleOverlay())
	assert.True(t, GetOverlayVisible())
	assert.False(t, ToggleOverlay())
}
