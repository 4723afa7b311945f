package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraViewport(t *testing.T) {
	c := NewCamera(900, 600)
	assert.InDelta(t, 1.5, c.AspectRatio, 1e-6)

	c.SetViewport(0, 0)
	assert.InDelta(t, 1.5, c.AspectRatio, 1e-6, "minimized window keeps the last aspect")

	c.SetViewport(400, 800)
	assert.InDelta(t, 0.5, c.AspectRatio, 1e-6)
	assert.NotEqual(t, float32(0), c.GetProjectionMatrix().At(0, 0))
}
