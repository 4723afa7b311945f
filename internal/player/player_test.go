package player

import (
	"testing"

	"voxelview/internal/input"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertNear(t *testing.T, want, got mgl32.Vec3, tol float32) {
	t.Helper()
	assert.Lessf(t, got.Sub(want).Len(), tol, "got %v want %v", got, want)
}

func TestForwardOneTickMovesOneStep(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0})
	c.Tick(input.Intent{Forward: true})
	assert.Equal(t, mgl32.Vec3{WalkSpeed, 0, 0}, c.Pose.Position)
}

func TestForwardFollowsYaw(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 3})
	c.Pose.Yaw = 90
	c.Pose.Pitch = 45 // pitch must not leak into horizontal movement

	c.Tick(input.Intent{Forward: true})

	want := mgl32.Vec3{1, 2, 3 + WalkSpeed}
	assertNear(t, want, c.Pose.Position, 1e-6)
}

func TestDisplacementHasStepLength(t *testing.T) {
	c := New(mgl32.Vec3{})
	for _, yaw := range []float64{0, 30, 135, -60, 270} {
		c.Pose.Yaw = yaw
		d := c.Displacement(input.Intent{Forward: true})
		assert.InDeltaf(t, WalkSpeed, d.Len(), 1e-6, "yaw %v", yaw)
		assert.Equal(t, float32(0), d.Y())
	}
}

func TestOppositeIntentsCancel(t *testing.T) {
	c := New(mgl32.Vec3{5, 5, 5})
	c.Pose.Yaw = 37

	c.Tick(input.Intent{Forward: true, Backward: true})
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, c.Pose.Position)

	c.Tick(input.Intent{Left: true, Right: true, Up: true, Down: true})
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, c.Pose.Position)
}

func TestStrafeIsPerpendicular(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.Pose.Yaw = 20
	front, right := c.MovementAxes()
	assert.InDelta(t, 0, front.Dot(right), 1e-6)

	d := c.Displacement(input.Intent{Right: true})
	assertNear(t, right.Mul(WalkSpeed), d, 1e-6)
	l := c.Displacement(input.Intent{Left: true})
	assertNear(t, right.Mul(-WalkSpeed), l, 1e-6)
}

func TestVerticalIgnoresLookDirection(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.Pose.Yaw = 123
	c.Pose.Pitch = -80

	c.Tick(input.Intent{Up: true})
	assert.Equal(t, mgl32.Vec3{0, WalkSpeed, 0}, c.Pose.Position)

	c.Tick(input.Intent{Down: true})
	c.Tick(input.Intent{Down: true})
	assert.Equal(t, mgl32.Vec3{0, -WalkSpeed, 0}, c.Pose.Position)
}

func TestDiagonalIsNotNormalized(t *testing.T) {
	c := New(mgl32.Vec3{})
	d := c.Displacement(input.Intent{Forward: true, Right: true, Up: true})
	assert.InDelta(t, WalkSpeed*1.7320508, d.Len(), 1e-6)
}

func TestIdleTickKeepsPose(t *testing.T) {
	c := New(mgl32.Vec3{1, 1, 1})
	c.Tick(input.Intent{})
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, c.Pose.Position)
}

func TestLookRequiresCapture(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.Look(100, 100)
	assert.Equal(t, 0.0, c.Pose.Yaw)

	c.SetCaptured(true)
	c.Look(100, 50)
	assert.InDelta(t, 10.0, c.Pose.Yaw, 1e-9)
	assert.InDelta(t, 5.0, c.Pose.Pitch, 1e-9)
}

func TestPitchClamped(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.SetCaptured(true)
	c.Look(0, 10000)
	assert.Equal(t, MaxPitch, c.Pose.Pitch)
	c.Look(0, -100000)
	assert.Equal(t, -MaxPitch, c.Pose.Pitch)
}

func TestHandleMouseMovementSkipsFirstSample(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.SetCaptured(true)

	c.HandleMouseMovement(500, 300)
	assert.Equal(t, 0.0, c.Pose.Yaw)

	c.HandleMouseMovement(520, 290)
	assert.InDelta(t, 2.0, c.Pose.Yaw, 1e-9)
	assert.InDelta(t, 1.0, c.Pose.Pitch, 1e-9)
}

func TestReleaseClearsIntent(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.SetCaptured(true)
	c.Tick(input.Intent{Forward: true})
	assert.True(t, c.Intent().Forward)

	c.SetCaptured(false)
	assert.False(t, c.Captured())
	assert.False(t, c.Intent().Any())
}

func TestLookAt(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0})
	c.LookAt(mgl32.Vec3{0, 0, 10})
	assert.InDelta(t, 90.0, c.Pose.Yaw, 1e-4)
	assert.InDelta(t, 0.0, c.Pose.Pitch, 1e-4)

	front := c.GetFrontVector()
	assertNear(t, mgl32.Vec3{0, 0, 1}, front, 1e-5)

	c.LookAt(mgl32.Vec3{0, 100, 0})
	assert.Equal(t, MaxPitch, c.Pose.Pitch)
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	c := New(mgl32.Vec3{3, 4, 5})
	c.Pose.Yaw = 45
	v := c.GetViewMatrix()
	eye := v.Mul4x1(mgl32.Vec4{3, 4, 5, 1})
	assertNear(t, mgl32.Vec3{}, eye.Vec3(), 1e-5)
}
