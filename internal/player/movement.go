package player

import (
	"math"

	"voxelview/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// MovementAxes returns the horizontal forward and right unit vectors for the current yaw.
// Pitch is ignored so looking up or down never changes altitude.
func (c *Controller) MovementAxes() (front, right mgl32.Vec3) {
	yawRad := float64(mgl32.DegToRad(float32(c.Pose.Yaw)))
	front = mgl32.Vec3{float32(math.Cos(yawRad)), 0, float32(math.Sin(yawRad))}
	right = mgl32.Vec3{float32(math.Cos(yawRad + math.Pi/2)), 0, float32(math.Sin(yawRad + math.Pi/2))}
	return front, right
}

// Tick latches intent and moves the camera one fixed step along every held axis.
// Axes add up without normalization, so diagonals are faster and opposite keys cancel.
func (c *Controller) Tick(intent input.Intent) {
	c.intent = intent
	c.Pose.Position = c.Pose.Position.Add(c.Displacement(intent))
}

// Displacement is the offset one Tick with intent would apply.
func (c *Controller) Displacement(intent input.Intent) mgl32.Vec3 {
	forward := axis(intent.Forward, intent.Backward)
	strafe := axis(intent.Right, intent.Left)
	vertical := axis(intent.Up, intent.Down)
	if forward == 0 && strafe == 0 && vertical == 0 {
		return mgl32.Vec3{}
	}

	front, right := c.MovementAxes()
	d := front.Mul(forward).Add(right.Mul(strafe))
	d[1] += vertical
	return d.Mul(c.Step)
}

func axis(pos, neg bool) float32 {
	v := float32(0)
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
