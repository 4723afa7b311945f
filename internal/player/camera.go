package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// HandleMouseMovement turns absolute cursor positions into look deltas.
// The first sample after capture only records the position.
func (c *Controller) HandleMouseMovement(xpos, ypos float64) {
	if !c.captured {
		return
	}
	if c.FirstMouse {
		c.LastMouseX = xpos
		c.LastMouseY = ypos
		c.FirstMouse = false
		return
	}

	xoffset := xpos - c.LastMouseX
	yoffset := c.LastMouseY - ypos
	c.LastMouseX = xpos
	c.LastMouseY = ypos

	c.Look(xoffset, yoffset)
}

// Look applies raw pointer deltas while the pointer is captured.
func (c *Controller) Look(dx, dy float64) {
	if !c.captured {
		return
	}
	c.Pose.Yaw += dx * c.Sensitivity
	c.Pose.Pitch += dy * c.Sensitivity
	c.Pose.Yaw = math.Mod(c.Pose.Yaw, 360)
	c.Pose.Pitch = clampPitch(c.Pose.Pitch)
}

// LookAt points the camera at target.
func (c *Controller) LookAt(target mgl32.Vec3) {
	d := target.Sub(c.Pose.Position)
	if d.Len() == 0 {
		return
	}
	d = d.Normalize()
	c.Pose.Yaw = float64(mgl32.RadToDeg(float32(math.Atan2(float64(d.Z()), float64(d.X())))))
	c.Pose.Pitch = clampPitch(float64(mgl32.RadToDeg(float32(math.Asin(float64(d.Y()))))))
}

func clampPitch(p float64) float64 {
	if p > MaxPitch {
		return MaxPitch
	}
	if p < -MaxPitch {
		return -MaxPitch
	}
	return p
}

func (c *Controller) GetFrontVector() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(c.Pose.Yaw))
	pt := mgl32.DegToRad(float32(c.Pose.Pitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(pt)))
	fy := float32(math.Sin(float64(pt)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(pt)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

func (c *Controller) GetViewMatrix() mgl32.Mat4 {
	eye := c.Pose.Position
	return mgl32.LookAtV(eye, eye.Add(c.GetFrontVector()), mgl32.Vec3{0, 1, 0})
}
