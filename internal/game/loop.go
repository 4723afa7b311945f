package game

import (
	"time"

	"voxelview/internal/input"
	"voxelview/internal/player"
	"voxelview/internal/profiling"
	"voxelview/internal/sky"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is everything the draw step needs for one frame.
type Frame struct {
	Index   uint64
	Time    time.Time
	Elapsed time.Duration
	Phase   float64
	Sky     mgl32.Vec3
	Pose    player.Pose
	View    mgl32.Mat4
}

// Drawer receives each frame once its pose and sky color are final.
type Drawer interface {
	Draw(f Frame)
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(f Frame)

func (fn DrawerFunc) Draw(f Frame) { fn(f) }

// Loop ties the controller, the day/night cycle and the drawer together.
// Each call to Frame runs time sampling, pose update, sky color and draw in that order.
type Loop struct {
	controller *player.Controller
	cycle      *sky.Cycle
	drawer     Drawer

	frames uint64
}

func NewLoop(controller *player.Controller, cycle *sky.Cycle, drawer Drawer) *Loop {
	return &Loop{controller: controller, cycle: cycle, drawer: drawer}
}

// Frame advances one tick at now. Movement only applies while the pointer is
// captured; otherwise the controller ticks with an empty intent.
func (l *Loop) Frame(now time.Time, intent input.Intent) Frame {
	elapsed := now.Sub(l.cycle.Start())

	if !l.controller.Captured() {
		intent = input.Intent{}
	}
	func() {
		defer profiling.Track("game.Tick")()
		l.controller.Tick(intent)
	}()

	phase, color := l.cycle.Sample(now)
	f := Frame{
		Index:   l.frames,
		Time:    now,
		Elapsed: elapsed,
		Phase:   phase,
		Sky:     color,
		Pose:    l.controller.Pose,
		View:    l.controller.GetViewMatrix(),
	}
	l.frames++

	func() {
		defer profiling.Track("game.Draw")()
		l.drawer.Draw(f)
	}()
	return f
}

// Frames is the number of frames drawn so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}
