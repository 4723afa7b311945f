package game

import (
	"fmt"
	"log"
	"time"

	"voxelview/internal/config"
	"voxelview/internal/graphics"
	"voxelview/internal/input"
	"voxelview/internal/physics"
	"voxelview/internal/player"
	"voxelview/internal/profiling"
	"voxelview/internal/sky"
	"voxelview/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const slowFrame = 16 * time.Millisecond

// App owns the window and drives the Loop once per frame.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager

	grid       *world.Grid
	blockSize  float32
	controller *player.Controller
	renderer   *graphics.Renderer
	loop       *Loop

	fpsLimiter *FPSLimiter
	fps        *profiling.FPSCounter
	title      string
	last       Frame
}

func NewApp(window *glfw.Window, im *input.InputManager, settings config.Settings, grid *world.Grid, controller *player.Controller, cycle *sky.Cycle, r *graphics.Renderer) *App {
	a := &App{
		window:       window,
		inputManager: im,
		grid:         grid,
		blockSize:    settings.World.BlockSize,
		controller:   controller,
		renderer:     r,
		fpsLimiter:   NewFPSLimiter(),
		fps:          profiling.NewFPSCounter(time.Second),
		title:        settings.Display.Title,
	}
	a.loop = NewLoop(controller, cycle, a)
	// a refresh can arrive before the first tick
	a.last = initialFrame(controller, cycle, time.Now())

	syncViewport(window, r)
	return a
}

type framebufferSizer interface {
	GetFramebufferSize() (width, height int)
}

type viewportUpdater interface {
	UpdateViewport(width, height int)
}

// syncViewport sizes the projection from the framebuffer, which differs from
// the window size on HiDPI screens.
func syncViewport(w framebufferSizer, r viewportUpdater) {
	r.UpdateViewport(w.GetFramebufferSize())
}

// initialFrame is the frame redraw falls back to until the loop has drawn one.
func initialFrame(controller *player.Controller, cycle *sky.Cycle, now time.Time) Frame {
	phase, color := cycle.Sample(now)
	return Frame{
		Time:    now,
		Elapsed: now.Sub(cycle.Start()),
		Phase:   phase,
		Sky:     color,
		Pose:    controller.Pose,
		View:    controller.GetViewMatrix(),
	}
}

// Run ticks until the window is closed or exit fires.
func (a *App) Run(exit <-chan struct{}) {
	for !a.window.ShouldClose() {
		select {
		case <-exit:
			return
		default:
		}
		a.tick()
	}
}

// Draw implements Drawer.
func (a *App) Draw(f Frame) {
	a.renderer.Render(f.View, f.Sky)
	a.last = f
}

func (a *App) Frames() uint64 {
	return a.loop.Frames()
}

func (a *App) tick() {
	profiling.ResetFrame()
	now := time.Now()

	glfw.PollEvents()
	a.handleActions()

	a.loop.Frame(now, a.inputManager.Intent())
	a.window.SwapBuffers()

	if a.fps.Frame(now) && config.GetOverlayVisible() {
		a.refreshOverlay(true)
	}

	if d := time.Since(now); d > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait(!a.controller.Captured())
}

func (a *App) handleActions() {
	im := a.inputManager
	if im.JustPressed(input.ActionCapturePointer) && !a.controller.Captured() {
		a.setCaptured(true)
	}
	if im.JustPressed(input.ActionReleasePointer) && a.controller.Captured() {
		a.setCaptured(false)
	}
	if im.JustPressed(input.ActionToggleOverlay) {
		a.refreshOverlay(config.ToggleOverlay())
	}
}

func (a *App) setCaptured(captured bool) {
	a.controller.SetCaptured(captured)
	if captured {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// redraw repaints the last frame, e.g. while the window is being resized.
func (a *App) redraw() {
	a.renderer.Render(a.controller.GetViewMatrix(), a.last.Sky)
	a.window.SwapBuffers()
}

func (a *App) refreshOverlay(visible bool) {
	if !visible {
		a.window.SetTitle(a.title)
		return
	}
	hit := physics.Raycast(a.grid, a.controller.Pose.Position, a.controller.GetFrontVector(), physics.MaxReachDistance, a.blockSize)
	a.window.SetTitle(overlayTitle(a.title, a.fps.FPS(), hit))
}

// overlayTitle renders the FPS overlay and the targeted block into the window title.
func overlayTitle(base string, fps float64, target physics.RaycastResult) string {
	title := fmt.Sprintf("%s | %.0f FPS", base, fps)
	if target.Hit {
		c := target.Cell
		title += fmt.Sprintf(" | %s (%d,%d,%d) %s", target.Block, c[0], c[1], c[2], target.Face)
	}
	return title
}
