package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		app.controller.HandleMouseMovement(xpos, ypos)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		app.renderer.UpdateViewport(fbWidth, fbHeight)
	})

	// Key-up events are lost while unfocused, so drop held keys and the pointer.
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			im.Reset()
			app.setCaptured(false)
		}
	})

	window.SetRefreshCallback(func(w *glfw.Window) {
		app.redraw()
	})
}
