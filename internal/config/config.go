package config

import "sync"

// RenderSettings holds render configuration that can change while the loop runs
type RenderSettings struct {
	mu          sync.RWMutex
	fpsLimit    int // 0 means uncapped
	showOverlay bool
}

var globalRenderSettings = &RenderSettings{
	fpsLimit: 120, // default value
}

// GetFPSLimit returns the current frame cap
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Values <= 0 disable the cap.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit <= 0 {
		globalRenderSettings.fpsLimit = 0
		return
	}
	// Clamp to reasonable values
	if limit < 10 {
		limit = 10
	}
	if limit > 1000 {
		limit = 1000
	}
	globalRenderSettings.fpsLimit = limit
}

// GetOverlayVisible reports whether the FPS overlay is shown
func GetOverlayVisible() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.showOverlay
}

// SetOverlayVisible shows or hides the FPS overlay
func SetOverlayVisible(visible bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showOverlay = visible
}

// ToggleOverlay flips the FPS overlay and returns the new state
func ToggleOverlay() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showOverlay = !globalRenderSettings.showOverlay
	return globalRenderSettings.showOverlay
}
