package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionReleasePointer
	ActionToggleOverlay
	ActionCapturePointer
	ActionCount // Sentinel value for array sizing
)

// Intent is the movement requested for one tick.
type Intent struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
}

// Any reports whether any movement flag is set.
func (i Intent) Any() bool {
	return i.Forward || i.Backward || i.Left || i.Right || i.Up || i.Down
}

// InputManager maps physical keys/buttons to logical actions and tracks their state.
// GLFW delivers callbacks on the main thread inside PollEvents, the same thread
// that reads the state, so no locking is done here.
type InputManager struct {
	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Mouse button to action mapping
	mouseButtonToActions map[glfw.MouseButton][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Just pressed flags (reset each frame)
	justPressed [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeySpace, ActionMoveUp)
	im.BindKey(glfw.KeyLeftShift, ActionMoveDown)
	im.BindKey(glfw.KeyEscape, ActionReleasePointer)
	im.BindKey(glfw.KeyF3, ActionToggleOverlay)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionCapturePointer)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}
	im.apply(actions, action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent processes a mouse button event and updates internal state
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	actions, exists := im.mouseButtonToActions[button]
	if !exists {
		return
	}
	im.apply(actions, action == glfw.Press)
}

func (im *InputManager) apply(actions []Action, isPressed bool) {
	for _, act := range actions {
		// Detect edges immediately when event arrives
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// PostUpdate must be called at the end of each frame to reset edge detection
func (im *InputManager) PostUpdate() {
	for i := range ActionCount {
		im.justPressed[i] = false
	}
}

// Reset releases every action, e.g. when the window loses focus and key-up events would be missed.
func (im *InputManager) Reset() {
	for i := range ActionCount {
		im.currentState[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.justPressed[action]
}

// Intent snapshots the held movement actions.
func (im *InputManager) Intent() Intent {
	return Intent{
		Forward:  im.IsActive(ActionMoveForward),
		Backward: im.IsActive(ActionMoveBackward),
		Left:     im.IsActive(ActionMoveLeft),
		Right:    im.IsActive(ActionMoveRight),
		Up:       im.IsActive(ActionMoveUp),
		Down:     im.IsActive(ActionMoveDown),
	}
}
