package core

import "sync"

// Key code definitions. Values follow the virtual-key table so that
// platform layers can translate with a single lookup.
type KeyCode uint16

const (
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_SHIFT     KeyCode = 0x10
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_A         KeyCode = 0x41
	KEY_B         KeyCode = 0x42
	KEY_C         KeyCode = 0x43
	KEY_D         KeyCode = 0x44
	KEY_E         KeyCode = 0x45
	KEY_F         KeyCode = 0x46
	KEY_G         KeyCode = 0x47
	KEY_H         KeyCode = 0x48
	KEY_I         KeyCode = 0x49
	KEY_J         KeyCode = 0x4A
	KEY_K         KeyCode = 0x4B
	KEY_L         KeyCode = 0x4C
	KEY_M         KeyCode = 0x4D
	KEY_N         KeyCode = 0x4E
	KEY_O         KeyCode = 0x4F
	KEY_P         KeyCode = 0x50
	KEY_Q         KeyCode = 0x51
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_T         KeyCode = 0x54
	KEY_U         KeyCode = 0x55
	KEY_V         KeyCode = 0x56
	KEY_W         KeyCode = 0x57
	KEY_X         KeyCode = 0x58
	KEY_Y         KeyCode = 0x59
	KEY_Z         KeyCode = 0x5A
	KEY_ADD       KeyCode = 0x6B
	KEY_SUBTRACT  KeyCode = 0x6D
	KEY_F1        KeyCode = 0x70

	KEYS_MAX_KEYS KeyCode = 0xFF
)

// Keyboard state structure
type KeyboardState struct {
	Keys [256]bool
}

// InputState holds current and previous keyboard states. Changes are
// reported to the event system as KEY_PRESSED / KEY_RELEASED.
type InputState struct {
	mu       sync.RWMutex
	current  KeyboardState
	previous KeyboardState
	events   *EventSystem
}

func NewInputState(events *EventSystem) *InputState {
	return &InputState{events: events}
}

// Update copies current states to previous states. Call once per frame,
// after all input of the frame has been recorded.
func (is *InputState) Update(deltaTime float64) {
	is.mu.Lock()
	defer is.mu.Unlock()
	is.previous = is.current
}

func (is *InputState) IsKeyDown(key KeyCode) bool {
	is.mu.RLock()
	defer is.mu.RUnlock()
	return is.current.Keys[key&KEYS_MAX_KEYS]
}

func (is *InputState) IsKeyUp(key KeyCode) bool {
	return !is.IsKeyDown(key)
}

func (is *InputState) WasKeyDown(key KeyCode) bool {
	is.mu.RLock()
	defer is.mu.RUnlock()
	return is.previous.Keys[key&KEYS_MAX_KEYS]
}

func (is *InputState) WasKeyUp(key KeyCode) bool {
	return !is.WasKeyDown(key)
}

// ProcessKey records a key transition and fires the matching event.
// Repeated reports of the same state are ignored.
func (is *InputState) ProcessKey(key KeyCode, pressed bool) {
	key &= KEYS_MAX_KEYS
	is.mu.Lock()
	if is.current.Keys[key] == pressed {
		is.mu.Unlock()
		return
	}
	is.current.Keys[key] = pressed
	is.mu.Unlock()

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	if is.events != nil {
		is.events.Fire(EventContext{
			Type: code,
			Data: &KeyEvent{KeyCode: key},
		})
	}
}
