package platform

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spaghettifunk/wireframe/engine/core"
)

var keymap = map[ebiten.Key]core.KeyCode{
	ebiten.KeyBackspace:  core.KEY_BACKSPACE,
	ebiten.KeyTab:        core.KEY_TAB,
	ebiten.KeyEnter:      core.KEY_ENTER,
	ebiten.KeyShiftLeft:  core.KEY_SHIFT,
	ebiten.KeyShiftRight: core.KEY_SHIFT,
	ebiten.KeyEscape:     core.KEY_ESCAPE,
	ebiten.KeySpace:      core.KEY_SPACE,
	ebiten.KeyArrowLeft:  core.KEY_LEFT,
	ebiten.KeyArrowUp:    core.KEY_UP,
	ebiten.KeyArrowRight: core.KEY_RIGHT,
	ebiten.KeyArrowDown:  core.KEY_DOWN,
	ebiten.KeyA:          core.KEY_A,
	ebiten.KeyB:          core.KEY_B,
	ebiten.KeyC:          core.KEY_C,
	ebiten.KeyD:          core.KEY_D,
	ebiten.KeyE:          core.KEY_E,
	ebiten.KeyF:          core.KEY_F,
	ebiten.KeyG:          core.KEY_G,
	ebiten.KeyH:          core.KEY_H,
	ebiten.KeyI:          core.KEY_I,
	ebiten.KeyJ:          core.KEY_J,
	ebiten.KeyK:          core.KEY_K,
	ebiten.KeyL:          core.KEY_L,
	ebiten.KeyM:          core.KEY_M,
	ebiten.KeyN:          core.KEY_N,
	ebiten.KeyO:          core.KEY_O,
	ebiten.KeyP:          core.KEY_P,
	ebiten.KeyQ:          core.KEY_Q,
	ebiten.KeyR:          core.KEY_R,
	ebiten.KeyS:          core.KEY_S,
	ebiten.KeyT:          core.KEY_T,
	ebiten.KeyU:          core.KEY_U,
	ebiten.KeyV:          core.KEY_V,
	ebiten.KeyW:          core.KEY_W,
	ebiten.KeyX:          core.KEY_X,
	ebiten.KeyY:          core.KEY_Y,
	ebiten.KeyZ:          core.KEY_Z,

	ebiten.KeyNumpadAdd:      core.KEY_ADD,
	ebiten.KeyEqual:          core.KEY_ADD,
	ebiten.KeyNumpadSubtract: core.KEY_SUBTRACT,
	ebiten.KeyMinus:          core.KEY_SUBTRACT,
	ebiten.KeyF1:             core.KEY_F1,
}

// TranslateKey maps an ebiten key to the engine key code.
func TranslateKey(key ebiten.Key) (core.KeyCode, bool) {
	code, ok := keymap[key]
	return code, ok
}
