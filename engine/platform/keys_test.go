package platform

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/wireframe/engine/core"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want core.KeyCode
	}{
		{ebiten.KeyEscape, core.KEY_ESCAPE},
		{ebiten.KeyArrowUp, core.KEY_UP},
		{ebiten.KeyW, core.KEY_W},
		{ebiten.KeyShiftRight, core.KEY_SHIFT},
		{ebiten.KeyNumpadAdd, core.KEY_ADD},
	}
	for _, tt := range tests {
		got, ok := TranslateKey(tt.key)
		assert.True(t, ok, tt.key.String())
		assert.Equal(t, tt.want, got, tt.key.String())
	}

	_, ok := TranslateKey(ebiten.KeyCapsLock)
	assert.False(t, ok)
}

func TestLettersAreContiguous(t *testing.T) {
	seen := map[core.KeyCode]bool{}
	for _, code := range keymap {
		if code >= core.KEY_A && code <= core.KEY_Z {
			seen[code] = true
		}
	}
	assert.Len(t, seen, 26)
}

func TestLayoutPostsResize(t *testing.T) {
	events := core.NewEventSystem()
	var got *core.SystemEvent
	events.Register(core.EVENT_CODE_RESIZED, func(ctx core.EventContext) {
		got = ctx.Data.(*core.SystemEvent)
	})

	p := New(events, core.NewInputState(events))
	p.width, p.height = 800, 600

	w, h := p.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Zero(t, events.Dispatch())

	w, h = p.Layout(1024, 768)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
	assert.Equal(t, 1, events.Dispatch())
	assert.Equal(t, &core.SystemEvent{WindowWidth: 1024, WindowHeight: 768}, got)
}
