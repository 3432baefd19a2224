package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFireReachesListenersInOrder(t *testing.T) {
	es := NewEventSystem()
	var got []int
	es.Register(EVENT_CODE_APPLICATION_QUIT, func(EventContext) { got = append(got, 1) })
	es.Register(EVENT_CODE_APPLICATION_QUIT, func(EventContext) { got = append(got, 2) })

	require.True(t, es.Fire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT}))
	assert.Equal(t, []int{1, 2}, got)
	assert.False(t, es.Fire(EventContext{Type: EVENT_CODE_RESIZED}))
}

func TestEventPostIsDeferredUntilDispatch(t *testing.T) {
	es := NewEventSystem()
	var keys []KeyCode
	es.Register(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) {
		keys = append(keys, ctx.Data.(*KeyEvent).KeyCode)
	})

	require.NoError(t, es.Post(EventContext{Type: EVENT_CODE_KEY_PRESSED, Data: &KeyEvent{KeyCode: KEY_A}}))
	require.NoError(t, es.Post(EventContext{Type: EVENT_CODE_KEY_PRESSED, Data: &KeyEvent{KeyCode: KEY_B}}))
	assert.Empty(t, keys)

	assert.Equal(t, 2, es.Dispatch())
	assert.Equal(t, []KeyCode{KEY_A, KEY_B}, keys)
	assert.Equal(t, 0, es.Dispatch())
}

func TestEventUnregisterAndShutdown(t *testing.T) {
	es := NewEventSystem()
	calls := 0
	es.Register(EVENT_CODE_RESIZED, func(EventContext) { calls++ })
	es.Unregister(EVENT_CODE_RESIZED)
	es.Fire(EventContext{Type: EVENT_CODE_RESIZED})
	assert.Equal(t, 0, calls)

	es.Register(EVENT_CODE_RESIZED, func(EventContext) { calls++ })
	require.NoError(t, es.Post(EventContext{Type: EVENT_CODE_RESIZED}))
	require.NoError(t, es.Shutdown())
	assert.Equal(t, 0, es.Dispatch())
	assert.Equal(t, 0, calls)
}

func TestInputProcessKeyFiresOnTransitionsOnly(t *testing.T) {
	es := NewEventSystem()
	var pressed, released int
	es.Register(EVENT_CODE_KEY_PRESSED, func(EventContext) { pressed++ })
	es.Register(EVENT_CODE_KEY_RELEASED, func(EventContext) { released++ })

	in := NewInputState(es)
	in.ProcessKey(KEY_ESCAPE, true)
	in.ProcessKey(KEY_ESCAPE, true)
	assert.True(t, in.IsKeyDown(KEY_ESCAPE))
	assert.True(t, in.WasKeyUp(KEY_ESCAPE))

	in.Update(0.016)
	assert.True(t, in.WasKeyDown(KEY_ESCAPE))

	in.ProcessKey(KEY_ESCAPE, false)
	assert.True(t, in.IsKeyUp(KEY_ESCAPE))
	assert.Equal(t, 1, pressed)
	assert.Equal(t, 1, released)
}
