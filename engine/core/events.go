package core

import (
	"sync"

	"github.com/spaghettifunk/wireframe/engine/containers"
)

// System internal event codes. Application should use codes beyond 255.
type EventCode int

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed.
	/* Context usage:
	 * key := context.Data.(*KeyEvent).KeyCode
	 */
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released.
	/* Context usage:
	 * key := context.Data.(*KeyEvent).KeyCode
	 */
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Resized/resolution changed from the OS.
	/* Context usage:
	 * se := context.Data.(*SystemEvent)
	 * se.WindowWidth, se.WindowHeight
	 */
	EVENT_CODE_RESIZED EventCode = 0x08

	MAX_EVENT_CODE EventCode = 0xFF
)

// Size of the deferred event queue drained once per frame.
const EVENT_QUEUE_SIZE = 256

type KeyEvent struct {
	KeyCode KeyCode
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type EventContext struct {
	Type EventCode
	Data interface{}
}

type FnOnEvent func(context EventContext)

// EventSystem routes events to the listeners registered for their code.
// Fire delivers synchronously; Post defers delivery until the next Dispatch,
// which the engine calls between frames.
type EventSystem struct {
	mu         sync.Mutex
	registered map[EventCode][]FnOnEvent
	queue      *containers.RingQueue[EventContext]
}

func NewEventSystem() *EventSystem {
	return &EventSystem{
		registered: make(map[EventCode][]FnOnEvent),
		queue:      containers.NewRingQueue[EventContext](EVENT_QUEUE_SIZE),
	}
}

/**
 * Register to listen for when events are sent with the provided code.
 * @param code The event code to listen for.
 * @param onEvent The callback invoked when the event code is fired.
 */
func (es *EventSystem) Register(code EventCode, onEvent FnOnEvent) {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.registered[code] = append(es.registered[code], onEvent)
}

// Unregister drops every listener of the given code.
func (es *EventSystem) Unregister(code EventCode) {
	es.mu.Lock()
	defer es.mu.Unlock()
	delete(es.registered, code)
}

/**
 * Fires an event to listeners of the given code, in registration order.
 * @returns true if at least one listener received the event.
 */
func (es *EventSystem) Fire(context EventContext) bool {
	es.mu.Lock()
	listeners := append([]FnOnEvent(nil), es.registered[context.Type]...)
	es.mu.Unlock()

	for _, fn := range listeners {
		fn(context)
	}
	return len(listeners) > 0
}

// Post queues the event for the next Dispatch.
func (es *EventSystem) Post(context EventContext) error {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.queue.Enqueue(context)
}

// Dispatch fires every queued event and returns how many were delivered.
func (es *EventSystem) Dispatch() int {
	n := 0
	for {
		es.mu.Lock()
		ctx, err := es.queue.Dequeue()
		es.mu.Unlock()
		if err != nil {
			return n
		}
		es.Fire(ctx)
		n++
	}
}

// Shutdown drops all listeners and pending events.
func (es *EventSystem) Shutdown() error {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.registered = make(map[EventCode][]FnOnEvent)
	es.queue = containers.NewRingQueue[EventContext](EVENT_QUEUE_SIZE)
	return nil
}
