package core

import (
	"sync"

	"github.com/spaghettifunk/softrast/engine/containers"
)

// System internal event codes. Application should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01
	// Keyboard key pressed. Data is *KeyEvent.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02
	// Keyboard key released. Data is *KeyEvent.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03
	// A watched scene file changed on disk. Data is *FileEvent.
	EVENT_CODE_SCENE_CHANGED EventCode = 0x04

	MAX_EVENT_CODE EventCode = 0xFF
)

// Size of the deferred queue; posts beyond this are dropped with a warning.
const eventQueueSize = 256

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type FileEvent struct {
	Path string
}

type FnOnEvent func(context EventContext)

type eventSystemState struct {
	registered map[EventCode][]FnOnEvent

	// deferred events posted from other goroutines, drained on the frame thread.
	mu      sync.Mutex
	pending *containers.RingQueue[EventContext]
}

var (
	// guards the eventState pointer, not the state it points to.
	eventStateMu sync.RWMutex
	eventState   *eventSystemState
)

func events() *eventSystemState {
	eventStateMu.RLock()
	defer eventStateMu.RUnlock()
	return eventState
}

func EventSystemInitialize() bool {
	eventStateMu.Lock()
	defer eventStateMu.Unlock()
	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{
		registered: make(map[EventCode][]FnOnEvent),
		pending:    containers.NewRingQueue[EventContext](eventQueueSize),
	}
	return true
}

func EventSystemShutdown() error {
	eventStateMu.Lock()
	defer eventStateMu.Unlock()
	eventState = nil
	return nil
}

// EventRegister adds a listener for the given code. Listeners run in
// registration order.
func EventRegister(code EventCode, onEvent FnOnEvent) bool {
	state := events()
	if state == nil || onEvent == nil {
		return false
	}
	state.registered[code] = append(state.registered[code], onEvent)
	return true
}

// EventFire delivers the event synchronously to every listener of its code.
// It must only be called from the frame thread.
func EventFire(context EventContext) bool {
	state := events()
	if state == nil {
		return false
	}
	listeners := state.registered[context.Type]
	for _, l := range listeners {
		l(context)
	}
	return len(listeners) > 0
}

// EventPost queues an event for the next EventDispatch. Safe to call from
// any goroutine, including while the event system shuts down.
func EventPost(context EventContext) bool {
	state := events()
	if state == nil {
		return false
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	if err := state.pending.Enqueue(context); err != nil {
		LogWarn("dropping event %d: %s", context.Type, err)
		return false
	}
	return true
}

// EventDispatch fires every queued event and returns how many were handled.
func EventDispatch() int {
	state := events()
	if state == nil {
		return 0
	}
	state.mu.Lock()
	queued := make([]EventContext, 0, state.pending.Len())
	for !state.pending.IsEmpty() {
		ctx, _ := state.pending.Dequeue()
		queued = append(queued, ctx)
	}
	state.mu.Unlock()

	for _, ctx := range queued {
		EventFire(ctx)
	}
	return len(queued)
}
