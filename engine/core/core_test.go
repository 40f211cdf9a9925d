package core

import (
	"errors"
	"runtime"
	"sync"
	"testing"
)

func withEvents(t *testing.T) {
	t.Helper()
	if !EventSystemInitialize() {
		t.Fatal("event system already initialized")
	}
	t.Cleanup(func() { _ = EventSystemShutdown() })
}

func TestEventFireRunsListenersInOrder(t *testing.T) {
	withEvents(t)

	var got []int
	EventRegister(EVENT_CODE_APPLICATION_QUIT, func(EventContext) { got = append(got, 1) })
	EventRegister(EVENT_CODE_APPLICATION_QUIT, func(EventContext) { got = append(got, 2) })

	if !EventFire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT}) {
		t.Fatal("expected the event to be handled")
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("listeners ran as %v, want [1 2]", got)
	}
	if EventFire(EventContext{Type: EVENT_CODE_KEY_RELEASED}) {
		t.Error("event without listeners reported as handled")
	}
}

func TestEventPostDefersUntilDispatch(t *testing.T) {
	withEvents(t)

	var paths []string
	EventRegister(EVENT_CODE_SCENE_CHANGED, func(ctx EventContext) {
		paths = append(paths, ctx.Data.(*FileEvent).Path)
	})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			EventPost(EventContext{Type: EVENT_CODE_SCENE_CHANGED, Data: &FileEvent{Path: "scene.json"}})
		}()
	}
	wg.Wait()

	if len(paths) != 0 {
		t.Fatalf("posted events fired before dispatch: %v", paths)
	}
	if n := EventDispatch(); n != 4 {
		t.Errorf("EventDispatch() = %d, want 4", n)
	}
	if len(paths) != 4 {
		t.Errorf("got %d deliveries, want 4", len(paths))
	}
	if n := EventDispatch(); n != 0 {
		t.Errorf("second EventDispatch() = %d, want 0", n)
	}
}

func TestEventPostDropsWhenFull(t *testing.T) {
	withEvents(t)

	for i := 0; i < eventQueueSize; i++ {
		if !EventPost(EventContext{Type: EVENT_CODE_SCENE_CHANGED}) {
			t.Fatalf("post %d rejected early", i)
		}
	}
	if EventPost(EventContext{Type: EVENT_CODE_SCENE_CHANGED}) {
		t.Error("post beyond capacity accepted")
	}
}

func TestEventPostDuringShutdown(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				EventPost(EventContext{Type: EVENT_CODE_APPLICATION_QUIT})
				runtime.Gosched()
			}
		}()
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
		}
		EventSystemInitialize()
		EventDispatch()
		_ = EventSystemShutdown()
	}

	if EventPost(EventContext{Type: EVENT_CODE_APPLICATION_QUIT}) {
		t.Error("post accepted after shutdown")
	}
}

func TestInputProcessKeyFiresOnTransitionsOnly(t *testing.T) {
	withEvents(t)
	if err := InputInitialize(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		InputProcessKey(KEY_SPACE, false)
		_ = InputShutdown()
	})

	pressed, released := 0, 0
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) {
		if ctx.Data.(*KeyEvent).KeyCode == KEY_SPACE {
			pressed++
		}
	})
	EventRegister(EVENT_CODE_KEY_RELEASED, func(EventContext) { released++ })

	InputProcessKey(KEY_SPACE, true)
	InputProcessKey(KEY_SPACE, true)
	if !InputIsKeyDown(KEY_SPACE) {
		t.Error("space should be down")
	}
	InputUpdate()
	if !InputWasKeyDown(KEY_SPACE) {
		t.Error("space should have been down in the previous frame")
	}
	InputProcessKey(KEY_SPACE, false)

	if pressed != 1 || released != 1 {
		t.Errorf("pressed=%d released=%d, want 1 and 1", pressed, released)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
		err  error
	}{
		{"debug", LogLevelDebug, nil},
		{"", LogLevelInfo, nil},
		{" WARN ", LogLevelWarn, nil},
		{"error", LogLevelError, nil},
		{"loud", LogLevelInfo, ErrUnknownLogLevel},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLogLevel(tc.in)
			if !errors.Is(err, tc.err) {
				t.Fatalf("err = %v, want %v", err, tc.err)
			}
			if got != tc.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMetricsAverageAndFPS(t *testing.T) {
	if err := MetricsInitialize(); err != nil {
		t.Fatal(err)
	}
	metricsReset()
	t.Cleanup(metricsReset)

	// 70 frames of 16ms: more than a second, and more than one averaging window.
	for i := 0; i < 70; i++ {
		MetricsUpdate(0.016)
	}
	fps, ms := MetricsFrame()
	if ms < 15.9 || ms > 16.1 {
		t.Errorf("average frame time = %v ms, want 16", ms)
	}
	if fps != 62 {
		t.Errorf("fps = %v, want 62", fps)
	}
}
