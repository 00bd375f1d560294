// Package notice shows short-lived messages such as the order copied toast.
package notice

import (
	"go-retail/pkg/threadsafe"
	"sync"
	"time"
)

const DefaultDuration = 3 * time.Second

type state struct {
	message    string
	generation uint64
}

// Toast holds at most one visible message. Showing a new message replaces the
// current one and restarts the hide timer, so a timer left over from an
// earlier message never hides a newer one.
type Toast struct {
	duration time.Duration
	current  *threadsafe.Value[state]

	mux   sync.Mutex
	timer *time.Timer
}

func NewToast(duration time.Duration) *Toast {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Toast{
		duration: duration,
		current:  threadsafe.NewValue(state{}),
	}
}

func (t *Toast) Show(message string) {
	next := t.current.Update(func(s state) state {
		return state{message: message, generation: s.generation + 1}
	})

	t.mux.Lock()
	defer t.mux.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.duration, func() {
		t.current.SetIf(state{generation: next.generation}, func(s state) bool {
			return s.generation == next.generation
		})
	})
}

// Current returns the visible message, or "" when nothing is shown.
func (t *Toast) Current() string {
	return t.current.Get().message
}

// Close hides the message and stops the pending timer.
func (t *Toast) Close() {
	t.current.Update(func(s state) state {
		return state{generation: s.generation + 1}
	})

	t.mux.Lock()
	defer t.mux.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
