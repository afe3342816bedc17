package gpio

import (
	"sync"

	"parley/engine"
)

// Fake scripts the physical controls for tests and records LED state.
type Fake struct {
	mu         sync.Mutex
	direction  engine.Direction
	recordHeld bool
	exitFn     func()

	Recording        bool
	Ready            bool
	RecordingToggles int
}

func NewFake(d engine.Direction) *Fake {
	return &Fake{direction: d}
}

func (f *Fake) Direction() engine.Direction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.direction
}

func (f *Fake) RecordHeld() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recordHeld
}

func (f *Fake) OnExit(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exitFn = fn
}

func (f *Fake) SetDirection(d engine.Direction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.direction = d
}

func (f *Fake) SetRecordHeld(held bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recordHeld = held
}

// PressExit runs the registered exit callback synchronously, the way
// the edge watcher goroutine would.
func (f *Fake) PressExit() {
	f.mu.Lock()
	fn := f.exitFn
	f.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (f *Fake) SetRecording(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Recording = on
}

func (f *Fake) SetReady(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Ready = on
}

func (f *Fake) ToggleRecording() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Recording = !f.Recording
	f.RecordingToggles++
}

func (f *Fake) AllOff() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Recording = false
	f.Ready = false
}

func (f *Fake) LightState() (recording, ready bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Recording, f.Ready
}
