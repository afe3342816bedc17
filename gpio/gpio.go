// Package gpio reads the appliance's physical controls and drives its
// indicator LEDs: a momentary record button, a two-position direction
// switch, a momentary exit button, and two LEDs.
package gpio

import (
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"parley/engine"
)

// Inputs is the read side of the control panel. Direction and
// RecordHeld are polled; the exit button fires an asynchronous
// callback once per process lifetime.
type Inputs interface {
	Direction() engine.Direction
	RecordHeld() bool
	OnExit(fn func())
}

// Lights drives the two indicator LEDs.
type Lights interface {
	SetRecording(on bool)
	SetReady(on bool)
	ToggleRecording()
	AllOff()
}

// Pins names the GPIO lines by their registry names.
type Pins struct {
	Record    string
	Direction string
	Exit      string
	Recording string
	Ready     string
}

const exitDebounce = 100 * time.Millisecond

// Board is the periph.io-backed control panel.
type Board struct {
	record    gpio.PinIO
	direction gpio.PinIO
	exit      gpio.PinIO
	recording gpio.PinIO
	ready     gpio.PinIO

	mu          sync.Mutex
	recordingOn bool
	exitOnce    sync.Once
}

func Open(pins Pins) (*Board, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio host init: %w", err)
	}

	lookup := func(name string) (gpio.PinIO, error) {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("gpio pin %q not found", name)
		}
		return p, nil
	}

	b := &Board{}
	var err error
	if b.record, err = lookup(pins.Record); err != nil {
		return nil, err
	}
	if b.direction, err = lookup(pins.Direction); err != nil {
		return nil, err
	}
	if b.exit, err = lookup(pins.Exit); err != nil {
		return nil, err
	}
	if b.recording, err = lookup(pins.Recording); err != nil {
		return nil, err
	}
	if b.ready, err = lookup(pins.Ready); err != nil {
		return nil, err
	}

	// Buttons are wired active-low with pull-ups, the switch idles low.
	if err := b.record.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("record pin: %w", err)
	}
	if err := b.direction.In(gpio.PullDown, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("direction pin: %w", err)
	}
	if err := b.exit.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, fmt.Errorf("exit pin: %w", err)
	}
	if err := b.recording.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("recording led: %w", err)
	}
	if err := b.ready.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("ready led: %w", err)
	}

	return b, nil
}

func (b *Board) Direction() engine.Direction {
	if b.direction.Read() == gpio.High {
		return engine.SpanishToEnglish
	}
	return engine.EnglishToSpanish
}

func (b *Board) RecordHeld() bool {
	return b.record.Read() == gpio.Low
}

// OnExit watches the exit line on its own goroutine and invokes fn on
// the first debounced press. fn runs on that goroutine and may overlap
// with any state of the main loop.
func (b *Board) OnExit(fn func()) {
	go func() {
		for {
			if !b.exit.WaitForEdge(-1) {
				return
			}
			time.Sleep(exitDebounce)
			if b.exit.Read() != gpio.Low {
				continue
			}
			b.exitOnce.Do(fn)
			return
		}
	}()
}

func (b *Board) SetRecording(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.recordingOn = on
	b.recording.Out(level(on))
}

func (b *Board) SetReady(on bool) {
	b.ready.Out(level(on))
}

func (b *Board) ToggleRecording() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.recordingOn = !b.recordingOn
	b.recording.Out(level(b.recordingOn))
}

func (b *Board) AllOff() {
	b.SetRecording(false)
	b.SetReady(false)
}

func level(on bool) gpio.Level {
	if on {
		return gpio.High
	}
	return gpio.Low
}
