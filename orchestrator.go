package main

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"parley/audio"
	"parley/engine"
	"parley/gpio"
	"parley/log"
)

type state int

const (
	stateIdle state = iota
	stateRecording
	stateTranscribing
	stateTranslating
	stateAwaitPlayback
	stateSpeaking
	stateSwitching
	stateExiting
)

const (
	defaultPoll       = 10 * time.Millisecond
	exitBlinkCount    = 8
	exitBlinkInterval = 250 * time.Millisecond
)

// announcer is the subset of announce.Player the control loop needs.
type announcer interface {
	Mode(d engine.Direction)
	NoAudio(d engine.Direction)
	Exit()
}

// captureStarter opens one recording attempt.
type captureStarter interface {
	Start() (*audio.Session, error)
}

// utterance is the text flowing through one pipeline pass. Discarded
// whole on any cancellation.
type utterance struct {
	pcm        []byte
	recognized string
	punctuated string
	translated string
}

// Orchestrator owns the translation cycle: it arbitrates the physical
// inputs, hands captured audio through the pipeline stages, and keeps
// exactly one model set resident for the active direction.
type Orchestrator struct {
	inputs    gpio.Inputs
	lights    gpio.Lights
	recorder  captureStarter
	speaker   audio.PlaybackDevice
	ann       announcer
	loader    *engine.Loader
	punct     engine.Punctuator
	hasSpeech func(pcm []byte) bool // optional VAD gate
	powerOff  func()

	poll       time.Duration
	blinks     int
	blinkEvery time.Duration

	direction     engine.Direction
	nextDirection engine.Direction
	models        *engine.ModelSet
	utterances    int

	exitFlag atomic.Bool
	exitOnce sync.Once
}

func newOrchestrator(inputs gpio.Inputs, lights gpio.Lights, recorder captureStarter,
	speaker audio.PlaybackDevice, ann announcer, loader *engine.Loader, punct engine.Punctuator) *Orchestrator {
	return &Orchestrator{
		inputs:     inputs,
		lights:     lights,
		recorder:   recorder,
		speaker:    speaker,
		ann:        ann,
		loader:     loader,
		punct:      punct,
		poll:       defaultPoll,
		blinks:     exitBlinkCount,
		blinkEvery: exitBlinkInterval,
	}
}

// requestExit runs the fixed exit sequence once: blink the recording
// LED, play the exit sound, then raise the monotonic exit flag. Safe
// to call from the GPIO edge watcher or the signal handler while the
// main loop is anywhere in its cycle.
func (o *Orchestrator) requestExit() {
	o.exitOnce.Do(func() {
		for i := 0; i < o.blinks; i++ {
			o.lights.ToggleRecording()
			time.Sleep(o.blinkEvery)
		}
		o.ann.Exit()
		o.exitFlag.Store(true)
		log.Info("exit requested")
	})
}

// Run drives the state machine until the exit flag resolves a wait.
// It returns an error only for the startup-fatal case of the initial
// model load failing.
func (o *Orchestrator) Run() error {
	o.inputs.OnExit(o.requestExit)

	o.direction = o.inputs.Direction()
	set, err := o.loader.Load(o.direction)
	if err != nil {
		return fmt.Errorf("startup model load: %w", err)
	}
	o.models = set
	log.Info("mode: " + o.direction.String())
	o.ann.Mode(o.direction)

	st := stateIdle
	var u utterance
	for {
		switch st {
		case stateIdle:
			st = o.idle()
		case stateRecording:
			st = o.record(&u)
		case stateTranscribing:
			st = o.transcribe(&u)
		case stateTranslating:
			st = o.translate(&u)
		case stateAwaitPlayback:
			st = o.awaitPlayback()
		case stateSpeaking:
			st = o.speak(u.translated)
		case stateSwitching:
			st = o.switchDirection()
		case stateExiting:
			o.lights.AllOff()
			o.loader.Unload()
			log.SessionEnd(o.utterances)
			if o.powerOff != nil {
				o.powerOff()
			}
			return nil
		}
	}
}

func (o *Orchestrator) idle() state {
	o.lights.SetRecording(false)
	o.lights.SetReady(false)
	dec, next := o.waitFor(o.inputs.RecordHeld)
	switch dec {
	case DecisionExit:
		return stateExiting
	case DecisionDirectionChanged:
		o.nextDirection = next
		return stateSwitching
	}
	return stateRecording
}

// record captures while the button is held. A direction change or
// exit during capture stops the stream and discards the audio; a
// failed capture start proceeds with zero samples.
func (o *Orchestrator) record(u *utterance) state {
	*u = utterance{}
	o.lights.SetRecording(true)

	sess, err := o.recorder.Start()
	if err != nil {
		log.Errorf("capture start failed: %v", err)
		sess = nil
	}

	dec, next := o.waitFor(func() bool { return !o.inputs.RecordHeld() })
	if sess != nil {
		sess.Stop()
	}
	o.lights.SetRecording(false)

	switch dec {
	case DecisionExit:
		return stateExiting
	case DecisionDirectionChanged:
		o.nextDirection = next
		return stateSwitching
	}

	if sess != nil {
		u.pcm = sess.Drain()
	}
	if len(u.pcm) == 0 {
		log.Info("no audio recorded")
		o.ann.NoAudio(o.direction)
		return stateIdle
	}
	if o.hasSpeech != nil && !o.hasSpeech(u.pcm) {
		log.Info("no voice in recording")
		o.ann.NoAudio(o.direction)
		return stateIdle
	}
	return stateTranscribing
}

func (o *Orchestrator) transcribe(u *utterance) state {
	o.lights.SetRecording(true)
	started := time.Now()
	text, err := o.models.Recognizer.Recognize(u.pcm, audio.CaptureRate)
	log.Stage("recognize", time.Since(started))
	o.lights.SetRecording(false)

	if err != nil {
		log.Errorf("recognition failed: %v", err)
		o.ann.NoAudio(o.direction)
		return stateIdle
	}
	if strings.TrimSpace(text) == "" {
		log.Info("no speech detected")
		o.ann.NoAudio(o.direction)
		return stateIdle
	}
	u.recognized = text

	punctuated, err := o.punct.Restore(text)
	if err != nil {
		log.Warnf("punctuation failed: %v", err)
		punctuated = text
	}
	u.punctuated = punctuated
	return stateTranslating
}

func (o *Orchestrator) translate(u *utterance) state {
	o.lights.SetRecording(true)
	started := time.Now()
	out, err := o.models.Translator.Translate(u.punctuated)
	log.Stage("translate", time.Since(started))
	o.lights.SetRecording(false)

	if err != nil {
		// Recover to idle rather than taking the appliance down over
		// one bad utterance.
		log.Errorf("translation failed: %v", err)
		o.ann.NoAudio(o.direction)
		return stateIdle
	}
	u.translated = out
	o.utterances++
	log.Utterance(o.direction.String(), u.recognized, u.punctuated, u.translated)
	return stateAwaitPlayback
}

// awaitPlayback holds the translation until the operator asks for it.
// The wait is unbounded: the handoff is human-paced.
func (o *Orchestrator) awaitPlayback() state {
	o.lights.SetReady(true)
	dec, next := o.waitFor(o.inputs.RecordHeld)
	o.lights.SetReady(false)
	switch dec {
	case DecisionExit:
		return stateExiting
	case DecisionDirectionChanged:
		// Translation result is discarded, no playback.
		o.nextDirection = next
		return stateSwitching
	}
	return stateSpeaking
}

func (o *Orchestrator) speak(text string) state {
	started := time.Now()
	pcm, err := o.models.Synthesizer.Synthesize(text)
	log.Stage("synthesize", time.Since(started))
	if err != nil {
		log.Errorf("synthesis failed: %v", err)
		return stateIdle
	}
	if err := o.speaker.Play(pcm); err != nil {
		log.Errorf("speech playback failed: %v", err)
	}
	return stateIdle
}

// switchDirection swaps the resident model set. Reached only when the
// exit flag is clear; an in-progress capture has already been stopped
// and discarded by the time we get here.
func (o *Orchestrator) switchDirection() state {
	log.Info("direction switch: " + o.nextDirection.String())
	set, err := o.loader.Load(o.nextDirection)
	if err != nil {
		// No usable models for the selected direction leaves nothing
		// to run in; treat like an exit press.
		log.Errorf("model load failed: %v", err)
		return stateExiting
	}
	o.direction = o.nextDirection
	o.models = set
	o.ann.Mode(o.direction)
	return stateIdle
}
