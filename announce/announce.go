// Package announce plays the appliance's five fixed pre-recorded
// sounds: one mode announcement and one "no audio" prompt per
// direction, plus the exit sound. A missing file is reported and
// skipped, never fatal.
package announce

import (
	"os"

	"parley/audio"
	"parley/engine"
	"parley/log"
)

// Sounds names the WAV files (16 kHz mono S16LE).
type Sounds struct {
	ModeEnglishToSpanish string
	ModeSpanishToEnglish string
	NoAudioEnglish       string
	NoAudioSpanish       string
	Exit                 string
}

type Player struct {
	out    audio.PlaybackDevice
	sounds Sounds
}

func NewPlayer(out audio.PlaybackDevice, sounds Sounds) *Player {
	return &Player{out: out, sounds: sounds}
}

// Mode announces the active direction.
func (p *Player) Mode(d engine.Direction) {
	if d == engine.SpanishToEnglish {
		p.playFile(p.sounds.ModeSpanishToEnglish)
		return
	}
	p.playFile(p.sounds.ModeEnglishToSpanish)
}

// NoAudio tells the speaker of the current source language that
// nothing was heard.
func (p *Player) NoAudio(d engine.Direction) {
	if d == engine.SpanishToEnglish {
		p.playFile(p.sounds.NoAudioSpanish)
		return
	}
	p.playFile(p.sounds.NoAudioEnglish)
}

func (p *Player) Exit() {
	p.playFile(p.sounds.Exit)
}

func (p *Player) playFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("announcement missing: %s", path)
		return
	}
	if len(data) <= audio.WAVHeaderSize {
		log.Warnf("announcement too short: %s", path)
		return
	}
	if err := p.out.Play(data[audio.WAVHeaderSize:]); err != nil {
		log.Warnf("announcement playback failed: %v", err)
	}
}
