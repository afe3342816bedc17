package main

import (
	webrtcvad "github.com/maxhawkins/go-webrtcvad"

	"parley/audio"
)

const (
	vadMode            = 3
	vadFrameMs         = 20
	vadFrameBytes      = audio.CaptureRate * vadFrameMs / 1000 * 2 // 640 bytes
	vadMinSpeechFrames = 3                                         // consecutive speech frames to confirm voice
)

// speechGate checks a drained recording for any voice activity before
// the recognizer is invoked. Gate-negative recordings take the
// no-audio branch without a recognition call.
type speechGate struct {
	vad *webrtcvad.VAD
}

func newSpeechGate() (*speechGate, error) {
	v, err := webrtcvad.New()
	if err != nil {
		return nil, err
	}
	if err := v.SetMode(vadMode); err != nil {
		return nil, err
	}
	return &speechGate{vad: v}, nil
}

func (g *speechGate) HasSpeech(pcm []byte) bool {
	run := 0
	for off := 0; off+vadFrameBytes <= len(pcm); off += vadFrameBytes {
		active, err := g.vad.Process(audio.CaptureRate, pcm[off:off+vadFrameBytes])
		if err != nil {
			continue
		}
		if !active {
			run = 0
			continue
		}
		run++
		if run >= vadMinSpeechFrames {
			return true
		}
	}
	return false
}
