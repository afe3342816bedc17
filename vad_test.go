package main

import "testing"

func TestSpeechGateSilence(t *testing.T) {
	g, err := newSpeechGate()
	if err != nil {
		t.Skipf("VAD unavailable: %v", err)
	}
	silence := make([]byte, vadFrameBytes*50) // 1s of zeros
	if g.HasSpeech(silence) {
		t.Error("pure silence reported as speech")
	}
}

func TestSpeechGateShortBuffer(t *testing.T) {
	g, err := newSpeechGate()
	if err != nil {
		t.Skipf("VAD unavailable: %v", err)
	}
	if g.HasSpeech(make([]byte, vadFrameBytes-2)) {
		t.Error("buffer shorter than one frame cannot contain speech")
	}
	if g.HasSpeech(nil) {
		t.Error("empty buffer cannot contain speech")
	}
}
