package announce

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"parley/audio"
	"parley/engine"
)

func writeWAV(t *testing.T, dir, name string, payload []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data := append(make([]byte, audio.WAVHeaderSize), payload...)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestPlayer(t *testing.T, sounds Sounds) (*Player, *audio.FakeContext) {
	t.Helper()
	ctx := &audio.FakeContext{}
	out, err := ctx.NewPlayback(audio.PlaybackConfig{SampleRate: audio.CaptureRate, Channels: 1})
	if err != nil {
		t.Fatal(err)
	}
	return NewPlayer(out, sounds), ctx
}

func TestModePlaysPerDirection(t *testing.T) {
	dir := t.TempDir()
	en := writeWAV(t, dir, "mode-en-es.wav", []byte{1, 1, 1, 1})
	es := writeWAV(t, dir, "mode-es-en.wav", []byte{2, 2, 2, 2})
	p, ctx := newTestPlayer(t, Sounds{ModeEnglishToSpanish: en, ModeSpanishToEnglish: es})

	p.Mode(engine.EnglishToSpanish)
	p.Mode(engine.SpanishToEnglish)

	played := ctx.Played()
	if len(played) != 2 {
		t.Fatalf("got %d playbacks, want 2", len(played))
	}
	if !bytes.Equal(played[0], []byte{1, 1, 1, 1}) {
		t.Error("en->es mode sound wrong, or WAV header not stripped")
	}
	if !bytes.Equal(played[1], []byte{2, 2, 2, 2}) {
		t.Error("es->en mode sound wrong")
	}
}

func TestNoAudioUsesSourceLanguage(t *testing.T) {
	dir := t.TempDir()
	en := writeWAV(t, dir, "no-audio-en.wav", []byte{3, 3})
	es := writeWAV(t, dir, "no-audio-es.wav", []byte{4, 4})
	p, ctx := newTestPlayer(t, Sounds{NoAudioEnglish: en, NoAudioSpanish: es})

	p.NoAudio(engine.EnglishToSpanish)
	played := ctx.Played()
	if len(played) != 1 || !bytes.Equal(played[0], []byte{3, 3}) {
		t.Error("en->es should play the English no-audio prompt")
	}

	p.NoAudio(engine.SpanishToEnglish)
	played = ctx.Played()
	if len(played) != 2 || !bytes.Equal(played[1], []byte{4, 4}) {
		t.Error("es->en should play the Spanish no-audio prompt")
	}
}

func TestMissingFileSkipped(t *testing.T) {
	p, ctx := newTestPlayer(t, Sounds{Exit: "/nonexistent/exit.wav"})
	p.Exit() // must not panic
	if len(ctx.Played()) != 0 {
		t.Error("missing file must be skipped, not played")
	}
}

func TestHeaderOnlyFileSkipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.wav")
	if err := os.WriteFile(path, make([]byte, audio.WAVHeaderSize), 0644); err != nil {
		t.Fatal(err)
	}
	p, ctx := newTestPlayer(t, Sounds{Exit: path})
	p.Exit()
	if len(ctx.Played()) != 0 {
		t.Error("header-only file must be skipped")
	}
}
