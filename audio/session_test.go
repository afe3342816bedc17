package audio

import (
	"bytes"
	"testing"
)

func chunk(b byte, n int) []byte {
	c := make([]byte, n)
	for i := range c {
		c[i] = b
	}
	return c
}

func TestDrainPreservesOrderAndLength(t *testing.T) {
	chunks := [][]byte{chunk(1, 320), chunk(2, 640), chunk(3, 160)}
	ctx := &FakeContext{Chunks: chunks}
	rec := NewRecorder(ctx, nil, CaptureConfig{SampleRate: CaptureRate, Channels: CaptureChannels})

	sess, err := rec.Start()
	if err != nil {
		t.Fatal(err)
	}
	sess.Stop()
	got := sess.Drain()

	want := 320 + 640 + 160
	if len(got) != want {
		t.Fatalf("got %d bytes, want %d", len(got), want)
	}
	if !bytes.Equal(got[:320], chunk(1, 320)) {
		t.Error("first chunk out of order")
	}
	if !bytes.Equal(got[320:960], chunk(2, 640)) {
		t.Error("second chunk out of order")
	}
	if !bytes.Equal(got[960:], chunk(3, 160)) {
		t.Error("third chunk out of order")
	}
}

func TestEmptyDrainIsValid(t *testing.T) {
	ctx := &FakeContext{}
	rec := NewRecorder(ctx, nil, CaptureConfig{SampleRate: CaptureRate, Channels: CaptureChannels})
	sess, err := rec.Start()
	if err != nil {
		t.Fatal(err)
	}
	sess.Stop()
	if got := sess.Drain(); len(got) != 0 {
		t.Errorf("expected empty drain, got %d bytes", len(got))
	}
}

func TestNoAppendAfterStop(t *testing.T) {
	s := &Session{accepting: true}
	s.feed(chunk(1, 100))
	s.Stop()
	s.feed(chunk(2, 100)) // late chunk from a stream still winding down
	got := s.Drain()
	if len(got) != 100 {
		t.Fatalf("late chunk appended after Stop: got %d bytes, want 100", len(got))
	}
	if got[0] != 1 {
		t.Error("wrong chunk survived")
	}
}

func TestStopIdempotent(t *testing.T) {
	ctx := &FakeContext{Chunks: [][]byte{chunk(1, 32)}}
	rec := NewRecorder(ctx, nil, CaptureConfig{SampleRate: CaptureRate, Channels: CaptureChannels})
	sess, err := rec.Start()
	if err != nil {
		t.Fatal(err)
	}
	sess.Stop()
	sess.Stop()
	if got := sess.Drain(); len(got) != 32 {
		t.Errorf("got %d bytes, want 32", len(got))
	}
}

func TestStartFailure(t *testing.T) {
	ctx := &FakeContext{FailCapture: true}
	rec := NewRecorder(ctx, nil, CaptureConfig{SampleRate: CaptureRate, Channels: CaptureChannels})
	if _, err := rec.Start(); err == nil {
		t.Fatal("expected start error")
	}
}

func TestFeedCopiesChunk(t *testing.T) {
	s := &Session{accepting: true}
	buf := chunk(7, 64)
	s.feed(buf)
	buf[0] = 99 // producer reuses its buffer
	got := s.Drain()
	if got[0] != 7 {
		t.Error("session must copy producer buffers")
	}
}
