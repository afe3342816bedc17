package audio

import (
	"errors"
	"sync"
)

// FakeContext scripts capture input and records playback output for
// tests. Each capture session replays Chunks synchronously on Start.
type FakeContext struct {
	Chunks      [][]byte
	FailCapture bool

	mu     sync.Mutex
	played [][]byte
	rates  []uint32
}

func (f *FakeContext) Devices() ([]DeviceInfo, error) { return nil, nil }
func (f *FakeContext) Close()                         {}

func (f *FakeContext) NewCapture(_ *DeviceInfo, _ CaptureConfig, cb DataCallback) (CaptureDevice, error) {
	if f.FailCapture {
		return nil, errors.New("no capture device")
	}
	return &fakeCapture{chunks: f.Chunks, cb: cb}, nil
}

func (f *FakeContext) NewPlayback(config PlaybackConfig) (PlaybackDevice, error) {
	return &fakePlayback{ctx: f, rate: config.SampleRate}, nil
}

func (f *FakeContext) Played() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.played))
	copy(out, f.played)
	return out
}

type fakeCapture struct {
	chunks [][]byte
	cb     DataCallback
}

func (c *fakeCapture) Start() error {
	for _, chunk := range c.chunks {
		c.cb(chunk, uint32(len(chunk)/2))
	}
	return nil
}

func (c *fakeCapture) Stop()  {}
func (c *fakeCapture) Close() {}

type fakePlayback struct {
	ctx  *FakeContext
	rate uint32
}

func (p *fakePlayback) Play(pcm []byte) error {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()
	buf := make([]byte, len(pcm))
	copy(buf, pcm)
	p.ctx.played = append(p.ctx.played, buf)
	p.ctx.rates = append(p.ctx.rates, p.rate)
	return nil
}

func (p *fakePlayback) Close() {}
