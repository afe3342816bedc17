package audio

import "sync"

// Session is one recording attempt: a FIFO of PCM chunks fed by the
// capture producer thread. The accepting gate is checked under the
// same lock as the append, so once Stop returns no late chunk from the
// hardware stream can land in the buffer.
type Session struct {
	mu        sync.Mutex
	dev       CaptureDevice
	accepting bool
	chunks    [][]byte
}

func (s *Session) feed(data []byte) {
	if len(data) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accepting {
		return
	}
	chunk := make([]byte, len(data))
	copy(chunk, data)
	s.chunks = append(s.chunks, chunk)
}

// Stop closes the accepting gate first, then halts and releases the
// hardware stream. Safe to call more than once.
func (s *Session) Stop() {
	s.mu.Lock()
	s.accepting = false
	dev := s.dev
	s.dev = nil
	s.mu.Unlock()

	if dev != nil {
		dev.Stop()
		dev.Close()
	}
}

// Drain returns everything captured as one contiguous buffer, chunks
// in arrival order. Call after Stop. An empty buffer is a valid
// outcome: nothing was recorded.
func (s *Session) Drain() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, c := range s.chunks {
		total += len(c)
	}
	out := make([]byte, 0, total)
	for _, c := range s.chunks {
		out = append(out, c...)
	}
	s.chunks = nil
	return out
}

// Recorder opens capture sessions against an audio context.
type Recorder struct {
	ctx    Context
	device *DeviceInfo
	config CaptureConfig
}

func NewRecorder(ctx Context, device *DeviceInfo, config CaptureConfig) *Recorder {
	return &Recorder{ctx: ctx, device: device, config: config}
}

// Start opens the input stream and begins accepting chunks. On failure
// the caller treats the attempt as "no audio available".
func (r *Recorder) Start() (*Session, error) {
	s := &Session{accepting: true}
	dev, err := r.ctx.NewCapture(r.device, r.config, func(data []byte, _ uint32) {
		s.feed(data)
	})
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.dev = dev
	s.mu.Unlock()
	if err := dev.Start(); err != nil {
		dev.Close()
		return nil, err
	}
	return s, nil
}
