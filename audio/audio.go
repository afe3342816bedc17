package audio

// Fixed appliance formats: capture is 16 kHz mono S16LE (what the
// recognizer expects), synthesis playback is 22.05 kHz mono S16LE
// (what piper emits). Announcement WAVs are capture-rate mono.
const (
	CaptureRate     = 16000
	CaptureChannels = 1
	SynthRate       = 22050

	WAVHeaderSize = 44
)

// DataCallback delivers one chunk of S16LE PCM from the capture
// producer. It runs on the audio subsystem's own thread.
type DataCallback func(data []byte, frameCount uint32)

type CaptureConfig struct {
	SampleRate uint32
	Channels   uint32
}

type PlaybackConfig struct {
	SampleRate uint32
	Channels   uint32
}

type DeviceInfo struct {
	ID   string // opaque platform-specific identifier
	Name string
}

type Context interface {
	Devices() ([]DeviceInfo, error)
	NewCapture(device *DeviceInfo, config CaptureConfig, cb DataCallback) (CaptureDevice, error)
	NewPlayback(config PlaybackConfig) (PlaybackDevice, error)
	Close()
}

type CaptureDevice interface {
	Start() error
	Stop()
	Close()
}

// PlaybackDevice plays one raw PCM buffer and blocks until playback
// completes.
type PlaybackDevice interface {
	Play(pcm []byte) error
	Close()
}
