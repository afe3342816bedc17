package engine

// Direction selects which of the two supported language pairs is active.
// It is read from the hardware direction switch; exactly one set of
// models is resident for it at any time.
type Direction int

const (
	EnglishToSpanish Direction = iota
	SpanishToEnglish
)

func (d Direction) String() string {
	if d == SpanishToEnglish {
		return "es->en"
	}
	return "en->es"
}

func (d Direction) Opposite() Direction {
	if d == SpanishToEnglish {
		return EnglishToSpanish
	}
	return SpanishToEnglish
}

// Recognizer transcribes one finalized mono 16-bit PCM buffer. No
// streaming: the whole recording is processed in a single call.
type Recognizer interface {
	Recognize(pcm []byte, sampleRate int) (string, error)
	Close() error
}

// Punctuator restores punctuation in recognized text. It must accept
// empty input; the result may equal the input.
type Punctuator interface {
	Restore(text string) (string, error)
}

// Translator translates a short utterance for the direction it was
// built for.
type Translator interface {
	Translate(text string) (string, error)
	Close() error
}

// Synthesizer renders text to raw S16LE mono PCM at the synthesis
// output rate (22.05 kHz).
type Synthesizer interface {
	Synthesize(text string) ([]byte, error)
}
