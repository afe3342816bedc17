package engine

type FakeRecognizer struct {
	Text   string
	Err    error
	Calls  int
	Closed bool
}

func (f *FakeRecognizer) Recognize(pcm []byte, sampleRate int) (string, error) {
	f.Calls++
	return f.Text, f.Err
}

func (f *FakeRecognizer) Close() error {
	f.Closed = true
	return nil
}

type FakePunctuator struct {
	Out string
	Err error
}

func (f *FakePunctuator) Restore(text string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	if f.Out == "" {
		return text, nil
	}
	return f.Out, nil
}

type FakeTranslator struct {
	Out       string
	Err       error
	Calls     int
	LastInput string
	Closed    bool
}

func (f *FakeTranslator) Translate(text string) (string, error) {
	f.Calls++
	f.LastInput = text
	return f.Out, f.Err
}

func (f *FakeTranslator) Close() error {
	f.Closed = true
	return nil
}

type FakeSynthesizer struct {
	PCM      []byte
	Err      error
	Calls    int
	LastText string
}

func (f *FakeSynthesizer) Synthesize(text string) ([]byte, error) {
	f.Calls++
	f.LastText = text
	return f.PCM, f.Err
}

// FakeFactory records load order and hands out fake model sets.
type FakeFactory struct {
	Err   error
	Loads []Direction
	Build func(d Direction) *ModelSet
}

func (f *FakeFactory) New(d Direction) (*ModelSet, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.Loads = append(f.Loads, d)
	if f.Build != nil {
		return f.Build(d), nil
	}
	return &ModelSet{
		Direction:   d,
		Recognizer:  &FakeRecognizer{},
		Translator:  &FakeTranslator{},
		Synthesizer: &FakeSynthesizer{},
	}, nil
}
