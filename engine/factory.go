package engine

import "fmt"

// Resources names the on-disk assets for one direction.
type Resources struct {
	VoskModel        string
	TranslateCommand []string
	PiperVoice       string
	PiperConfig      string
}

// PathFactory builds model sets from configured resource paths.
type PathFactory struct {
	PiperBinary string
	ByDirection map[Direction]Resources
}

func (f *PathFactory) New(d Direction) (*ModelSet, error) {
	res, ok := f.ByDirection[d]
	if !ok {
		return nil, fmt.Errorf("no resources configured for %s", d)
	}

	rec, err := NewVoskRecognizer(res.VoskModel)
	if err != nil {
		return nil, err
	}
	tr, err := NewExecTranslator(res.TranslateCommand)
	if err != nil {
		rec.Close()
		return nil, err
	}
	syn, err := NewPiperSynthesizer(f.PiperBinary, res.PiperVoice, res.PiperConfig)
	if err != nil {
		tr.Close()
		rec.Close()
		return nil, err
	}

	return &ModelSet{
		Direction:   d,
		Recognizer:  rec,
		Translator:  tr,
		Synthesizer: syn,
	}, nil
}
