package engine

import (
	"fmt"
	"runtime/debug"
)

// ModelSet bundles the loaded resources for one direction. It is owned
// by the Loader and closed as a unit.
type ModelSet struct {
	Direction   Direction
	Recognizer  Recognizer
	Translator  Translator
	Synthesizer Synthesizer
}

func (m *ModelSet) Close() {
	if m.Recognizer != nil {
		m.Recognizer.Close()
	}
	if m.Translator != nil {
		m.Translator.Close()
	}
}

// Factory constructs the model set for a direction.
type Factory interface {
	New(d Direction) (*ModelSet, error)
}

// Loader holds the single resident ModelSet. Load releases the current
// set before constructing the replacement, so two full sets are never
// resident at once.
type Loader struct {
	factory Factory
	current *ModelSet
}

func NewLoader(f Factory) *Loader {
	return &Loader{factory: f}
}

func (l *Loader) Load(d Direction) (*ModelSet, error) {
	l.Unload()
	set, err := l.factory.New(d)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", d, err)
	}
	l.current = set
	return set, nil
}

// Unload drops the resident set, if any, and returns freed memory to
// the OS before the replacement loads.
func (l *Loader) Unload() {
	if l.current == nil {
		return
	}
	l.current.Close()
	l.current = nil
	debug.FreeOSMemory()
}

func (l *Loader) Current() *ModelSet {
	return l.current
}
