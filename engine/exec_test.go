package engine

import "testing"

func TestExecTranslatorRoundTrip(t *testing.T) {
	tr, err := NewExecTranslator([]string{"cat"})
	if err != nil {
		t.Skipf("cat not available: %v", err)
	}
	got, err := tr.Translate("hola mundo")
	if err != nil {
		t.Fatal(err)
	}
	if got != "hola mundo" {
		t.Errorf("got %q, want %q", got, "hola mundo")
	}
}

func TestExecTranslatorUnconfigured(t *testing.T) {
	if _, err := NewExecTranslator(nil); err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestExecPunctuatorPassthrough(t *testing.T) {
	p := NewExecPunctuator(nil)
	got, err := p.Restore("hello there")
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello there" {
		t.Errorf("got %q, want input back", got)
	}
}

func TestExecPunctuatorEmptyInput(t *testing.T) {
	p := NewExecPunctuator([]string{"definitely-not-installed"})
	got, err := p.Restore("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("empty input must come back empty, got %q", got)
	}
}
