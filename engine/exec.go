package engine

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

func runFilter(command []string, input string) (string, error) {
	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdin = strings.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %w: %s", command[0], err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// ExecTranslator shells out to a translation command (the appliance
// ships a ctranslate2/OPUS-MT runner per direction). Source text goes
// to stdin, the translation comes back on stdout.
type ExecTranslator struct {
	command []string
}

func NewExecTranslator(command []string) (*ExecTranslator, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("translator command not configured")
	}
	if _, err := exec.LookPath(command[0]); err != nil {
		return nil, fmt.Errorf("translator: %w", err)
	}
	return &ExecTranslator{command: command}, nil
}

func (t *ExecTranslator) Translate(text string) (string, error) {
	return runFilter(t.command, text)
}

func (t *ExecTranslator) Close() error { return nil }

// ExecPunctuator runs the punctuation-restoration command. With no
// command configured it passes text through unchanged; the appliance
// still works, just without restored punctuation.
type ExecPunctuator struct {
	command []string
}

func NewExecPunctuator(command []string) *ExecPunctuator {
	return &ExecPunctuator{command: command}
}

func (p *ExecPunctuator) Restore(text string) (string, error) {
	if len(p.command) == 0 || text == "" {
		return text, nil
	}
	return runFilter(p.command, text)
}

// PiperSynthesizer runs the piper binary with a per-direction voice,
// reading raw S16LE PCM at 22.05 kHz from stdout.
type PiperSynthesizer struct {
	binary string
	voice  string
	config string
}

func NewPiperSynthesizer(binary, voice, config string) (*PiperSynthesizer, error) {
	if _, err := os.Stat(voice); err != nil {
		return nil, fmt.Errorf("piper voice: %w", err)
	}
	return &PiperSynthesizer{binary: binary, voice: voice, config: config}, nil
}

func (s *PiperSynthesizer) Synthesize(text string) ([]byte, error) {
	cmd := exec.Command(s.binary, "--model", s.voice, "--config", s.config, "--output-raw")
	cmd.Stdin = strings.NewReader(text)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("piper: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
