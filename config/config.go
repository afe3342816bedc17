// Package config loads the appliance configuration: model and voice
// paths per direction, announcement sounds, GPIO pin names, audio
// device hints. A missing file means stock defaults; a malformed file
// is an error.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	PollIntervalMS int     `yaml:"poll_interval_ms"`
	Pins           Pins    `yaml:"pins"`
	Audio          Audio   `yaml:"audio"`
	Sounds         Sounds  `yaml:"sounds"`
	Engines        Engines `yaml:"engines"`
}

type Pins struct {
	Record    string `yaml:"record"`
	Direction string `yaml:"direction"`
	Exit      string `yaml:"exit"`
	Recording string `yaml:"recording_led"`
	Ready     string `yaml:"ready_led"`
}

type Audio struct {
	CaptureDevice string `yaml:"capture_device"`
}

type Sounds struct {
	ModeEnglishToSpanish string `yaml:"mode_en_es"`
	ModeSpanishToEnglish string `yaml:"mode_es_en"`
	NoAudioEnglish       string `yaml:"no_audio_en"`
	NoAudioSpanish       string `yaml:"no_audio_es"`
	Exit                 string `yaml:"exit"`
}

type Engines struct {
	PiperBinary      string           `yaml:"piper_binary"`
	PunctuateCommand []string         `yaml:"punctuate_command"`
	EnglishToSpanish DirectionEngines `yaml:"en_to_es"`
	SpanishToEnglish DirectionEngines `yaml:"es_to_en"`
}

type DirectionEngines struct {
	VoskModel        string   `yaml:"vosk_model"`
	TranslateCommand []string `yaml:"translate_command"`
	PiperVoice       string   `yaml:"piper_voice"`
	PiperConfig      string   `yaml:"piper_config"`
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// Default matches the stock appliance image layout.
func Default() Config {
	return Config{
		PollIntervalMS: 10,
		Pins: Pins{
			Record:    "GPIO4",
			Direction: "GPIO13",
			Exit:      "GPIO5",
			Recording: "GPIO22",
			Ready:     "GPIO27",
		},
		Sounds: Sounds{
			ModeEnglishToSpanish: "/opt/parley/sounds/en-es-mode.wav",
			ModeSpanishToEnglish: "/opt/parley/sounds/es-en-mode.wav",
			NoAudioEnglish:       "/opt/parley/sounds/no-audio-en.wav",
			NoAudioSpanish:       "/opt/parley/sounds/no-audio-es.wav",
			Exit:                 "/opt/parley/sounds/exit.wav",
		},
		Engines: Engines{
			PiperBinary: "/opt/parley/piper/piper",
			EnglishToSpanish: DirectionEngines{
				VoskModel:        "/opt/parley/vosk/vosk-model-small-en-us-0.15",
				TranslateCommand: []string{"/opt/parley/bin/opusmt", "--model", "/opt/parley/ct2/en-es"},
				PiperVoice:       "/opt/parley/voices/es_ES-davefx-medium.onnx",
				PiperConfig:      "/opt/parley/voices/es_ES-davefx-medium.onnx.json",
			},
			SpanishToEnglish: DirectionEngines{
				VoskModel:        "/opt/parley/vosk/vosk-model-small-es-0.42",
				TranslateCommand: []string{"/opt/parley/bin/opusmt", "--model", "/opt/parley/ct2/es-en"},
				PiperVoice:       "/opt/parley/voices/en_US-hfc_male-medium.onnx",
				PiperConfig:      "/opt/parley/voices/en_US-hfc_male-medium.onnx.json",
			},
		},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.PollIntervalMS <= 0 {
		cfg.PollIntervalMS = 10
	}
	return cfg, nil
}
