package engine

import (
	"encoding/json"
	"fmt"

	vosk "github.com/alphacep/vosk-api/go"
)

// VoskRecognizer holds one loaded Vosk model. A fresh decoder is
// created per utterance, matching push-to-talk clip lengths.
type VoskRecognizer struct {
	model *vosk.VoskModel
}

func NewVoskRecognizer(modelPath string) (*VoskRecognizer, error) {
	model, err := vosk.NewModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("vosk model %s: %w", modelPath, err)
	}
	return &VoskRecognizer{model: model}, nil
}

func (r *VoskRecognizer) Recognize(pcm []byte, sampleRate int) (string, error) {
	rec, err := vosk.NewRecognizer(r.model, float64(sampleRate))
	if err != nil {
		return "", fmt.Errorf("vosk recognizer: %w", err)
	}
	defer rec.Free()

	rec.AcceptWaveform(pcm)
	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(rec.FinalResult()), &result); err != nil {
		return "", fmt.Errorf("vosk result: %w", err)
	}
	return result.Text, nil
}

func (r *VoskRecognizer) Close() error {
	r.model.Free()
	return nil
}
