package outbound

import (
	"context"
)

type SynthesizeSpeechRequest struct {
	Text    string
	VoiceID string
}

// SynthesizeSpeechResponse carries the raw waveform and its container format
// ("wav", "mp3"), which decides the extension the scene file is stored under.
type SynthesizeSpeechResponse struct {
	Audio  []byte
	Format string
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) (*SynthesizeSpeechResponse, error)
}
