package mock_generator

import (
	"bytes"
	"context"
	"encoding/binary"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/infrastructure/adapters"
	"testing"
)

func TestStubSynthesizer_Synthesize(t *testing.T) {
	logger := adapters.NewZerologWrapper("error")

	synthesizer := NewStubSynthesizer(logger)

	res, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text: "A reasonable sentence for narration.",
	})
	if err != nil {
		t.Fatal("Failed to synthesize:", err)
	}

	if res.Format != "wav" {
		t.Fatal("Expected wav format, got:", res.Format)
	}

	audio := res.Audio
	if len(audio) < 44 {
		t.Fatal("WAV header missing, got length:", len(audio))
	}
	if !bytes.HasPrefix(audio, []byte("RIFF")) || string(audio[8:12]) != "WAVE" {
		t.Fatal("Not a RIFF/WAVE container")
	}

	dataSize := binary.LittleEndian.Uint32(audio[40:44])
	if int(dataSize) != len(audio)-44 {
		t.Fatal("Data chunk size does not match the payload:", dataSize)
	}
}

func TestStubSynthesizer_DurationTracksText(t *testing.T) {
	logger := adapters.NewZerologWrapper("error")

	synthesizer := NewStubSynthesizer(logger)

	short, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{Text: "Hi."})
	if err != nil {
		t.Fatal("Failed to synthesize short text:", err)
	}

	long, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text: "A much longer piece of narration that should clearly produce more audio than a greeting.",
	})
	if err != nil {
		t.Fatal("Failed to synthesize long text:", err)
	}

	if len(long.Audio) <= len(short.Audio) {
		t.Fatal("Longer text should produce longer audio:", len(short.Audio), len(long.Audio))
	}
}
