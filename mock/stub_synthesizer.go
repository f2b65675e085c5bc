package mock_generator

import (
	"bytes"
	"context"
	"encoding/binary"
	"faceless-video-engine/application/ports/outbound"
	"unicode/utf8"
)

const (
	stubSampleRate     = 8000
	stubBitsPerSample  = 16
	stubSecondsPerRune = 0.06
	stubMinSeconds     = 0.25
)

type stubSynthesizer struct {
	logger outbound.LoggerPort
}

// NewStubSynthesizer returns a synthesizer that produces silent PCM audio
// whose length tracks the scene text. It keeps the pipeline runnable without
// a speech model behind it.
func NewStubSynthesizer(logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &stubSynthesizer{logger: logger}
}

func (s *stubSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) (*outbound.SynthesizeSpeechResponse, error) {
	seconds := stubSecondsPerRune * float64(utf8.RuneCountInString(req.Text))
	if seconds < stubMinSeconds {
		seconds = stubMinSeconds
	}
	s.logger.DebugWithFields("Synthesizing silent audio", map[string]any{
		"seconds": seconds,
	})
	return &outbound.SynthesizeSpeechResponse{
		Audio:  silentWav(seconds),
		Format: "wav",
	}, nil
}

func silentWav(seconds float64) []byte {
	numSamples := int(seconds * stubSampleRate)
	dataSize := numSamples * stubBitsPerSample / 8

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint32(stubSampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(stubSampleRate*stubBitsPerSample/8))
	binary.Write(buf, binary.LittleEndian, uint16(stubBitsPerSample/8))
	binary.Write(buf, binary.LittleEndian, uint16(stubBitsPerSample))
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}
