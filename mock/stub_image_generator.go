package mock_generator

import (
	"bytes"
	"context"
	"faceless-video-engine/application/ports/outbound"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
)

const stubImageSize = 512

type stubImageGenerator struct {
	logger outbound.LoggerPort
}

// NewStubImageGenerator returns a generator that paints a solid color derived
// from the prompt, so distinct scenes stay visually distinct in the final cut.
func NewStubImageGenerator(logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &stubImageGenerator{logger: logger}
}

func (s *stubImageGenerator) Generate(ctx context.Context, req outbound.GenerateImageRequest) ([]byte, error) {
	h := fnv.New32a()
	h.Write([]byte(req.Prompt))
	sum := h.Sum32()
	shade := color.NRGBA{R: uint8(sum), G: uint8(sum >> 8), B: uint8(sum >> 16), A: 255}

	img := image.NewNRGBA(image.Rect(0, 0, stubImageSize, stubImageSize))
	for y := 0; y < stubImageSize; y++ {
		for x := 0; x < stubImageSize; x++ {
			img.SetNRGBA(x, y, shade)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
