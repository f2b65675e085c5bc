package outbound

import "context"

// GenerateImageRequest carries the scene text plus optional visual keywords
// from the analyzer. Generation parameters (steps, guidance, negative prompt)
// are adapter configuration and pass through to the model unchanged.
type GenerateImageRequest struct {
	Prompt   string
	Keywords []string
}

type ImageGeneratorPort interface {
	Generate(ctx context.Context, req GenerateImageRequest) ([]byte, error)
}
