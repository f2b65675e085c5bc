package inbound

import (
	"context"
	"faceless-video-engine/domain"
)

type GenerateVisualsParams struct {
	Layout domain.RunLayout
	Events chan<- domain.RunEvent
}

type SceneVisualGeneratorPort interface {
	Generate(ctx context.Context, scenes <-chan domain.SceneWithAudio, params GenerateVisualsParams) (<-chan domain.SceneWithAssets, <-chan error)
}
