package inbound

import (
	"context"
	"faceless-video-engine/domain"
)

type GenerateClipsParams struct {
	Layout domain.RunLayout
	Events chan<- domain.RunEvent
}

type SceneClipGeneratorPort interface {
	Generate(ctx context.Context, scenes <-chan domain.SceneWithAssets, params GenerateClipsParams) (<-chan domain.SceneClip, <-chan error)
}
