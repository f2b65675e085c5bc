package inbound

import (
	"context"
	"faceless-video-engine/domain"
)

type GenerateVoiceoverParams struct {
	Layout  domain.RunLayout
	VoiceID string
	Events  chan<- domain.RunEvent
}

type SceneVoiceoverGeneratorPort interface {
	Generate(ctx context.Context, scenes <-chan domain.Scene, params GenerateVoiceoverParams) (<-chan domain.SceneWithAudio, <-chan error)
}
