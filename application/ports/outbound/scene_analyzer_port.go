package outbound

import (
	"context"
	"faceless-video-engine/domain"
)

type SceneAnalyzerPort interface {
	Analyze(ctx context.Context, scene domain.Scene) (*domain.SceneAnalysis, error)
}
