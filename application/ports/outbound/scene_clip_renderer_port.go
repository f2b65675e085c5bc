package outbound

import (
	"context"
	"faceless-video-engine/domain"
)

type RenderClipResponse struct {
	VideoPath string
	Duration  float64
}

// SceneClipRendererPort turns one scene's image+audio pair into a still-image
// video segment whose visible duration equals the audio duration.
type SceneClipRendererPort interface {
	Render(ctx context.Context, scene domain.SceneWithAssets, tempDir string) (*RenderClipResponse, error)
}
