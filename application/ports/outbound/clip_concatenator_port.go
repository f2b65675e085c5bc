package outbound

import (
	"context"
	"faceless-video-engine/domain"
)

// ClipConcatenatorPort joins scene clips into one narration video. Clips are
// ordered ascending by scene ordinal before joining, whatever order they
// arrive in.
type ClipConcatenatorPort interface {
	Concatenate(ctx context.Context, clips []domain.SceneClip, tempDir string) (string, error)
}
