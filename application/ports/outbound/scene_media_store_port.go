package outbound

import (
	"context"
	"faceless-video-engine/domain"
)

// SceneMediaStorePort persists generated scene media into a run's layout.
// Files are keyed by scene ordinal, so a re-run overwrites rather than
// accumulates.
type SceneMediaStorePort interface {
	EnsureLayout(layout domain.RunLayout) error
	SaveAudio(ctx context.Context, dir string, scene domain.Scene, audio []byte, format string) (string, error)
	SaveImage(ctx context.Context, dir string, scene domain.Scene, image []byte) (string, error)
}
