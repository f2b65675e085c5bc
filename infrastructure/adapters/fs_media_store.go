package adapters

import (
	"context"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/domain"
	"fmt"
	"os"
	"path/filepath"
)

type fsSceneMediaStore struct {
	logger outbound.LoggerPort
}

// NewFsSceneMediaStore persists scene media under the run layout. Files are
// named scene_<ordinal>.<ext>, so a scene always maps to the same path and a
// re-run of the same layout overwrites in place.
func NewFsSceneMediaStore(logger outbound.LoggerPort) outbound.SceneMediaStorePort {
	return &fsSceneMediaStore{
		logger: logger,
	}
}

func (s *fsSceneMediaStore) EnsureLayout(layout domain.RunLayout) error {
	for _, dir := range layout.Dirs() {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

func (s *fsSceneMediaStore) SaveAudio(ctx context.Context, dir string, scene domain.Scene, audio []byte, format string) (string, error) {
	return s.save(dir, scene, audio, format)
}

func (s *fsSceneMediaStore) SaveImage(ctx context.Context, dir string, scene domain.Scene, image []byte) (string, error) {
	return s.save(dir, scene, image, "png")
}

func (s *fsSceneMediaStore) save(dir string, scene domain.Scene, content []byte, ext string) (string, error) {
	fileName := filepath.Join(dir, fmt.Sprintf("scene_%d.%s", scene.Ordinal, ext))
	if err := os.WriteFile(fileName, content, 0644); err != nil {
		s.logger.ErrorWithFields(err, "Failed to write scene media", map[string]any{
			"path":    fileName,
			"ordinal": scene.Ordinal,
		})
		return "", err
	}

	s.logger.DebugWithFields("Stored scene media", map[string]any{
		"path":  fileName,
		"bytes": len(content),
	})

	return fileName, nil
}
