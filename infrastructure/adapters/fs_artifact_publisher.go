package adapters

import (
	"context"
	"faceless-video-engine/application/ports/outbound"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type fsArtifactPublisher struct {
	logger outbound.LoggerPort
	now    func() time.Time
}

// NewFsArtifactPublisher finalizes a run by renaming the assembled video to
// faceless_video_<timestamp>.mp4 under the final directory. Rename is atomic
// on one filesystem, so an aborted run never leaves a partial file there.
func NewFsArtifactPublisher(logger outbound.LoggerPort) outbound.ArtifactPublisherPort {
	return &fsArtifactPublisher{
		logger: logger,
		now:    time.Now,
	}
}

func (p *fsArtifactPublisher) Publish(ctx context.Context, videoPath string, finalDir string) (string, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return "", fmt.Errorf("assembled video missing: %w", err)
	}

	finalName := fmt.Sprintf("faceless_video_%s.mp4", p.now().Format("20060102150405"))
	finalPath := filepath.Join(finalDir, finalName)

	if err := os.Rename(videoPath, finalPath); err != nil {
		p.logger.ErrorWithFields(err, "Failed to publish the final video", map[string]any{
			"from": videoPath,
			"to":   finalPath,
		})
		return "", err
	}

	p.logger.InfoWithFields("Published final video", map[string]any{
		"path": finalPath,
	})

	return finalPath, nil
}
