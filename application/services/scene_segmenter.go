package services

import (
	"faceless-video-engine/application/ports/inbound"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/domain"
	"github.com/google/uuid"
	"regexp"
	"strings"
)

type sceneSegmenter struct {
	logger          outbound.LoggerPort
	blankLineRegexp *regexp.Regexp
}

// NewSceneSegmenter splits scripts into scenes on blank-line paragraph
// boundaries. Scene order is the paragraph order of the input.
func NewSceneSegmenter(logger outbound.LoggerPort) inbound.SceneSegmenterPort {
	return &sceneSegmenter{
		logger:          logger,
		blankLineRegexp: regexp.MustCompile(`\n[ \t]*\n`),
	}
}

func (s *sceneSegmenter) Segment(script string, runID string) ([]domain.Scene, error) {
	normalized := strings.ReplaceAll(script, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	paragraphs := s.blankLineRegexp.Split(normalized, -1)

	scenes := make([]domain.Scene, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		text := strings.TrimSpace(paragraph)
		if text == "" {
			continue
		}
		scenes = append(scenes, domain.NewScene(text, uuid.NewString(), runID, len(scenes)))
	}

	if len(scenes) == 0 {
		return nil, &domain.SegmentationError{Reason: "script contains no non-blank paragraphs"}
	}

	s.logger.InfoWithFields("Segmented script into scenes", map[string]any{
		"run_id": runID,
		"scenes": len(scenes),
	})

	return scenes, nil
}
