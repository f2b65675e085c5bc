package inbound

import "faceless-video-engine/domain"

// SceneSegmenterPort splits a raw script into its ordered scenes. It fails
// with a domain.SegmentationError when no non-blank paragraph exists.
type SceneSegmenterPort interface {
	Segment(script string, runID string) ([]domain.Scene, error)
}
