package inbound

import (
	"context"
	"faceless-video-engine/domain"
)

type RunPipelineParams struct {
	RunID     string
	Script    string
	MusicPath string
	VoiceID   string
	Layout    domain.RunLayout
}

// VideoPipelinePort drives one run end to end: segment, synthesize every
// scene, assemble, publish. Run blocks until the run reaches a terminal
// state. Progress is reported on events when it is non-nil; the channel is
// never closed by the pipeline.
type VideoPipelinePort interface {
	Run(ctx context.Context, params RunPipelineParams, events chan<- domain.RunEvent) (*domain.PipelineRun, error)
}
