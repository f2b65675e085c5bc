package services

import (
	"context"
	"faceless-video-engine/application/ports/inbound"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/channel_utils"
	"faceless-video-engine/domain"
	"time"
)

type videoPipeline struct {
	logger             outbound.LoggerPort
	workerPool         outbound.TaskDispatcher
	segmenter          inbound.SceneSegmenterPort
	voiceoverGenerator inbound.SceneVoiceoverGeneratorPort
	visualGenerator    inbound.SceneVisualGeneratorPort
	clipGenerator      inbound.SceneClipGeneratorPort
	mediaStore         outbound.SceneMediaStorePort
	concatenator       outbound.ClipConcatenatorPort
	musicMixer         outbound.MusicMixerPort
	publisher          outbound.ArtifactPublisherPort
}

// NewVideoPipeline wires the whole run together:
// segment -> per-scene narration -> per-scene image -> per-scene clip ->
// concatenate -> optional music -> publish.
// The first error anywhere cancels the run; assembly never starts after a
// synthesis failure. Artifacts of scenes that finished stay on disk.
func NewVideoPipeline(
	logger outbound.LoggerPort,
	workerPool outbound.TaskDispatcher,
	segmenter inbound.SceneSegmenterPort,
	voiceoverGenerator inbound.SceneVoiceoverGeneratorPort,
	visualGenerator inbound.SceneVisualGeneratorPort,
	clipGenerator inbound.SceneClipGeneratorPort,
	mediaStore outbound.SceneMediaStorePort,
	concatenator outbound.ClipConcatenatorPort,
	musicMixer outbound.MusicMixerPort,
	publisher outbound.ArtifactPublisherPort) inbound.VideoPipelinePort {
	return &videoPipeline{
		logger:             logger,
		workerPool:         workerPool,
		segmenter:          segmenter,
		voiceoverGenerator: voiceoverGenerator,
		visualGenerator:    visualGenerator,
		clipGenerator:      clipGenerator,
		mediaStore:         mediaStore,
		concatenator:       concatenator,
		musicMixer:         musicMixer,
		publisher:          publisher,
	}
}

func (s *videoPipeline) Run(ctx context.Context, params inbound.RunPipelineParams, events chan<- domain.RunEvent) (*domain.PipelineRun, error) {
	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	run := &domain.PipelineRun{
		ID:        params.RunID,
		State:     domain.RunStateIdle,
		MusicPath: params.MusicPath,
		Layout:    params.Layout,
		StartedAt: time.Now(),
	}

	if err := s.mediaStore.EnsureLayout(params.Layout); err != nil {
		return run, s.fail(newCtx, run, events, err)
	}

	s.transition(newCtx, run, domain.RunStateSegmenting, events)
	scenes, err := s.segmenter.Segment(params.Script, params.RunID)
	if err != nil {
		return run, s.fail(newCtx, run, events, err)
	}
	run.SceneCount = len(scenes)

	s.transition(newCtx, run, domain.RunStateSynthesizing, events)
	scenesCh, err := s.emitScenes(newCtx, scenes)
	if err != nil {
		return run, s.fail(newCtx, run, events, err)
	}

	audioCh, voiceoverErrCh := s.voiceoverGenerator.Generate(newCtx, scenesCh, inbound.GenerateVoiceoverParams{
		Layout:  params.Layout,
		VoiceID: params.VoiceID,
		Events:  events,
	})
	assetsCh, visualErrCh := s.visualGenerator.Generate(newCtx, audioCh, inbound.GenerateVisualsParams{
		Layout: params.Layout,
		Events: events,
	})
	clipsCh, clipErrCh := s.clipGenerator.Generate(newCtx, assetsCh, inbound.GenerateClipsParams{
		Layout: params.Layout,
		Events: events,
	})

	mergedErrCh, err := channel_utils.MergeChannels(newCtx, s.workerPool, voiceoverErrCh, visualErrCh, clipErrCh)
	if err != nil {
		return run, s.fail(newCtx, run, events, err)
	}

	clips, err := s.collectClips(newCtx, clipsCh, mergedErrCh)
	if err != nil {
		return run, s.fail(newCtx, run, events, err)
	}

	s.transition(newCtx, run, domain.RunStateAssembling, events)
	narrationPath, err := s.concatenator.Concatenate(newCtx, clips, params.Layout.TempDir)
	if err != nil {
		return run, s.fail(newCtx, run, events, &domain.AssemblyError{Stage: "concat", Err: err})
	}

	videoPath := narrationPath
	if params.MusicPath != "" {
		mixedPath, err := s.musicMixer.Mix(newCtx, narrationPath, params.MusicPath, params.Layout.TempDir)
		if err != nil {
			return run, s.fail(newCtx, run, events, &domain.AssemblyError{Stage: "mix", Err: err})
		}
		videoPath = mixedPath
	}

	artifactPath, err := s.publisher.Publish(newCtx, videoPath, params.Layout.VideoDir)
	if err != nil {
		return run, s.fail(newCtx, run, events, &domain.AssemblyError{Stage: "publish", Err: err})
	}
	run.ArtifactPath = artifactPath

	s.transition(newCtx, run, domain.RunStateDone, events)
	channel_utils.TrySend(newCtx, events, domain.RunEvent{
		RunID: run.ID,
		Kind:  domain.EventArtifactReady,
		Path:  artifactPath,
	})

	s.logger.InfoWithFields("Pipeline run finished", map[string]any{
		"run_id":   run.ID,
		"scenes":   run.SceneCount,
		"artifact": artifactPath,
		"elapsed":  time.Since(run.StartedAt).String(),
	})

	return run, nil
}

func (s *videoPipeline) emitScenes(ctx context.Context, scenes []domain.Scene) (<-chan domain.Scene, error) {
	out := make(chan domain.Scene)
	err := s.workerPool.Submit(func() {
		defer close(out)
		for _, scene := range scenes {
			select {
			case out <- scene:
			case <-ctx.Done():
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *videoPipeline) collectClips(ctx context.Context, clipsCh <-chan domain.SceneClip, errCh <-chan error) ([]domain.SceneClip, error) {
	clips := make([]domain.SceneClip, 0)
	for {
		select {
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			s.logger.Error(err, "Error in scene synthesis")
			return nil, err
		case <-ctx.Done():
			return nil, ctx.Err()
		case clip, ok := <-clipsCh:
			if !ok {
				// An error can race the clip channel close; it must still win
				// over a partial result. Once every stage has shut down the
				// merged channel is guaranteed to close.
				if errCh != nil {
					if err, ok := <-errCh; ok {
						s.logger.Error(err, "Error in scene synthesis")
						return nil, err
					}
				}
				return clips, nil
			}
			clips = append(clips, clip)
		}
	}
}

func (s *videoPipeline) transition(ctx context.Context, run *domain.PipelineRun, state domain.RunState, events chan<- domain.RunEvent) {
	run.State = state
	s.logger.InfoWithFields("Pipeline state changed", map[string]any{
		"run_id": run.ID,
		"state":  state,
	})
	channel_utils.TrySend(ctx, events, domain.RunEvent{
		RunID: run.ID,
		Kind:  domain.EventStateChanged,
		State: state,
	})
}

func (s *videoPipeline) fail(ctx context.Context, run *domain.PipelineRun, events chan<- domain.RunEvent, err error) error {
	run.State = domain.RunStateFailed
	s.logger.ErrorWithFields(err, "Pipeline run failed", map[string]any{
		"run_id": run.ID,
	})
	channel_utils.TrySend(ctx, events, domain.RunEvent{
		RunID:   run.ID,
		Kind:    domain.EventRunFailed,
		State:   domain.RunStateFailed,
		Message: err.Error(),
	})
	return err
}
