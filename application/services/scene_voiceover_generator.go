package services

import (
	"context"
	"faceless-video-engine/application/ports/inbound"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/channel_utils"
	"faceless-video-engine/domain"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

type sceneVoiceoverGenerator struct {
	logger           outbound.LoggerPort
	synthesizer      outbound.SpeechSynthesizerPort
	mediaStore       outbound.SceneMediaStorePort
	prober           outbound.MediaProberPort
	workerPool       outbound.TaskDispatcher
	sceneWorkers     outbound.TaskDispatcher
	markupRegexp     *regexp.Regexp
	whitespaceRegexp *regexp.Regexp
}

// NewSceneVoiceoverGenerator fans the incoming scenes out over the scene
// worker pool, synthesizes narration for each, stores the audio under the run
// layout and probes its duration. Any failure aborts the stage. The scene
// pool's size bounds how many scenes are in flight at once; a pool of one
// keeps synthesis strictly sequential.
func NewSceneVoiceoverGenerator(logger outbound.LoggerPort, synthesizer outbound.SpeechSynthesizerPort,
	mediaStore outbound.SceneMediaStorePort, prober outbound.MediaProberPort,
	workerPool outbound.TaskDispatcher, sceneWorkers outbound.TaskDispatcher) inbound.SceneVoiceoverGeneratorPort {
	return &sceneVoiceoverGenerator{
		logger:           logger,
		synthesizer:      synthesizer,
		mediaStore:       mediaStore,
		prober:           prober,
		workerPool:       workerPool,
		sceneWorkers:     sceneWorkers,
		markupRegexp:     regexp.MustCompile("[*_`#]"),
		whitespaceRegexp: regexp.MustCompile(`\s+`),
	}
}

func (s *sceneVoiceoverGenerator) Generate(ctx context.Context, scenes <-chan domain.Scene, params inbound.GenerateVoiceoverParams) (<-chan domain.SceneWithAudio, <-chan error) {
	out := make(chan domain.SceneWithAudio)
	errCh := make(chan error, 5)

	newCtx, cancel := context.WithCancel(ctx)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()

		var wg sync.WaitGroup

	loop:
		for sc := range scenes {
			select {
			case <-newCtx.Done():
				break loop
			default:
				wg.Add(1)
				scene := sc
				err := s.sceneWorkers.Submit(func() {
					defer wg.Done()

					withAudio, err := s.generateSceneAudio(newCtx, scene, params)
					if err != nil {
						select {
						case errCh <- err:
						case <-newCtx.Done():
						}
						return
					}

					channel_utils.TrySend(newCtx, params.Events, withAudio.ToEvent())

					select {
					case out <- *withAudio:
					case <-newCtx.Done():
					}
				})

				if err != nil {
					wg.Done()
					select {
					case errCh <- err:
					case <-newCtx.Done():
					}
					break loop
				}
			}
		}

		// All in-flight scene tasks must finish before the deferred closes run.
		wg.Wait()
	})

	if err != nil {
		errCh <- err
	}

	return out, errCh
}

func (s *sceneVoiceoverGenerator) generateSceneAudio(ctx context.Context, scene domain.Scene, params inbound.GenerateVoiceoverParams) (*domain.SceneWithAudio, error) {
	res, err := s.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
		Text:    s.sanitizeForNarration(scene.Text),
		VoiceID: params.VoiceID,
	})
	if err != nil {
		s.logger.Error(err, "Failed to synthesize scene narration")
		return nil, &domain.SynthesisError{Ordinal: scene.Ordinal, Medium: domain.AudioMedium, Err: err}
	}
	if len(res.Audio) == 0 {
		return nil, &domain.SynthesisError{Ordinal: scene.Ordinal, Medium: domain.AudioMedium,
			Err: fmt.Errorf("synthesizer returned empty audio")}
	}

	audioPath, err := s.mediaStore.SaveAudio(ctx, params.Layout.AudioDir, scene, res.Audio, res.Format)
	if err != nil {
		return nil, &domain.SynthesisError{Ordinal: scene.Ordinal, Medium: domain.AudioMedium, Err: err}
	}

	duration, err := s.prober.Duration(ctx, audioPath)
	if err != nil {
		return nil, &domain.SynthesisError{Ordinal: scene.Ordinal, Medium: domain.AudioMedium, Err: err}
	}
	if duration <= 0 {
		return nil, &domain.SynthesisError{Ordinal: scene.Ordinal, Medium: domain.AudioMedium,
			Err: fmt.Errorf("synthesized audio has zero duration")}
	}

	s.logger.DebugWithFields("Generated scene narration", map[string]any{
		"ordinal":  scene.Ordinal,
		"path":     audioPath,
		"duration": duration,
	})

	return &domain.SceneWithAudio{
		Scene:     scene,
		AudioPath: audioPath,
		Duration:  duration,
	}, nil
}

// sanitizeForNarration strips markdown markers the TTS model would read out
// loud and collapses runs of whitespace.
func (s *sceneVoiceoverGenerator) sanitizeForNarration(text string) string {
	cleaned := s.markupRegexp.ReplaceAllString(text, "")
	cleaned = s.whitespaceRegexp.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
