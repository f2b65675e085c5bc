package services

import (
	"context"
	"faceless-video-engine/application/ports/inbound"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/channel_utils"
	"faceless-video-engine/domain"
	"fmt"
	"sync"
)

type sceneVisualGenerator struct {
	logger         outbound.LoggerPort
	imageGenerator outbound.ImageGeneratorPort
	analyzer       outbound.SceneAnalyzerPort
	mediaStore     outbound.SceneMediaStorePort
	workerPool     outbound.TaskDispatcher
	sceneWorkers   outbound.TaskDispatcher
}

// NewSceneVisualGenerator produces one illustration per scene. When an
// analyzer is wired in (non-nil) every scene is analyzed first and the
// keywords sharpen the image prompt; analyzer failures abort the stage like
// any other synthesis failure.
func NewSceneVisualGenerator(logger outbound.LoggerPort, imageGenerator outbound.ImageGeneratorPort,
	analyzer outbound.SceneAnalyzerPort, mediaStore outbound.SceneMediaStorePort,
	workerPool outbound.TaskDispatcher, sceneWorkers outbound.TaskDispatcher) inbound.SceneVisualGeneratorPort {
	return &sceneVisualGenerator{
		logger:         logger,
		imageGenerator: imageGenerator,
		analyzer:       analyzer,
		mediaStore:     mediaStore,
		workerPool:     workerPool,
		sceneWorkers:   sceneWorkers,
	}
}

func (s *sceneVisualGenerator) Generate(ctx context.Context, scenes <-chan domain.SceneWithAudio, params inbound.GenerateVisualsParams) (<-chan domain.SceneWithAssets, <-chan error) {
	out := make(chan domain.SceneWithAssets)
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

					withAssets, err := s.generateSceneImage(newCtx, scene, params)
					if err != nil {
						select {
						case errCh <- err:
						case <-newCtx.Done():
						}
						return
					}

					channel_utils.TrySend(newCtx, params.Events, withAssets.ToEvent())

					select {
					case out <- *withAssets:
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

func (s *sceneVisualGenerator) generateSceneImage(ctx context.Context, scene domain.SceneWithAudio, params inbound.GenerateVisualsParams) (*domain.SceneWithAssets, error) {
	var analysis *domain.SceneAnalysis
	if s.analyzer != nil {
		result, err := s.analyzer.Analyze(ctx, scene.Scene)
		if err != nil {
			s.logger.Error(err, "Failed to analyze scene")
			return nil, &domain.SynthesisError{Ordinal: scene.Ordinal, Medium: domain.AnalysisMedium, Err: err}
		}
		analysis = result
		s.logger.DebugWithFields("Analyzed scene", map[string]any{
			"ordinal": scene.Ordinal,
			"title":   analysis.Title,
		})
	}

	req := outbound.GenerateImageRequest{Prompt: scene.Text}
	if analysis != nil {
		req.Keywords = analysis.Keywords
	}

	image, err := s.imageGenerator.Generate(ctx, req)
	if err != nil {
		s.logger.Error(err, "Failed to generate scene image")
		return nil, &domain.SynthesisError{Ordinal: scene.Ordinal, Medium: domain.ImageMedium, Err: err}
	}
	if len(image) == 0 {
		return nil, &domain.SynthesisError{Ordinal: scene.Ordinal, Medium: domain.ImageMedium,
			Err: fmt.Errorf("image generator returned empty image")}
	}

	imagePath, err := s.mediaStore.SaveImage(ctx, params.Layout.ImageDir, scene.Scene, image)
	if err != nil {
		return nil, &domain.SynthesisError{Ordinal: scene.Ordinal, Medium: domain.ImageMedium, Err: err}
	}

	return &domain.SceneWithAssets{
		SceneWithAudio: scene,
		ImagePath:      imagePath,
		Analysis:       analysis,
	}, nil
}
