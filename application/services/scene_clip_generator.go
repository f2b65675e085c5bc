package services

import (
	"context"
	"faceless-video-engine/application/ports/inbound"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/channel_utils"
	"faceless-video-engine/domain"
	"sync"
)

type sceneClipGenerator struct {
	logger       outbound.LoggerPort
	renderer     outbound.SceneClipRendererPort
	workerPool   outbound.TaskDispatcher
	sceneWorkers outbound.TaskDispatcher
}

// NewSceneClipGenerator renders each scene's image+audio pair into a video
// clip. Completion order is whatever the pool yields; ordinals restore scene
// order before concatenation.
func NewSceneClipGenerator(logger outbound.LoggerPort, renderer outbound.SceneClipRendererPort,
	workerPool outbound.TaskDispatcher, sceneWorkers outbound.TaskDispatcher) inbound.SceneClipGeneratorPort {
	return &sceneClipGenerator{
		logger:       logger,
		renderer:     renderer,
		workerPool:   workerPool,
		sceneWorkers: sceneWorkers,
	}
}

func (g *sceneClipGenerator) Generate(ctx context.Context, scenes <-chan domain.SceneWithAssets, params inbound.GenerateClipsParams) (<-chan domain.SceneClip, <-chan error) {
	out := make(chan domain.SceneClip)
	errCh := make(chan error, 5)

	newCtx, cancel := context.WithCancel(ctx)

	err := g.workerPool.Submit(func() {
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
				err := g.sceneWorkers.Submit(func() {
					defer wg.Done()

					res, err := g.renderer.Render(newCtx, scene, params.Layout.TempDir)
					if err != nil {
						select {
						case errCh <- &domain.AssemblyError{Stage: "render", Err: err}:
						case <-newCtx.Done():
						}
						return
					}

					clip := domain.SceneClip{
						Ordinal:   scene.Ordinal,
						VideoPath: res.VideoPath,
						Duration:  res.Duration,
					}

					channel_utils.TrySend(newCtx, params.Events, domain.RunEvent{
						RunID:    scene.RunID,
						Kind:     domain.EventSceneClip,
						SceneID:  scene.ID,
						Ordinal:  scene.Ordinal,
						Path:     res.VideoPath,
						Duration: res.Duration,
					})

					select {
					case out <- clip:
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
