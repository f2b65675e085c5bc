package controllers

import (
	"context"
	"faceless-video-engine/application/ports/inbound"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/domain"
	"faceless-video-engine/infrastructure/gin_interface/dto"
	"faceless-video-engine/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"time"
)

const (
	eventBufferSize   = 16
	keepaliveInterval = 15 * time.Second
)

type VideoPipelineController interface {
	CreateVideo(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type videoPipelineController struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	pipeline   inbound.VideoPipelinePort
	outputRoot string
}

func NewVideoPipelineController(
	logger outbound.LoggerPort,
	workerPool outbound.TaskDispatcher,
	pipeline inbound.VideoPipelinePort,
	outputRoot string,
) VideoPipelineController {
	return &videoPipelineController{
		logger:     logger,
		workerPool: workerPool,
		pipeline:   pipeline,
		outputRoot: outputRoot,
	}
}

// CreateVideo starts a pipeline run and streams its progress as server-sent
// events until the run finishes or the client goes away. This handler is the
// only writer on the response; the run itself happens on the worker pool.
func (v *videoPipelineController) CreateVideo(c *gin.Context) {
	var createVideoRequest dto.CreateVideoRequest
	newCtx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	if err := c.ShouldBindJSON(&createVideoRequest); err != nil {
		err = c.AbortWithError(400, err)
		if err != nil {
			v.logger.Error(err, "failed to abort with error")
		}
		return
	}

	runID := uuid.NewString()
	layout := domain.NewScopedRunLayout(v.outputRoot, runID)
	events := make(chan domain.RunEvent, eventBufferSize)

	err := v.workerPool.Submit(func() {
		defer close(events)
		_, runErr := v.pipeline.Run(newCtx, inbound.RunPipelineParams{
			RunID:     runID,
			Script:    createVideoRequest.Script,
			MusicPath: createVideoRequest.MusicPath,
			VoiceID:   createVideoRequest.VoiceID,
			Layout:    layout,
		}, events)
		if runErr != nil {
			v.logger.ErrorWithFields(runErr, "pipeline run failed", map[string]any{
				"run_id": runID,
			})
		}
	})
	if err != nil {
		err = c.AbortWithError(500, err)
		if err != nil {
			v.logger.Error(err, "failed to abort with error")
		}
		return
	}

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				v.logger.InfoWithFields("event stream complete", map[string]any{
					"run_id": runID,
				})
				return
			}
			c.SSEvent(string(event.Kind), event)
			c.Writer.Flush()
		case <-keepalive.C:
			if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		case <-newCtx.Done():
			return
		}
	}
}

func (v *videoPipelineController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/v1/videos", middleware.SSEMiddleware(), v.CreateVideo)
}
