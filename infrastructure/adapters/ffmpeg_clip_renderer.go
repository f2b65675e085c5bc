package adapters

import (
	"bytes"
	"context"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/config"
	"faceless-video-engine/domain"
	"fmt"
	"github.com/google/uuid"
	"os/exec"
	"path/filepath"
	"strconv"
)

type ffmpegClipRenderer struct {
	logger         outbound.LoggerPort
	assemblyConfig *config.AssemblyConfig
	prober         outbound.MediaProberPort
}

// NewFFmpegClipRenderer renders one still-image clip per scene. The -shortest
// flag pins the clip length to the narration audio, which is the invariant
// the whole assembly rests on.
func NewFFmpegClipRenderer(assemblyConfig *config.AssemblyConfig, prober outbound.MediaProberPort, logger outbound.LoggerPort) outbound.SceneClipRendererPort {
	return &ffmpegClipRenderer{
		logger:         logger,
		assemblyConfig: assemblyConfig,
		prober:         prober,
	}
}

func (r *ffmpegClipRenderer) Render(ctx context.Context, scene domain.SceneWithAssets, tempDir string) (*outbound.RenderClipResponse, error) {
	outputFile := filepath.Join(tempDir, fmt.Sprintf("clip_%d_%s.mp4", scene.Ordinal, uuid.NewString()))

	args := r.buildRenderArgs(scene.ImagePath, scene.AudioPath, outputFile)
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		r.logger.ErrorWithFields(err, "Failed to render scene clip", map[string]any{
			"ordinal": scene.Ordinal,
			"stderr":  tailOf(stderr.String()),
		})
		return nil, fmt.Errorf("ffmpeg render: %w: %s", err, tailOf(stderr.String()))
	}

	duration, err := r.prober.Duration(ctx, outputFile)
	if err != nil {
		return nil, err
	}

	return &outbound.RenderClipResponse{
		VideoPath: outputFile,
		Duration:  duration,
	}, nil
}

func (r *ffmpegClipRenderer) buildRenderArgs(imagePath string, audioPath string, outputFile string) []string {
	return []string{
		"-y",
		"-loop", "1",
		"-i", imagePath,
		"-i", audioPath,
		"-c:v", r.assemblyConfig.VideoCodec,
		"-tune", "stillimage",
		"-c:a", "aac",
		"-b:a", "192k",
		"-pix_fmt", "yuv420p",
		"-r", strconv.Itoa(r.assemblyConfig.FrameRate),
		"-shortest",
		outputFile,
	}
}

// tailOf keeps error logs readable; ffmpeg writes its whole banner to stderr.
func tailOf(s string) string {
	const max = 400
	if len(s) <= max {
		return s
	}
	return s[len(s)-max:]
}
