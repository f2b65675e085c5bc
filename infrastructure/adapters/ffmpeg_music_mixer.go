package adapters

import (
	"bytes"
	"context"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/config"
	"fmt"
	"github.com/google/uuid"
	"os"
	"os/exec"
	"path/filepath"
)

type ffmpegMusicMixer struct {
	logger         outbound.LoggerPort
	assemblyConfig *config.AssemblyConfig
}

// NewFFmpegMusicMixer loops the music track under the narration at the
// configured volume. amix with duration=first cuts the loop at narration
// end, so the final partial repeat is simply truncated and the video length
// never changes.
func NewFFmpegMusicMixer(assemblyConfig *config.AssemblyConfig, logger outbound.LoggerPort) outbound.MusicMixerPort {
	return &ffmpegMusicMixer{
		logger:         logger,
		assemblyConfig: assemblyConfig,
	}
}

func (m *ffmpegMusicMixer) Mix(ctx context.Context, videoPath string, musicPath string, tempDir string) (string, error) {
	if _, err := os.Stat(musicPath); err != nil {
		return "", fmt.Errorf("background music not readable: %w", err)
	}

	outputFile := filepath.Join(tempDir, "mixed_"+uuid.NewString()+".mp4")

	args := m.buildMixArgs(videoPath, musicPath, outputFile)
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		m.logger.ErrorWithFields(err, "Failed to mix background music", map[string]any{
			"music":  musicPath,
			"stderr": tailOf(stderr.String()),
		})
		return "", fmt.Errorf("ffmpeg mix: %w: %s", err, tailOf(stderr.String()))
	}

	return outputFile, nil
}

func (m *ffmpegMusicMixer) buildMixArgs(videoPath string, musicPath string, outputFile string) []string {
	filter := fmt.Sprintf("[1:a]volume=%g[music];[0:a][music]amix=inputs=2:duration=first:dropout_transition=0[mixed]",
		m.assemblyConfig.MusicVolume)

	return []string{
		"-y",
		"-i", videoPath,
		"-stream_loop", "-1",
		"-i", musicPath,
		"-filter_complex", filter,
		"-map", "0:v",
		"-map", "[mixed]",
		"-c:v", "copy",
		"-c:a", "aac",
		"-b:a", "192k",
		"-shortest",
		outputFile,
	}
}
