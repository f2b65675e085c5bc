package adapters

import (
	"bufio"
	"bytes"
	"context"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/domain"
	"fmt"
	"github.com/google/uuid"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

type ffmpegClipConcatenator struct {
	logger outbound.LoggerPort
}

// NewFFmpegClipConcatenator joins scene clips with the concat demuxer, stream
// copy only. Clips are sorted by ordinal first, so input order never leaks
// into the output.
func NewFFmpegClipConcatenator(logger outbound.LoggerPort) outbound.ClipConcatenatorPort {
	return &ffmpegClipConcatenator{
		logger: logger,
	}
}

func (f *ffmpegClipConcatenator) Concatenate(ctx context.Context, clips []domain.SceneClip, tempDir string) (string, error) {
	if len(clips) == 0 {
		return "", fmt.Errorf("no clips to concatenate")
	}
	sort.Sort(domain.SceneClipsAscByOrdinal(clips))

	listFileName, err := f.writeClipList(clips, tempDir)
	if err != nil {
		f.logger.Error(err, "Failed to write the clip list file")
		return "", err
	}
	defer func(name string) {
		if err := os.Remove(name); err != nil {
			f.logger.Error(err, "Failed to remove the clip list file")
		}
	}(listFileName)

	outputFile := filepath.Join(tempDir, "narration_"+uuid.NewString()+".mp4")

	cmd := exec.CommandContext(ctx, "ffmpeg", "-y", "-f", "concat", "-safe", "0",
		"-i", listFileName, "-c", "copy", outputFile)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		f.logger.ErrorWithFields(err, "Failed to concatenate scene clips", map[string]any{
			"clips":  len(clips),
			"stderr": tailOf(stderr.String()),
		})
		return "", fmt.Errorf("ffmpeg concat: %w: %s", err, tailOf(stderr.String()))
	}

	return outputFile, nil
}

func (f *ffmpegClipConcatenator) writeClipList(clips []domain.SceneClip, tempDir string) (string, error) {
	fileList, err := os.Create(filepath.Join(tempDir, "concat_"+uuid.NewString()+".txt"))
	if err != nil {
		return "", err
	}
	defer func(fileList *os.File) {
		if err := fileList.Close(); err != nil {
			f.logger.Error(err, "Failed to close the clip list file")
		}
	}(fileList)

	writer := bufio.NewWriter(fileList)
	for _, clip := range clips {
		absPath, err := filepath.Abs(clip.VideoPath)
		if err != nil {
			return "", err
		}
		if _, err := writer.WriteString("file '" + absPath + "'\n"); err != nil {
			return "", err
		}
	}
	if err := writer.Flush(); err != nil {
		return "", err
	}

	return fileList.Name(), nil
}
