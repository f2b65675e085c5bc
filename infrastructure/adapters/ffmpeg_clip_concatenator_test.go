package adapters

import (
	"context"
	"faceless-video-engine/domain"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFFmpegClipConcatenator_ConcatenateNoClips(t *testing.T) {
	logger := NewZerologWrapper("error")

	concatenator := NewFFmpegClipConcatenator(logger)

	if _, err := concatenator.Concatenate(context.Background(), nil, t.TempDir()); err == nil {
		t.Fatal("Expected an error for an empty clip list")
	}
}

func TestFFmpegClipConcatenatorWriteClipList(t *testing.T) {
	logger := NewZerologWrapper("error")

	concatenator := NewFFmpegClipConcatenator(logger).(*ffmpegClipConcatenator)

	tempDir := t.TempDir()
	clips := []domain.SceneClip{
		{Ordinal: 0, VideoPath: filepath.Join(tempDir, "clip_0.mp4")},
		{Ordinal: 1, VideoPath: filepath.Join(tempDir, "clip_1.mp4")},
		{Ordinal: 2, VideoPath: filepath.Join(tempDir, "clip_2.mp4")},
	}

	listPath, err := concatenator.writeClipList(clips, tempDir)
	if err != nil {
		t.Fatal("Failed to write clip list:", err)
	}

	data, err := os.ReadFile(listPath)
	if err != nil {
		t.Fatal("Failed to read clip list:", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != len(clips) {
		t.Fatal("Expected one line per clip, got:", lines)
	}

	for i, line := range lines {
		if !strings.HasPrefix(line, "file '") || !strings.HasSuffix(line, "'") {
			t.Fatal("Concat list lines must use the file '...' syntax:", line)
		}
		if !strings.Contains(line, fmt.Sprintf("clip_%d.mp4", i)) {
			t.Fatal("Clip order mismatch in the list:", line)
		}
		path := strings.TrimSuffix(strings.TrimPrefix(line, "file '"), "'")
		if !filepath.IsAbs(path) {
			t.Fatal("Concat list must use absolute paths:", line)
		}
	}
}
