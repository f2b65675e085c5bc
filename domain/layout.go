package domain

import "path/filepath"

// RunLayout is the on-disk shape of a pipeline run: one directory of audio
// files, one of images, one of final videos and one of assembly
// intermediates.
type RunLayout struct {
	AudioDir string
	ImageDir string
	VideoDir string
	TempDir  string
}

// NewRunLayout lays every run out flat under root, the way the CLI works.
func NewRunLayout(root string) RunLayout {
	return RunLayout{
		AudioDir: filepath.Join(root, "generated_audio"),
		ImageDir: filepath.Join(root, "generated_images"),
		VideoDir: filepath.Join(root, "final_videos"),
		TempDir:  filepath.Join(root, "temp_assets"),
	}
}

// NewScopedRunLayout nests the layout under a per-run directory so concurrent
// server runs cannot collide on scene file names.
func NewScopedRunLayout(root string, runID string) RunLayout {
	return NewRunLayout(filepath.Join(root, "runs", runID))
}

func (l RunLayout) Dirs() []string {
	return []string{l.AudioDir, l.ImageDir, l.VideoDir, l.TempDir}
}
