package adapters

import (
	"fmt"
	"os/exec"
)

// CheckMediaTools verifies ffmpeg and ffprobe are reachable before a pipeline
// starts, instead of failing scenes deep into a run.
func CheckMediaTools() error {
	for _, tool := range []string{"ffmpeg", "ffprobe"} {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%s not found in PATH: %w", tool, err)
		}
	}
	return nil
}
