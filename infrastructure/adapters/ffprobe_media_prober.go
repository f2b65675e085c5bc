package adapters

import (
	"context"
	"faceless-video-engine/application/ports/outbound"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

type ffprobeMediaProber struct {
	logger outbound.LoggerPort
}

// NewFFprobeMediaProber reads container durations with ffprobe. The full
// fractional value is kept; scene timing depends on it.
func NewFFprobeMediaProber(logger outbound.LoggerPort) outbound.MediaProberPort {
	return &ffprobeMediaProber{
		logger: logger,
	}
}

func (p *ffprobeMediaProber) Duration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", path)

	out, err := cmd.Output()
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to probe media duration", map[string]any{
			"path": path,
		})
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	durationStr := strings.TrimSpace(string(out))
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to parse media duration", map[string]any{
			"path":   path,
			"output": durationStr,
		})
		return 0, err
	}

	return duration, nil
}
