package outbound

import "context"

// ArtifactPublisherPort moves a finished video into its final, timestamped
// location. Publishing is the last pipeline step; until it succeeds nothing
// exists under the final directory.
type ArtifactPublisherPort interface {
	Publish(ctx context.Context, videoPath string, finalDir string) (string, error)
}
