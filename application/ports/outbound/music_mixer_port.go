package outbound

import "context"

// MusicMixerPort lays a background-music track under the narration at reduced
// volume. The music loops or is truncated to the narration length; it never
// extends the video.
type MusicMixerPort interface {
	Mix(ctx context.Context, videoPath string, musicPath string, tempDir string) (string, error)
}
