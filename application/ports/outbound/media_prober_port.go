package outbound

import "context"

// MediaProberPort reports the playable duration of a media file in seconds,
// with full fractional precision.
type MediaProberPort interface {
	Duration(ctx context.Context, path string) (float64, error)
}
