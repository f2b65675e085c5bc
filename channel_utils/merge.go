package channel_utils

import (
	"context"
	"faceless-video-engine/application/ports/outbound"
	"sync"
)

// MergeChannels fans any number of channels into one, which closes once every
// input has closed. Readers run on the shared worker pool. Once ctx ends,
// remaining values are drained and discarded so upstream senders can finish.
func MergeChannels[T any](ctx context.Context, workerPool outbound.TaskDispatcher, channels ...<-chan T) (<-chan T, error) {
	var wg sync.WaitGroup
	merged := make(chan T)

	drain := func(c <-chan T) {
		for val := range c {
			select {
			case merged <- val:
			case <-ctx.Done():
			}
		}
		wg.Done()
	}

	wg.Add(len(channels))
	for _, c := range channels {
		ch := c
		err := workerPool.Submit(func() {
			drain(ch)
		})
		if err != nil {
			return nil, err
		}
	}

	err := workerPool.Submit(func() {
		wg.Wait()
		close(merged)
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

// TrySend delivers val unless the channel is nil or the context ends first.
// A nil channel makes the send a no-op, which is how optional event sinks are
// wired through the pipeline.
func TrySend[T any](ctx context.Context, ch chan<- T, val T) bool {
	if ch == nil {
		return false
	}
	select {
	case ch <- val:
		return true
	case <-ctx.Done():
		return false
	}
}
