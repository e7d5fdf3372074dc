package shared

import (
	"context"
	"sync"
)

// ForEachLimit runs fn for every item over at most workers goroutines and
// waits for all of them. fn owns its own error handling: one item failing
// must never block the rest of the batch, so nothing propagates out of here.
func ForEachLimit[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T)) {
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for _, item := range items {
		wg.Add(1)
		sem <- struct{}{}
		go func(it T) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(ctx, it)
		}(item)
	}
	wg.Wait()
}
