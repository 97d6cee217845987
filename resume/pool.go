package resume

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Pool bounds how many documents are decoded at once. Work runs on its own
// goroutine so a caller whose context ends can return without waiting.
type Pool struct {
	sem  *semaphore.Weighted
	size int
}

// NewPool creates a pool running at most workers tasks concurrently.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		sem:  semaphore.NewWeighted(int64(workers)),
		size: workers,
	}
}

// Size reports the concurrency limit.
func (p *Pool) Size() int {
	return p.size
}

// Do waits for a free slot and runs fn. It returns fn's error, or the
// context error if ctx ends first. A slot is held until fn returns even when
// the caller has already gone.
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		defer p.sem.Release(1)
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
