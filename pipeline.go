package mandel

import (
	"fmt"
	"iter"
	"sync"
)

// PipelineError reports a panic recovered inside a pipeline producer or
// worker. The whole pipeline run is considered failed; any output
// already consumed before the fault is unspecified.
type PipelineError struct {
	Recovered any
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline worker panicked: %v", e.Recovered)
}

// Pipeline fans inputs out across workers goroutines and fans results
// back into consume: one producer feeds a bounded queue, each worker
// applies mapFn, and consume runs on the calling goroutine, draining a
// second bounded queue. Both queues hold 2*workers items, so the
// producer blocks once enough work is in flight and memory stays bounded
// regardless of input size.
//
// mapFn runs concurrently on every worker and must not rely on shared
// mutable state. Results reach consume in completion order, not input
// order, so each output must carry its own addressing. consume is the
// only goroutine allowed to touch shared destinations.
//
// All goroutines are joined before Pipeline returns. A panic in the
// producer or any worker is captured and surfaced as a *PipelineError;
// remaining work still drains so nothing deadlocks, but the run as a
// whole counts as failed. There is no cancellation: a run completes or
// fails atomically.
func Pipeline[I, O any](inputs iter.Seq[I], mapFn func(I) O, consume func(O), workers int) error {
	if workers < 1 {
		workers = 1
	}
	in := make(chan I, 2*workers)
	out := make(chan O, 2*workers)

	var (
		faultOnce sync.Once
		fault     error
	)
	capture := func(r any) {
		faultOnce.Do(func() {
			fault = &PipelineError{Recovered: r}
		})
	}

	go func() {
		defer close(in)
		defer func() {
			if r := recover(); r != nil {
				capture(r)
			}
		}()
		for item := range inputs {
			in <- item
		}
	}()

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range in {
				if result, ok := applyRecover(mapFn, item, capture); ok {
					out <- result
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()

	for result := range out {
		consume(result)
	}
	return fault
}

// applyRecover runs f on one item, converting a panic into a captured
// fault so the owning worker keeps draining its queue.
func applyRecover[I, O any](f func(I) O, item I, capture func(any)) (result O, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			capture(r)
			ok = false
		}
	}()
	return f(item), true
}
