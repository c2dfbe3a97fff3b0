// internal/pairwise/run.go
package pairwise

import (
	"context"
	"sync"

	"chromalign/internal/extract"
)

// Config controls the concurrent runner.
type Config struct {
	Threads int // number of worker goroutines (>=1)
	MaxLen  int // cap each operand to this many symbols; 0 disables
}

// Run scores all pairs on a worker pool and calls visit once per pair in
// enumeration order. The returned Report is identical to BestMatch over the
// capped items for any thread count. It returns the first visit error or the
// context error on cancellation.
func Run(
	ctx context.Context,
	items []extract.Named,
	cfg Config,
	visit func(PairResult) error,
) (Report, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	items = Cap(items, cfg.MaxLen)

	type job struct{ k, i, j int }
	type done struct {
		k int
		r PairResult
	}

	n := Pairs(len(items))
	all := make([]PairResult, n)
	if n == 0 {
		return Report{All: all}, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job, cfg.Threads*2)
	results := make(chan done, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-runCtx.Done():
					return
				case jb, ok := <-jobs:
					if !ok {
						return
					}
					select {
					case results <- done{k: jb.k, r: score(items, jb.i, jb.j)}:
					case <-runCtx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: reorders completions so visit sees enumeration order.
	var (
		cerr  error
		cwg   sync.WaitGroup
		ready = make([]bool, n)
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		next := 0
		for d := range results {
			all[d.k] = d.r
			ready[d.k] = true
			for next < n && ready[next] {
				if cerr == nil && visit != nil {
					if err := visit(all[next]); err != nil {
						cerr = err
						cancel()
					}
				}
				next++
			}
		}
	}()

	// Feed work
	k := 0
feed:
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			select {
			case <-runCtx.Done():
				break feed
			case jobs <- job{k: k, i: i, j: j}:
			}
			k++
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return Report{}, cerr
	}
	if ctx.Err() != nil {
		return Report{}, ctx.Err()
	}
	return Report{Best: pickBest(all), All: all}, nil
}
