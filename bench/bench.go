// Package bench measures insert throughput for the power-sum accumulator.
// It is ambient test/benchmark tooling, not a reconciliation feature: it
// exercises only the accumulator's own Insert path, not the alternative
// IBLT/ILP/multiset/rolling-hash reconciliation strategies that appear as
// comparison baselines in original_source/ — those remain out of scope
// (spec.md §1).
package bench

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/ygina/quack/powersum"
)

// Result reports aggregate insert throughput across a fan-out of
// independent accumulators, each owned by its own goroutine (spec §5:
// "the library is intended to be embedded in a networking stack where
// each connection owns its accumulators" — this benchmark simulates that
// by giving every goroutine its own accumulator rather than sharing one).
type Result struct {
	Concurrency  int
	InsertsEach  int
	TotalInserts int
}

// InsertThroughput32 runs concurrency goroutines, each inserting
// insertsEach random identifiers into its own freshly constructed 32-bit
// accumulator, and waits for all of them to finish.
func InsertThroughput32(threshold, insertsEach, concurrency int) (Result, error) {
	if concurrency < 1 {
		return Result{}, fmt.Errorf("quack/bench: concurrency must be >= 1, got %d", concurrency)
	}

	var g errgroup.Group
	for i := 0; i < concurrency; i++ {
		seed := int64(i) + 1
		g.Go(func() error {
			q, err := powersum.NewQuack32(threshold)
			if err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(seed))
			for n := 0; n < insertsEach; n++ {
				q.Insert(rng.Uint32())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return Result{
		Concurrency:  concurrency,
		InsertsEach:  insertsEach,
		TotalInserts: concurrency * insertsEach,
	}, nil
}
