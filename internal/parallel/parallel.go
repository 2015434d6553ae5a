// Package parallel provides parallel execution helpers that hand each
// worker its own generator.
package parallel

import (
	"runtime"
	"sync"

	"golang.org/x/xerrors"

	"github.com/nozzle/rng"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// chunks splits [start, end) into at most n contiguous ranges.
func chunks(start, end, n int) [][2]int {
	total := end - start
	if total <= 0 {
		return nil
	}
	n = max(n, 1)
	size := (total + n - 1) / n

	var out [][2]int
	for s := start; s < end; s += size {
		out = append(out, [2]int{s, min(s+size, end)})
	}
	return out
}

// ParallelFor executes fn for indices [start, end) using n workers.
func ParallelFor(start, end, n int, fn func(i int)) {
	if n <= 1 {
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	for _, c := range chunks(start, end, n) {
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}(c[0], c[1])
	}
	wg.Wait()
}

// run executes fn for every chunk in parallel, each with the generator
// prepared for it.
func run(ch [][2]int, gens []rng.Generator, fn func(g rng.Generator, chunkStart, chunkEnd int)) {
	ParallelFor(0, len(ch), len(ch), func(i int) {
		fn(gens[i], ch[i][0], ch[i][1])
	})
}

// ForJumped executes fn for chunks of [start, end) on n workers. Every
// chunk gets a copy of g taken with g.Jump before any worker starts, so
// chunk i always sees the same sequence regardless of scheduling. g is left
// advanced by one jump per chunk.
func ForJumped(g rng.Jumpable, start, end, n int, fn func(g rng.Generator, chunkStart, chunkEnd int)) {
	ch := chunks(start, end, n)
	if len(ch) == 0 {
		return
	}
	gens := make([]rng.Generator, len(ch))
	for i := range gens {
		gens[i] = g.Jump()
	}
	run(ch, gens, fn)
}

// ForSplit is ForJumped with chunk generators split from g using source.
func ForSplit(g rng.Splittable, source rng.Generator, start, end, n int, fn func(g rng.Generator, chunkStart, chunkEnd int)) error {
	if source == nil {
		return rng.ErrNilSource
	}
	ch := chunks(start, end, n)
	if len(ch) == 0 {
		return nil
	}
	gens := make([]rng.Generator, len(ch))
	for i := range gens {
		c, err := g.Split(source)
		if err != nil {
			return xerrors.Errorf("split generator for chunk %d: %w", i, err)
		}
		gens[i] = c
	}
	run(ch, gens, fn)
	return nil
}
