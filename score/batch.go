package score

import (
	"sync"

	"github.com/Joedaddy66/Spartan-RD-HTT-Project/scan"
)

// Batch scores a slice of candidates, fanning the work out over the
// given number of workers. Candidates are independent and the scoring
// functions hold no shared state, so the result is identical whatever
// the worker count; output order always matches input order. A worker
// count below 2 scores sequentially.
func Batch(cands []scan.Candidate, pat scan.Pattern, step, workers int) []Scored {
	out := make([]Scored, len(cands))
	if workers < 2 || len(cands) < 2 {
		for i, c := range cands {
			out[i] = ScoreCandidate(c, pat, step)
		}
		return out
	}
	if workers > len(cands) {
		workers = len(cands)
	}
	idx := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				out[i] = ScoreCandidate(cands[i], pat, step)
			}
		}()
	}
	for i := range cands {
		idx <- i
	}
	close(idx)
	wg.Wait()
	return out
}
