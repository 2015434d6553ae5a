package sampling

import "github.com/nozzle/rng"

// Permutation samples ordered k-subsets of [0, n).
type Permutation struct {
	g      rng.Generator
	domain []int
	k      int
}

// NewPermutation returns a sampler of k elements from [0, n), 0 < k <= n.
func NewPermutation(g rng.Generator, n, k int) (*Permutation, error) {
	if n <= 0 {
		return nil, invalid("permutation domain size %d", n)
	}
	if k <= 0 || k > n {
		return nil, invalid("permutation size %d for domain %d", k, n)
	}
	return &Permutation{g: g, domain: Natural(n), k: k}, nil
}

// Sample returns k distinct values of [0, n) in random order.
func (s *Permutation) Sample() []int {
	// Partial Fisher-Yates: the first k slots end up holding the sample.
	// Earlier samples leave the domain permuted, which does not bias the next.
	n := len(s.domain)
	for i := range s.k {
		j, _ := s.g.Int64N(int64(n - i)) // n-i > 0
		s.domain[i], s.domain[i+int(j)] = s.domain[i+int(j)], s.domain[i]
	}
	out := make([]int, s.k)
	copy(out, s.domain)
	return out
}

// WithGenerator returns a sampler bound to g with its own domain.
func (s *Permutation) WithGenerator(g rng.Generator) *Permutation {
	domain := make([]int, len(s.domain))
	copy(domain, s.domain)
	return &Permutation{g: g, domain: domain, k: s.k}
}

// Natural returns [0, n) in order.
func Natural(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Shuffle permutes s uniformly in place with the Fisher-Yates algorithm.
func Shuffle[T any](g rng.Generator, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j, _ := g.Int64N(int64(i + 1)) // i+1 >= 2
		s[i], s[j] = s[j], s[i]
	}
}
