package graph

import (
	"crypto/rand"
	"io"
	"math/big"

	"golang.org/x/xerrors"
)

// Permutation is a bijection on {0,...,n-1}: position i holds the new
// label of vertex i.
type Permutation []int

// Identity returns the identity permutation on n elements.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Valid reports whether every value in [0, n) appears exactly once.
func (p Permutation) Valid() bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Inverse returns the permutation q with q[p[i]] = i.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for i, v := range p {
		q[v] = i
	}
	return q
}

// Compose returns the permutation r with r[i] = p[q[i]], i.e. q applied
// first, then p.
func (p Permutation) Compose(q Permutation) Permutation {
	r := make(Permutation, len(p))
	for i := range r {
		r[i] = p[q[i]]
	}
	return r
}

// Sampler draws protocol randomness from an explicit source. Both the
// unpredictability of the GI prover's commitment and the secrecy of the
// GNI verifier's coins rest on this source, so production code uses
// crypto/rand; tests may inject a deterministic reader.
type Sampler struct {
	src io.Reader
}

// NewSampler returns a sampler over the given source. A nil source
// selects crypto/rand.Reader.
func NewSampler(src io.Reader) *Sampler {
	if src == nil {
		src = rand.Reader
	}
	return &Sampler{src: src}
}

// Sample draws a permutation of n elements uniformly at random from all
// n! possibilities, via a Fisher-Yates shuffle of the identity. It
// returns ErrInvalidSize for negative n.
func (s *Sampler) Sample(n int) (Permutation, error) {
	if n < 0 {
		return nil, xerrors.Errorf("sample permutation of %d elements: %w", n, ErrInvalidSize)
	}

	p := Identity(n)
	for i := n - 1; i > 0; i-- {
		j, err := s.intn(i + 1)
		if err != nil {
			return nil, xerrors.Errorf("sample permutation: %v", err)
		}
		p[i], p[j] = p[j], p[i]
	}
	return p, nil
}

// Bit draws a uniformly random challenge bit.
func (s *Sampler) Bit() (int, error) {
	b, err := s.intn(2)
	if err != nil {
		return 0, xerrors.Errorf("sample bit: %v", err)
	}
	return b, nil
}

// intn draws a uniform integer in [0, max).
func (s *Sampler) intn(max int) (int, error) {
	v, err := rand.Int(s.src, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
