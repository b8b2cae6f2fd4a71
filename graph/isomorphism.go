package graph

// This file is the isomorphism oracle. FindIsomorphism is an exhaustive
// backtracking search and therefore exponential in the worst case; the
// protocols only ever call it on toy-sized instances (the GNI prover is
// modeled as computationally unbounded).

// VerifyIsomorphism reports whether p maps g0 onto g1, that is whether
// g1 equals g0 with vertex i relabeled to p[i]. It is a pure check with
// no search and no side effects; the GI verifier's accept decision
// depends solely on it. A malformed p yields false, never an error.
func VerifyIsomorphism(g0, g1 *Graph, p Permutation) bool {
	h, err := g0.Permute(p)
	if err != nil {
		return false
	}
	return h.Equals(g1)
}

// AreIsomorphic reports whether some permutation maps g0 onto g1.
func AreIsomorphic(g0, g1 *Graph) bool {
	return FindIsomorphism(g0, g1) != nil
}

// FindIsomorphism returns a permutation p with g1 = g0.Permute(p), or
// nil when the graphs are not isomorphic. The search assigns images to
// g0's vertices one by one, pruning candidates whose degree differs or
// whose adjacency to the already-assigned prefix is inconsistent.
func FindIsomorphism(g0, g1 *Graph) Permutation {
	if g0.n != g1.n || g0.NumEdges() != g1.NumEdges() {
		return nil
	}

	seq0 := g0.degreeSequence()
	seq1 := g1.degreeSequence()
	for i := range seq0 {
		if seq0[i] != seq1[i] {
			return nil
		}
	}

	search := isoSearch{
		g0:   g0,
		g1:   g1,
		deg0: g0.Degrees(),
		deg1: g1.Degrees(),
		p:    make(Permutation, g0.n),
		used: make([]bool, g0.n),
	}
	if search.extend(0) {
		return search.p
	}
	return nil
}

type isoSearch struct {
	g0, g1     *Graph
	deg0, deg1 []int
	p          Permutation // p[0:depth] is the partial mapping
	used       []bool      // image vertices already taken
}

// extend tries every unused image for vertex depth and recurses.
func (s *isoSearch) extend(depth int) bool {
	if depth == s.g0.n {
		return true
	}

	for c := 0; c < s.g1.n; c++ {
		if s.used[c] || s.deg0[depth] != s.deg1[c] {
			continue
		}
		if !s.consistent(depth, c) {
			continue
		}

		s.p[depth] = c
		s.used[c] = true
		if s.extend(depth + 1) {
			return true
		}
		s.used[c] = false
	}
	return false
}

// consistent checks that mapping vertex depth to image c preserves
// adjacency against every previously assigned vertex.
func (s *isoSearch) consistent(depth, c int) bool {
	for prev := 0; prev < depth; prev++ {
		if s.g0.adj[prev][depth] != s.g1.adj[s.p[prev]][c] {
			return false
		}
	}
	return true
}
