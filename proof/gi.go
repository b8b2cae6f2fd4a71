package proof

import (
	"io"

	"golang.org/x/xerrors"

	"go.dedis.ch/zkgraph/graph"
	"go.dedis.ch/zkgraph/types"
)

// NewGI returns the public-coin protocol proving g0 ≅ g1 with an honest
// prover. The prover must hold the witness a priori: a permutation w
// with g1 = g0.Permute(w). The protocol never derives w from the public
// graphs itself, since that is exactly the problem being proven.
// It returns ErrMissingWitness when w is nil or does not map g0 to g1.
//
// src seeds all protocol randomness; nil selects crypto/rand. It must
// be safe for concurrent use if the protocol is run with RunParallel.
func NewGI(g0, g1 *graph.Graph, w graph.Permutation, src io.Reader) (Protocol, error) {
	if w == nil || !graph.VerifyIsomorphism(g0, g1, w) {
		return Protocol{}, xerrors.Errorf("honest GI prover for (%v, %v): %w", g0, g1, ErrMissingWitness)
	}

	wInv := w.Inverse()
	return Protocol{
		Name: "gi",
		NewProver: func() Prover {
			return &giProver{
				g0:         g0,
				witnessInv: wInv,
				sampler:    graph.NewSampler(src),
			}
		},
		NewVerifier: func() Verifier {
			return &giVerifier{g0: g0, g1: g1, sampler: graph.NewSampler(src)}
		},
	}, nil
}

// NewCheatingGI returns a GI protocol whose prover holds no witness: it
// commits to a relabeling of one instance graph picked at random and
// answers every challenge with that single permutation. Against a
// non-isomorphic pair it can satisfy at most one of the two challenge
// bits, so each round accepts with probability 1/2.
func NewCheatingGI(g0, g1 *graph.Graph, src io.Reader) Protocol {
	return Protocol{
		Name: "gi-cheating",
		NewProver: func() Prover {
			return &cheatingGIProver{g0: g0, g1: g1, sampler: graph.NewSampler(src)}
		},
		NewVerifier: func() Verifier {
			return &giVerifier{g0: g0, g1: g1, sampler: graph.NewSampler(src)}
		},
	}
}

// giProver is the honest GI prover. Per round it commits to
// H = G0.Permute(p) for a fresh uniform p and answers the challenge b
// with the permutation mapping Gb onto H: p itself for b = 0, and
// p ∘ w⁻¹ for b = 1.
//
// - implements proof.Prover
type giProver struct {
	g0         *graph.Graph
	witnessInv graph.Permutation
	sampler    *graph.Sampler

	p         graph.Permutation // round permutation, set on commitment
	responded bool
}

// Handle implements proof.Prover.
func (p *giProver) Handle(msg types.Message) (types.Message, bool, error) {
	switch m := msg.(type) {
	case types.NudgeMessage:
		if p.responded {
			return nil, true, nil
		}
		return p.commit()

	case types.ChallengeBitMessage:
		return p.respond(m.Bit)

	default:
		return nil, false, xerrors.Errorf("GI prover got %q: %w", msg.Name(), ErrUnexpectedMessage)
	}
}

func (p *giProver) commit() (types.Message, bool, error) {
	perm, err := p.sampler.Sample(p.g0.NumVertices())
	if err != nil {
		return nil, false, xerrors.Errorf("commit: %v", err)
	}

	h, err := p.g0.Permute(perm)
	if err != nil {
		return nil, false, xerrors.Errorf("commit: %v", err)
	}

	p.p = perm
	return types.CommitmentMessage{Graph: h}, false, nil
}

func (p *giProver) respond(bit int) (types.Message, bool, error) {
	if p.p == nil {
		return nil, false, xerrors.Errorf("GI prover challenged before committing: %w", ErrUnexpectedMessage)
	}

	q := p.p
	if bit != 0 {
		// H = G0.Permute(p) and G0 = G1.Permute(w⁻¹), so the map
		// taking G1 onto H is p ∘ w⁻¹.
		q = p.p.Compose(p.witnessInv)
	}

	p.responded = true
	return types.IsomorphismMessage{Perm: q}, false, nil
}

// cheatingGIProver commits to a relabeling of Gc for a random secret c
// and can only answer the challenge b = c honestly.
//
// - implements proof.Prover
type cheatingGIProver struct {
	g0, g1  *graph.Graph
	sampler *graph.Sampler

	p         graph.Permutation
	responded bool
}

// Handle implements proof.Prover.
func (p *cheatingGIProver) Handle(msg types.Message) (types.Message, bool, error) {
	switch msg.(type) {
	case types.NudgeMessage:
		if p.responded {
			return nil, true, nil
		}

		c, err := p.sampler.Bit()
		if err != nil {
			return nil, false, xerrors.Errorf("cheating commit: %v", err)
		}
		base := p.g0
		if c != 0 {
			base = p.g1
		}

		perm, err := p.sampler.Sample(base.NumVertices())
		if err != nil {
			return nil, false, xerrors.Errorf("cheating commit: %v", err)
		}
		h, err := base.Permute(perm)
		if err != nil {
			return nil, false, xerrors.Errorf("cheating commit: %v", err)
		}

		p.p = perm
		return types.CommitmentMessage{Graph: h}, false, nil

	case types.ChallengeBitMessage:
		// best single answer: the permutation used for the commitment
		p.responded = true
		return types.IsomorphismMessage{Perm: p.p}, false, nil

	default:
		return nil, false, xerrors.Errorf("cheating GI prover got %q: %w", msg.Name(), ErrUnexpectedMessage)
	}
}

// giVerifier challenges the commitment with a public coin and accepts
// iff the revealed permutation maps the challenged graph onto it.
//
// - implements proof.Verifier
type giVerifier struct {
	g0, g1  *graph.Graph
	sampler *graph.Sampler

	h   *graph.Graph
	bit int
}

// Init implements proof.Verifier. The prover speaks first in GI, so the
// verifier opens with a nudge.
func (v *giVerifier) Init() (types.Message, error) {
	return types.NudgeMessage{}, nil
}

// Handle implements proof.Verifier.
func (v *giVerifier) Handle(msg types.Message) (types.Message, bool, error) {
	switch m := msg.(type) {
	case types.CommitmentMessage:
		bit, err := v.sampler.Bit()
		if err != nil {
			return nil, false, xerrors.Errorf("challenge: %v", err)
		}

		v.h = m.Graph
		v.bit = bit
		return types.ChallengeBitMessage{Bit: bit}, false, nil

	case types.IsomorphismMessage:
		if v.h == nil {
			return nil, false, xerrors.Errorf("GI verifier got response before commitment: %w", ErrUnexpectedMessage)
		}

		challenged := v.g0
		if v.bit != 0 {
			challenged = v.g1
		}

		accept := graph.VerifyIsomorphism(challenged, v.h, m.Perm)
		return types.NudgeMessage{}, accept, nil

	default:
		return nil, false, xerrors.Errorf("GI verifier got %q: %w", msg.Name(), ErrUnexpectedMessage)
	}
}
