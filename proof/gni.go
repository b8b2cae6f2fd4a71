package proof

import (
	"io"

	"golang.org/x/xerrors"

	"go.dedis.ch/zkgraph/graph"
	"go.dedis.ch/zkgraph/types"
)

// NewGNI returns the private-coin protocol proving g0 ≇ g1. The honest
// prover is modeled as computationally unbounded: it identifies the
// challenge's equivalence class by brute-force isomorphism search, so
// no witness is required of the caller. Graphs must stay toy-sized.
//
// src seeds all protocol randomness; nil selects crypto/rand. It must
// be safe for concurrent use if the protocol is run with RunParallel.
func NewGNI(g0, g1 *graph.Graph, src io.Reader) Protocol {
	return Protocol{
		Name: "gni",
		NewProver: func() Prover {
			return &gniProver{g1: g1}
		},
		NewVerifier: func() Verifier {
			return &gniVerifier{g0: g0, g1: g1, sampler: graph.NewSampler(src)}
		},
	}
}

// NewGuessingGNI returns a GNI protocol whose prover ignores the
// challenge and flips a fair coin. When g0 ≅ g1 the challenge's
// distribution is identical for both verifier coins, so no prover does
// better than this one: each round accepts with probability 1/2.
func NewGuessingGNI(g0, g1 *graph.Graph, src io.Reader) Protocol {
	return Protocol{
		Name: "gni-guessing",
		NewProver: func() Prover {
			return &guessingGNIProver{sampler: graph.NewSampler(src)}
		},
		NewVerifier: func() Verifier {
			return &gniVerifier{g0: g0, g1: g1, sampler: graph.NewSampler(src)}
		},
	}
}

// gniProver is the honest unbounded GNI prover: it tests which instance
// graph the challenge is isomorphic to. The two classes are disjoint
// exactly when g0 ≇ g1, so the test is unambiguous on true statements.
//
// - implements proof.Prover
type gniProver struct {
	g1        *graph.Graph
	sentGuess bool
}

// Handle implements proof.Prover.
func (p *gniProver) Handle(msg types.Message) (types.Message, bool, error) {
	switch m := msg.(type) {
	case types.ClassChallengeMessage:
		bit := 0
		if graph.AreIsomorphic(p.g1, m.Graph) {
			bit = 1
		}

		p.sentGuess = true
		return types.GuessMessage{Bit: bit}, false, nil

	case types.NudgeMessage:
		if !p.sentGuess {
			return nil, false, xerrors.Errorf("GNI prover nudged before any challenge: %w", ErrUnexpectedMessage)
		}
		return nil, true, nil

	default:
		return nil, false, xerrors.Errorf("GNI prover got %q: %w", msg.Name(), ErrUnexpectedMessage)
	}
}

// guessingGNIProver answers with a coin flip.
//
// - implements proof.Prover
type guessingGNIProver struct {
	sampler   *graph.Sampler
	sentGuess bool
}

// Handle implements proof.Prover.
func (p *guessingGNIProver) Handle(msg types.Message) (types.Message, bool, error) {
	switch msg.(type) {
	case types.ClassChallengeMessage:
		bit, err := p.sampler.Bit()
		if err != nil {
			return nil, false, xerrors.Errorf("guess: %v", err)
		}

		p.sentGuess = true
		return types.GuessMessage{Bit: bit}, false, nil

	case types.NudgeMessage:
		if !p.sentGuess {
			return nil, false, xerrors.Errorf("guessing GNI prover nudged before any challenge: %w", ErrUnexpectedMessage)
		}
		return nil, true, nil

	default:
		return nil, false, xerrors.Errorf("guessing GNI prover got %q: %w", msg.Name(), ErrUnexpectedMessage)
	}
}

// gniVerifier draws a secret bit b and a secret permutation p, sends
// only H = Gb.Permute(p), and accepts iff the prover names b. Both
// coins stay private; a transcript of a GNI round therefore carries no
// coins at all.
//
// - implements proof.Verifier
type gniVerifier struct {
	g0, g1  *graph.Graph
	sampler *graph.Sampler

	bit int
}

// Init implements proof.Verifier.
func (v *gniVerifier) Init() (types.Message, error) {
	bit, err := v.sampler.Bit()
	if err != nil {
		return nil, xerrors.Errorf("class challenge: %v", err)
	}

	base := v.g0
	if bit != 0 {
		base = v.g1
	}

	p, err := v.sampler.Sample(base.NumVertices())
	if err != nil {
		return nil, xerrors.Errorf("class challenge: %v", err)
	}
	h, err := base.Permute(p)
	if err != nil {
		return nil, xerrors.Errorf("class challenge: %v", err)
	}

	v.bit = bit
	return types.ClassChallengeMessage{Graph: h}, nil
}

// Handle implements proof.Verifier.
func (v *gniVerifier) Handle(msg types.Message) (types.Message, bool, error) {
	switch m := msg.(type) {
	case types.GuessMessage:
		return types.NudgeMessage{}, m.Bit == v.bit, nil

	default:
		return nil, false, xerrors.Errorf("GNI verifier got %q: %w", msg.Name(), ErrUnexpectedMessage)
	}
}
