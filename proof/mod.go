// Package proof implements two classical interactive zero-knowledge
// proof protocols over labeled graphs: Graph Isomorphism (GI,
// public-coin) and Graph Nonisomorphism (GNI, private-coin), together
// with the driver that runs a single two-message round and the runner
// that repeats rounds to amplify soundness from 1/2 to 2^-k.
package proof

import (
	"errors"
	"fmt"
	"strings"

	"go.dedis.ch/zkgraph/types"
)

// Sentinel errors for protocol construction and execution.
var (
	// ErrMissingWitness indicates an honest GI prover instantiated
	// without a permutation that actually maps G0 onto G1.
	ErrMissingWitness = errors.New("proof: missing isomorphism witness")

	// ErrInvalidRounds indicates a non-positive round count.
	ErrInvalidRounds = errors.New("proof: invalid round count")

	// ErrUnexpectedMessage indicates a role received a message type it
	// cannot handle at its current state.
	ErrUnexpectedMessage = errors.New("proof: unexpected message")
)

// Role names used on packets and in logs.
const (
	RoleProver   = "prover"
	RoleVerifier = "verifier"
)

// Prover is one side of an interactive proof. Handle takes a message
// from the verifier and returns the reply together with a done flag;
// when done is true the reply is discarded and the interaction ends.
//
// The honest GI prover holds an isomorphism witness a priori, the
// honest GNI prover searches. They are distinct implementations rather
// than one type with hidden branching, so the completeness argument of
// each variant stays auditable on its own.
type Prover interface {
	Handle(msg types.Message) (types.Message, bool, error)
}

// Verifier is the other side. The verifier always sends the first
// message; when a protocol needs the prover to speak first, Init
// returns a NudgeMessage. Handle takes a prover message and returns
// the next verifier message together with the current accept verdict;
// the last verdict before the prover hangs up is the round's verdict.
type Verifier interface {
	Init() (types.Message, error)
	Handle(msg types.Message) (types.Message, bool, error)
}

// Protocol binds a proof instance to factories producing fresh role
// implementations. Each round instantiates both roles anew so that no
// state, in particular no randomness, is ever reused across rounds.
type Protocol struct {
	Name        string
	NewProver   func() Prover
	NewVerifier func() Verifier
}

// Transcript records one round: the exactly two substantive messages
// exchanged (nudges are omitted) and, for public-coin protocols, the
// verifier's coins. It is discarded once the round's verdict is
// consumed; nothing is persisted.
type Transcript struct {
	ID       string
	Messages []types.Message
	Coins    []int
}

// String implements fmt.Stringer.
func (t *Transcript) String() string {
	parts := make([]string, 0, len(t.Messages))
	for _, msg := range t.Messages {
		parts = append(parts, msg.String())
	}
	return fmt.Sprintf("<%s> coins=%v | %s", t.ID, t.Coins, strings.Join(parts, " ; "))
}
