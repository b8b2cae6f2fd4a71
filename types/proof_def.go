package types

import "go.dedis.ch/zkgraph/graph"

// --- Graph proof messages ---

// NudgeMessage is the dummy first message a verifier sends when the
// protocol requires the prover to speak first. It carries no content
// and is never recorded on a transcript.
type NudgeMessage struct{}

// CommitmentMessage opens a GI round: the prover commits to a fresh
// random relabeling H of G0.
type CommitmentMessage struct {
	Graph *graph.Graph
}

// ChallengeBitMessage is the GI verifier's public coin: it names which
// of the two instance graphs the prover must connect to its commitment.
type ChallengeBitMessage struct {
	Bit int
}

// IsomorphismMessage closes a GI round: the prover reveals a
// permutation mapping the challenged graph onto its commitment.
type IsomorphismMessage struct {
	Perm graph.Permutation
}

// ClassChallengeMessage opens a GNI round: the verifier sends a random
// relabeling H of a secretly chosen instance graph. The chosen bit and
// the permutation stay private to the verifier.
type ClassChallengeMessage struct {
	Graph *graph.Graph
}

// GuessMessage closes a GNI round: the prover names which instance
// graph it believes the challenge was derived from.
type GuessMessage struct {
	Bit int
}
