package proof

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/zkgraph/types"
)

// offScriptProver answers every verifier message with a GNI guess,
// whatever the protocol expects.
type offScriptProver struct{}

func (offScriptProver) Handle(types.Message) (types.Message, bool, error) {
	return types.GuessMessage{Bit: 0}, false, nil
}

func Test_Execute_UnexpectedMessageIsError(t *testing.T) {
	// A role breaking the message sequence is malformed input, not a
	// cheat: the round errors out instead of rejecting.
	g0, g1, w := giInstance(t)

	proto, err := NewGI(g0, g1, w, seededSource(30))
	require.NoError(t, err)

	_, _, err = Execute(offScriptProver{}, proto.NewVerifier())
	require.Error(t, err)
}

func Test_Execute_FreshTranscriptPerRound(t *testing.T) {
	path, cycle := gniInstance()
	proto := NewGNI(path, cycle, seededSource(31))

	_, tr1, err := Execute(proto.NewProver(), proto.NewVerifier())
	require.NoError(t, err)

	_, tr2, err := Execute(proto.NewProver(), proto.NewVerifier())
	require.NoError(t, err)

	require.NotEqual(t, tr1.ID, tr2.ID)
}

func Test_Execute_FreshRandomnessPerRound(t *testing.T) {
	// The committed graph must change between rounds: with n! = 24
	// relabelings of the path, 40 rounds repeating a single commitment
	// would mean the round permutation is being reused.
	g0, g1, w := giInstance(t)

	proto, err := NewGI(g0, g1, w, seededSource(32))
	require.NoError(t, err)

	seen := map[string]int{}
	for i := 0; i < 40; i++ {
		_, tr, err := Execute(proto.NewProver(), proto.NewVerifier())
		require.NoError(t, err)

		commitment, ok := tr.Messages[0].(types.CommitmentMessage)
		require.True(t, ok)
		seen[commitment.Graph.String()]++
	}

	require.Greater(t, len(seen), 1)
}
