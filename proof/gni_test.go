package proof

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/zkgraph/graph"
)

func Test_GNI_Completeness(t *testing.T) {
	path, cycle := gniInstance()

	proto := NewGNI(path, cycle, seededSource(10))

	accept, err := Run(proto, 10)
	require.NoError(t, err)
	require.True(t, accept)
}

func Test_GNI_Completeness_SameDegreeSequence(t *testing.T) {
	// hexagon vs two triangles: both 2-regular, still not isomorphic,
	// so the search prover must rely on more than degrees
	hexagon := graph.MustNew(6, []graph.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 0},
	})
	triangles := graph.MustNew(6, []graph.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 3},
	})

	proto := NewGNI(hexagon, triangles, seededSource(11))

	accept, err := Run(proto, 10)
	require.NoError(t, err)
	require.True(t, accept)
}

func Test_GNI_Transcript(t *testing.T) {
	path, cycle := gniInstance()
	proto := NewGNI(path, cycle, seededSource(12))

	accept, tr, err := Execute(proto.NewProver(), proto.NewVerifier())
	require.NoError(t, err)
	require.True(t, accept)

	// exactly two substantive messages: challenge, then guess
	require.Len(t, tr.Messages, 2)
	require.Equal(t, "classchallenge", tr.Messages[0].Name())
	require.Equal(t, "guess", tr.Messages[1].Name())

	// GNI is private-coin: nothing of b or p reaches the transcript
	require.Empty(t, tr.Coins)
}

func Test_GNI_Soundness_PerRound(t *testing.T) {
	// Isomorphic instance: the challenge distribution is identical for
	// both verifier coins, so any prover is reduced to guessing.
	g0 := graph.MustNew(4, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})
	g1, err := g0.Permute(graph.Permutation{1, 2, 0, 3})
	require.NoError(t, err)

	proto := NewGuessingGNI(g0, g1, seededSource(13))

	trials := 400
	accepted := 0
	for i := 0; i < trials; i++ {
		accept, _, err := Execute(proto.NewProver(), proto.NewVerifier())
		require.NoError(t, err)
		if accept {
			accepted++
		}
	}

	rate := float64(accepted) / float64(trials)
	require.Greater(t, rate, 0.35)
	require.Less(t, rate, 0.65)
}

func Test_GNI_Soundness_HonestProverCannotProveFalse(t *testing.T) {
	// Even the search prover cannot distinguish relabelings of
	// isomorphic graphs: it answers 1 whenever the challenge matches
	// g1's class, which is always, while the verifier picked b = 0 half
	// the time.
	g0 := graph.MustNew(4, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})
	g1, err := g0.Permute(graph.Permutation{1, 2, 0, 3})
	require.NoError(t, err)

	proto := NewGNI(g0, g1, seededSource(14))

	trials := 400
	accepted := 0
	for i := 0; i < trials; i++ {
		accept, _, err := Execute(proto.NewProver(), proto.NewVerifier())
		require.NoError(t, err)
		if accept {
			accepted++
		}
	}

	rate := float64(accepted) / float64(trials)
	require.Greater(t, rate, 0.35)
	require.Less(t, rate, 0.65)
}

func Test_GNI_Soundness_Amplified(t *testing.T) {
	g0 := graph.MustNew(4, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})
	g1, err := g0.Permute(graph.Permutation{1, 2, 0, 3})
	require.NoError(t, err)

	proto := NewGuessingGNI(g0, g1, seededSource(15))

	accepted := 0
	for i := 0; i < 20; i++ {
		accept, err := Run(proto, 10)
		require.NoError(t, err)
		if accept {
			accepted++
		}
	}
	require.LessOrEqual(t, accepted, 1)
}
