package proof

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Run_InvalidRounds(t *testing.T) {
	path, cycle := gniInstance()
	proto := NewGNI(path, cycle, nil)

	_, err := Run(proto, 0)
	require.ErrorIs(t, err, ErrInvalidRounds)

	_, err = Run(proto, -5)
	require.ErrorIs(t, err, ErrInvalidRounds)

	_, err = RunParallel(proto, 0)
	require.ErrorIs(t, err, ErrInvalidRounds)
}

func Test_Run_SingleRound(t *testing.T) {
	path, cycle := gniInstance()
	proto := NewGNI(path, cycle, seededSource(20))

	accept, err := Run(proto, 1)
	require.NoError(t, err)
	require.True(t, accept)
}

func Test_RunParallel_GNI_Completeness(t *testing.T) {
	// nil source selects crypto/rand, which is safe for the concurrent
	// draws of parallel rounds
	path, cycle := gniInstance()
	proto := NewGNI(path, cycle, nil)

	accept, err := RunParallel(proto, 16)
	require.NoError(t, err)
	require.True(t, accept)
}

func Test_RunParallel_GI_Completeness(t *testing.T) {
	g0, g1, w := giInstance(t)

	proto, err := NewGI(g0, g1, w, nil)
	require.NoError(t, err)

	accept, err := RunParallel(proto, 16)
	require.NoError(t, err)
	require.True(t, accept)
}

func Test_Run_StopsOnReject(t *testing.T) {
	// A cheating prover against a false statement gets caught within a
	// handful of rounds; across 30 rounds the survival probability is
	// below 2^-30, so the conjunction must come back false.
	path, cycle := gniInstance()
	proto := NewCheatingGI(path, cycle, seededSource(21))

	accept, err := Run(proto, 30)
	require.NoError(t, err)
	require.False(t, accept)
}
