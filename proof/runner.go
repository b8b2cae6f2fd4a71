package proof

import (
	"sync"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// Run executes rounds independent rounds of the protocol sequentially
// and returns true iff every round accepts. Each round instantiates
// fresh roles, so its randomness is independent of every other round:
// a false statement survives k rounds with probability at most 2^-k.
// It returns ErrInvalidRounds when rounds < 1.
func Run(proto Protocol, rounds int) (bool, error) {
	if rounds < 1 {
		return false, xerrors.Errorf("run %q for %d rounds: %w", proto.Name, rounds, ErrInvalidRounds)
	}

	runID := xid.New().String()
	for i := 0; i < rounds; i++ {
		accept, _, err := Execute(proto.NewProver(), proto.NewVerifier())
		if err != nil {
			return false, xerrors.Errorf("round %d of %q: %v", i, proto.Name, err)
		}

		log.Debug().
			Str("run", runID).
			Str("protocol", proto.Name).
			Int("round", i).
			Bool("accept", accept).
			Msg("round verdict")

		if !accept {
			return false, nil
		}
	}

	return true, nil
}

// RunParallel executes the rounds concurrently, one goroutine per
// round. Rounds share no state beyond the protocol's randomness
// source, which must be safe for concurrent use (crypto/rand is). The
// verdict resolves only after every round has completed.
func RunParallel(proto Protocol, rounds int) (bool, error) {
	if rounds < 1 {
		return false, xerrors.Errorf("run %q for %d rounds: %w", proto.Name, rounds, ErrInvalidRounds)
	}

	accepts := make([]bool, rounds)
	errs := make([]error, rounds)

	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			accepts[i], _, errs[i] = Execute(proto.NewProver(), proto.NewVerifier())
		}(i)
	}
	wg.Wait()

	all := true
	for i := 0; i < rounds; i++ {
		if errs[i] != nil {
			return false, xerrors.Errorf("round %d of %q: %v", i, proto.Name, errs[i])
		}
		all = all && accepts[i]
	}

	return all, nil
}
