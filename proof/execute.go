package proof

import (
	"errors"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"

	"go.dedis.ch/zkgraph/transport"
	"go.dedis.ch/zkgraph/transport/channel"
	"go.dedis.ch/zkgraph/types"
)

// exchangeTimeout bounds every Send/Recv so a misbehaving role surfaces
// as an error instead of a deadlock.
const exchangeTimeout = 5 * time.Second

// Execute runs a single round of an interactive proof between p and v
// over a fresh in-process channel, the prover loop on its own
// goroutine. The verifier speaks first; the round ends when the prover
// reports done, and the verifier's last verdict is the round's verdict.
func Execute(p Prover, v Verifier) (bool, *Transcript, error) {
	proverSock, verifierSock := channel.Pair(RoleProver, RoleVerifier)
	defer proverSock.Close()

	tr := &Transcript{ID: xid.New().String()}

	proverErr := make(chan error, 1)
	go func() {
		proverErr <- proverLoop(p, proverSock)
	}()

	accept, err := verifierLoop(v, verifierSock, tr)
	if err != nil {
		return false, nil, xerrors.Errorf("verifier: %v", err)
	}

	if err := <-proverErr; err != nil {
		return false, nil, xerrors.Errorf("prover: %v", err)
	}

	log.Debug().
		Str("round", tr.ID).
		Bool("accept", accept).
		Msg("round finished")

	return accept, tr, nil
}

// proverLoop answers verifier messages until the prover reports done,
// then hangs up by closing the channel.
func proverLoop(p Prover, sock transport.Socket) error {
	defer sock.Close()

	for {
		pkt, err := sock.Recv(exchangeTimeout)
		if errors.Is(err, channel.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		reply, done, err := p.Handle(pkt.Msg)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		err = sock.Send(transport.Packet{From: RoleProver, Msg: reply}, exchangeTimeout)
		if err != nil {
			return err
		}
	}
}

// verifierLoop drives the verifier side and records the transcript.
// It returns once the prover hangs up.
func verifierLoop(v Verifier, sock transport.Socket, tr *Transcript) (bool, error) {
	msg, err := v.Init()
	if err != nil {
		return false, err
	}
	tr.record(msg)

	err = sock.Send(transport.Packet{From: RoleVerifier, Msg: msg}, exchangeTimeout)
	if err != nil {
		return false, err
	}

	accept := false
	for {
		pkt, err := sock.Recv(exchangeTimeout)
		if errors.Is(err, channel.ErrClosed) {
			return accept, nil
		}
		if err != nil {
			return false, err
		}
		tr.record(pkt.Msg)

		reply, verdict, err := v.Handle(pkt.Msg)
		if err != nil {
			return false, err
		}
		accept = verdict
		tr.record(reply)

		err = sock.Send(transport.Packet{From: RoleVerifier, Msg: reply}, exchangeTimeout)
		if errors.Is(err, channel.ErrClosed) {
			return accept, nil
		}
		if err != nil {
			return false, err
		}
	}
}

// record appends a substantive message to the transcript. Nudges carry
// no content and are skipped; a public challenge bit is a coin, not one
// of the round's two messages.
func (t *Transcript) record(msg types.Message) {
	switch m := msg.(type) {
	case types.NudgeMessage:
		return
	case types.ChallengeBitMessage:
		t.Coins = append(t.Coins, m.Bit)
	default:
		t.Messages = append(t.Messages, msg)
	}
}
