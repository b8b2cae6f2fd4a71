// Package channel implements transport.Socket over in-memory Go
// channels: a Pair of endpoints whose sends surface as the peer's
// receives. One pair models the logical channel of a single proof
// round, so rounds running in parallel never share an endpoint.
package channel

import (
	"errors"
	"sync"
	"time"

	"go.dedis.ch/zkgraph/transport"
)

// ErrClosed indicates an operation on a closed endpoint.
var ErrClosed = errors.New("channel: endpoint closed")

const bufSize = 8

// Pair returns two connected endpoints named a and b.
func Pair(a, b string) (transport.Socket, transport.Socket) {
	ab := make(chan transport.Packet, bufSize)
	ba := make(chan transport.Packet, bufSize)
	done := make(chan struct{})
	var once sync.Once

	left := &Socket{addr: a, in: ba, out: ab, done: done, once: &once}
	right := &Socket{addr: b, in: ab, out: ba, done: done, once: &once}
	return left, right
}

// packetStore keeps a concurrency-safe record of packets seen by an
// endpoint.
type packetStore struct {
	sync.RWMutex
	items []transport.Packet
}

func (p *packetStore) append(pkt transport.Packet) {
	p.Lock()
	defer p.Unlock()
	p.items = append(p.items, pkt)
}

func (p *packetStore) get() []transport.Packet {
	p.RLock()
	defer p.RUnlock()

	return append([]transport.Packet{}, p.items...)
}

// Socket is an in-memory endpoint.
//
// - implements transport.Socket
type Socket struct {
	addr string
	in   <-chan transport.Packet
	out  chan<- transport.Packet
	done chan struct{}
	once *sync.Once

	insPackets  packetStore
	outsPackets packetStore
}

// Send implements transport.Socket.
func (s *Socket) Send(pkt transport.Packet, timeout time.Duration) error {
	select {
	case <-s.done:
		return ErrClosed
	default:
	}

	var expire <-chan time.Time
	if timeout > 0 {
		expire = time.After(timeout)
	}

	select {
	case s.out <- pkt:
		s.outsPackets.append(pkt)
		return nil
	case <-s.done:
		return ErrClosed
	case <-expire:
		return transport.TimeoutError(timeout)
	}
}

// Recv implements transport.Socket.
func (s *Socket) Recv(timeout time.Duration) (transport.Packet, error) {
	var expire <-chan time.Time
	if timeout > 0 {
		expire = time.After(timeout)
	}

	select {
	case pkt := <-s.in:
		s.insPackets.append(pkt)
		return pkt, nil
	case <-s.done:
		return transport.Packet{}, ErrClosed
	case <-expire:
		return transport.Packet{}, transport.TimeoutError(timeout)
	}
}

// Close implements transport.Socket. Closing either endpoint closes
// the pair; closing twice is a no-op.
func (s *Socket) Close() error {
	s.once.Do(func() {
		close(s.done)
	})
	return nil
}

// Addr implements transport.Socket.
func (s *Socket) Addr() string {
	return s.addr
}

// Ins implements transport.Socket.
func (s *Socket) Ins() []transport.Packet {
	return s.insPackets.get()
}

// Outs implements transport.Socket.
func (s *Socket) Outs() []transport.Packet {
	return s.outsPackets.get()
}
