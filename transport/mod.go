// Package transport describes the logical channel between the two
// protocol roles. Sending is in-process data handoff: there is no wire
// format and no serialization, messages move between goroutines as-is.
package transport

import (
	"fmt"
	"time"

	"go.dedis.ch/zkgraph/types"
)

// Packet wraps a message in transit with the name of the role that
// sent it.
type Packet struct {
	From string
	Msg  types.Message
}

// String implements fmt.Stringer.
func (p Packet) String() string {
	return fmt.Sprintf("[%s] %s", p.From, p.Msg)
}

// Socket is one endpoint of a channel between the two roles.
type Socket interface {
	// Send delivers a packet to the peer endpoint. It blocks at most
	// timeout if timeout > 0 and returns a TimeoutError if it expires.
	Send(pkt Packet, timeout time.Duration) error

	// Recv blocks until a packet arrives, or at most timeout if
	// timeout > 0, in which case it returns a TimeoutError.
	Recv(timeout time.Duration) (Packet, error)

	// Close tears down the endpoint. Pending and subsequent operations
	// on either side fail with ErrClosed.
	Close() error

	// Addr returns the role name this endpoint was created with.
	Addr() string

	// Ins returns all packets received so far.
	Ins() []Packet

	// Outs returns all packets sent so far.
	Outs() []Packet
}

// TimeoutError is returned when Send or Recv expires.
type TimeoutError time.Duration

// Error implements error.
func (timeout TimeoutError) Error() string {
	return "timeout reached: " + time.Duration(timeout).String()
}

// Is implements support for errors.Is, matching any TimeoutError
// regardless of duration.
func (timeout TimeoutError) Is(err error) bool {
	_, ok := err.(TimeoutError)
	return ok
}
