// Package types defines the messages the prover and verifier exchange
// during a proof round.
package types

// Message is a message exchanged between the two protocol roles.
type Message interface {
	// NewEmpty returns a new empty instance of the message type.
	NewEmpty() Message

	// Name returns the unique name of the message type.
	Name() string

	// String returns a human-readable rendering of the message.
	String() string
}
