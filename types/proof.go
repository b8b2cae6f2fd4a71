package types

import "fmt"

// NewEmpty implements types.Message.
func (m NudgeMessage) NewEmpty() Message {
	return &NudgeMessage{}
}

// Name implements types.Message.
func (m NudgeMessage) Name() string {
	return "nudge"
}

// String implements types.Message.
func (m NudgeMessage) String() string {
	return "<nudge>"
}

// ---

// NewEmpty implements types.Message.
func (m CommitmentMessage) NewEmpty() Message {
	return &CommitmentMessage{}
}

// Name implements types.Message.
func (m CommitmentMessage) Name() string {
	return "commitment"
}

// String implements types.Message.
func (m CommitmentMessage) String() string {
	return fmt.Sprintf("commitment - H: %v", m.Graph)
}

// ---

// NewEmpty implements types.Message.
func (m ChallengeBitMessage) NewEmpty() Message {
	return &ChallengeBitMessage{}
}

// Name implements types.Message.
func (m ChallengeBitMessage) Name() string {
	return "challengebit"
}

// String implements types.Message.
func (m ChallengeBitMessage) String() string {
	return fmt.Sprintf("challenge - b: %d", m.Bit)
}

// ---

// NewEmpty implements types.Message.
func (m IsomorphismMessage) NewEmpty() Message {
	return &IsomorphismMessage{}
}

// Name implements types.Message.
func (m IsomorphismMessage) Name() string {
	return "isomorphism"
}

// String implements types.Message.
func (m IsomorphismMessage) String() string {
	return fmt.Sprintf("isomorphism - q: %v", m.Perm)
}

// ---

// NewEmpty implements types.Message.
func (m ClassChallengeMessage) NewEmpty() Message {
	return &ClassChallengeMessage{}
}

// Name implements types.Message.
func (m ClassChallengeMessage) Name() string {
	return "classchallenge"
}

// String implements types.Message.
func (m ClassChallengeMessage) String() string {
	return fmt.Sprintf("class challenge - H: %v", m.Graph)
}

// ---

// NewEmpty implements types.Message.
func (m GuessMessage) NewEmpty() Message {
	return &GuessMessage{}
}

// Name implements types.Message.
func (m GuessMessage) Name() string {
	return "guess"
}

// String implements types.Message.
func (m GuessMessage) String() string {
	return fmt.Sprintf("guess - b': %d", m.Bit)
}
