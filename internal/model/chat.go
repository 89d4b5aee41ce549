package model

import "time"

// ThreadID uniquely identifies a conversation thread
type ThreadID string

// Message is one chat message inside a thread
type Message struct {
	Sender   Identity
	Receiver Identity
	Body     string
	SentAt   time.Time
}

// Thread is the sole conversation record for one unordered pair of
// players. Participants are stored canonically: ParticipantA sorts
// before ParticipantB, so lookups never need to check both orderings.
type Thread struct {
	ID           ThreadID
	ParticipantA Identity
	ParticipantB Identity
	Messages     []Message
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanonicalPair returns the two identities in storage order
func CanonicalPair(a, b Identity) (Identity, Identity) {
	if b < a {
		return b, a
	}
	return a, b
}

// Involves reports whether the identity is a participant
func (t *Thread) Involves(p Identity) bool {
	return t.ParticipantA == p || t.ParticipantB == p
}

// Other returns the participant that is not p
func (t *Thread) Other(p Identity) Identity {
	if t.ParticipantA == p {
		return t.ParticipantB
	}
	return t.ParticipantA
}
