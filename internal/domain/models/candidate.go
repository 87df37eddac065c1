package models

import "time"

type Candidate struct {
	ID              int64
	OwnerID         int64
	ExternalUserID  string
	Handle          string
	SourceMessageID int64
	SourceChatID    int64
	ContextText     string
	Accepted        bool
	DecisionMeta    []byte
	Sent            bool
	Batched         bool
	CreatedAt       time.Time
}

// Sender identifies the person a channel post points at.
type Sender struct {
	ExternalUserID string
	Handle         string
}

// DecisionMeta explains why a candidate was kept but not accepted.
// Only the signals that fired are set.
type DecisionMeta struct {
	Filtered      bool     `json:"filtered,omitempty"`
	Ignores       []string `json:"ignores,omitempty"`
	Triggers      []string `json:"triggers,omitempty"`
	NotMention    bool     `json:"not_mention,omitempty"`
	Banned        string   `json:"banned,omitempty"`
	AlreadyExists bool     `json:"already_exists,omitempty"`
	// Undeliverable holds the status kind that took the candidate out of the send queue.
	Undeliverable string `json:"undeliverable,omitempty"`
}
