package models

type Entity struct {
	ID         int64  `json:"id"`
	AccessHash int64  `json:"access_hash"`
	Kind       string `json:"kind"`
	Title      string `json:"title"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Broadcast  bool   `json:"broadcast"`
}

type Message struct {
	ID     int64  `json:"id"`
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// Update is a side update from a delta. Only message-bearing updates carry Message.
type Update struct {
	Type    string   `json:"type"`
	Message *Message `json:"message,omitempty"`
}

type DeltaState string

const (
	DeltaEmpty   DeltaState = "empty"
	DeltaTooLong DeltaState = "too_long"
	DeltaNormal  DeltaState = "normal"
)

type Delta struct {
	State        DeltaState `json:"state"`
	Position     int64      `json:"position"`
	NewMessages  []Message  `json:"new_messages"`
	OtherUpdates []Update   `json:"other_updates"`
}

// DeltaRange bounds the message ids a delta request may cover.
type DeltaRange struct {
	MinID int64
	MaxID int64
}

type ChannelMetadata struct {
	Position int64  `json:"position"`
	Title    string `json:"title"`
}

type Self struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

type DialogFilter struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	IncludePeers []int64 `json:"include_peers"`
	PinnedPeers  []int64 `json:"pinned_peers"`
}
