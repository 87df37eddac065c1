package models

import "time"

type AlertKind string

const (
	AlertBatch        AlertKind = "batch"
	AlertConnectivity AlertKind = "connectivity"
	AlertThrottle     AlertKind = "throttle"
	AlertChannelLost  AlertKind = "channel_lost"
)

// Alert is an operator-facing notice produced by the job worker.
type Alert struct {
	Kind      AlertKind `json:"kind"`
	OwnerID   int64     `json:"ownerId"`
	BotID     int64     `json:"botId"`
	Text      string    `json:"text"`
	Handles   []string  `json:"handles,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
