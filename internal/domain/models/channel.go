package models

import "time"

type MonitoredChannel struct {
	ID         int64
	OwnerID    int64
	ChannelRef string
	Title      *string
	CreatedAt  time.Time
}
