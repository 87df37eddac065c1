package models

import "time"

// Bot is the platform identity an engine process operates as.
type Bot struct {
	ID          int64
	OwnerID     int64
	Name        string
	SessionPath string
	IsStarted   bool
	CreatedAt   time.Time
}

// OwnerConfig is the manager configuration shared by every bot of an owner.
type OwnerConfig struct {
	ID                 int64
	SendRatePerMinute  int
	AntiFloodMode      bool
	AntiFloodBatchSize int
}

// TickContext is resolved once per scheduler tick and passed to every pass.
type TickContext struct {
	RunID   string
	OwnerID int64
	BotID   int64
	Working bool
}
