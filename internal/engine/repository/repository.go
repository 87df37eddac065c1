package repository

import (
	"context"

	"github.com/matthew11k/outreach/internal/domain/models"
)

type BotRepository interface {
	FindBySession(ctx context.Context, sessionPath string) (*models.Bot, error)
	FindByID(ctx context.Context, botID int64) (*models.Bot, error)
	SetStarted(ctx context.Context, botID int64, started bool) error
	UpdateName(ctx context.Context, botID int64, name string) error
}

type OwnerRepository interface {
	FindByID(ctx context.Context, ownerID int64) (*models.OwnerConfig, error)
	SetAntiFloodMode(ctx context.Context, ownerID int64, enabled bool) error
	SetAntiFloodBatchSize(ctx context.Context, ownerID int64, size int) error
	SetSendRate(ctx context.Context, ownerID int64, perMinute int) error
}

type ChannelRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.MonitoredChannel, error)
	ListWithoutTitle(ctx context.Context, ownerID int64) ([]*models.MonitoredChannel, error)
	Add(ctx context.Context, ownerID int64, channelRef string) (bool, error)
	Remove(ctx context.Context, ownerID int64, channelRef string) (bool, error)
	UpdateTitle(ctx context.Context, channelID int64, title string) error
}

// RuleRepository stores keywords, excludes and answer templates.
type RuleRepository interface {
	List(ctx context.Context, kind models.RuleKind, ownerID int64) ([]string, error)
	Add(ctx context.Context, kind models.RuleKind, ownerID int64, values []string) (int, error)
	Remove(ctx context.Context, kind models.RuleKind, ownerID int64, values []string) (int, error)
}

type BanRepository interface {
	List(ctx context.Context, ownerID int64) ([]models.BannedHandle, error)
	ListUnblocked(ctx context.Context, ownerID int64) ([]models.BannedHandle, error)
	Add(ctx context.Context, ownerID int64, handles []string) (int, error)
	Remove(ctx context.Context, ownerID int64, handles []string) (int, error)
	SetBlocked(ctx context.Context, ownerID int64, handle string, blocked bool) error
}

type CandidateRepository interface {
	Exists(ctx context.Context, ownerID int64, externalUserID string) (bool, error)
	// Insert returns false when the (owner, external user) pair already exists.
	Insert(ctx context.Context, candidate *models.Candidate) (bool, error)
	ListPending(ctx context.Context, ownerID int64, limit int) ([]*models.Candidate, error)
	MarkSent(ctx context.Context, ids []int64, batched bool) error
	MarkUndeliverable(ctx context.Context, id int64, meta []byte) error
	ResetBatched(ctx context.Context, ownerID int64, externalUserIDs []string) (int64, error)
}

type JobRepository interface {
	Enqueue(ctx context.Context, job *models.Job) (int64, error)
	ListPending(ctx context.Context, ownerID int64) ([]*models.Job, error)
	// ExistsPending reports an unprocessed job of the kind for the channel ref.
	ExistsPending(ctx context.Context, ownerID int64, kind models.JobKind, channelRef string) (bool, error)
	FindByID(ctx context.Context, ownerID, jobID int64) (*models.Job, error)
	SetResult(ctx context.Context, jobID int64, result []byte) error
	Delete(ctx context.Context, jobID int64) error
}
