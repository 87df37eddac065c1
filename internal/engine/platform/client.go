package platform

import (
	"context"
	"errors"
	"net"

	"github.com/matthew11k/outreach/internal/domain/models"
)

// Client is the messaging platform as the engine consumes it.
type Client interface {
	ResolveEntity(ctx context.Context, ref string) (*models.Entity, error)
	RefreshDialogs(ctx context.Context) error
	FetchChannelMetadata(ctx context.Context, entity *models.Entity) (*models.ChannelMetadata, error)
	FetchDelta(ctx context.Context, entity *models.Entity, position int64, window models.DeltaRange, limit int) (*models.Delta, error)
	FetchHistory(ctx context.Context, entity *models.Entity, limit int) ([]models.Message, error)
	SendMessage(ctx context.Context, peer, text string) error
	ForwardMessage(ctx context.Context, peer string, fromChatID, messageID int64) error
	GetSelf(ctx context.Context) (*models.Self, error)
	ListDialogFilters(ctx context.Context) ([]models.DialogFilter, error)
	BlockUser(ctx context.Context, peer string) error
	UnblockUser(ctx context.Context, peer string) error
}

var (
	ErrForbidden   = errors.New("доступ к объекту запрещен")
	ErrRateLimited = errors.New("превышен лимит запросов платформы")
	ErrConnection  = errors.New("нет соединения с платформой")
	ErrNotFound    = errors.New("объект не найден")
)

// Classify maps a provider error onto a status kind.
func Classify(err error) models.StatusKind {
	var netErr net.Error

	switch {
	case errors.Is(err, ErrForbidden):
		return models.StatusForbidden
	case errors.Is(err, ErrRateLimited):
		return models.StatusRateLimited
	case errors.Is(err, ErrNotFound):
		return models.StatusNotFound
	case errors.Is(err, ErrConnection),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr):
		return models.StatusConnection
	default:
		return models.StatusUnknown
	}
}

func NewStatus(err error, channelRef, peer string) *models.Status {
	return &models.Status{
		Kind:       Classify(err),
		ChannelRef: channelRef,
		Peer:       peer,
		Cause:      err,
	}
}
