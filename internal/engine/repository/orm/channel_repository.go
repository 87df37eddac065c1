package orm

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/matthew11k/outreach/internal/database"
	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/pkg/txs"
)

type ChannelRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewChannelRepository(db *database.PostgresDB) *ChannelRepository {
	return &ChannelRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListByOwner returns channels in id order so every pass walks them the same way.
func (r *ChannelRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.MonitoredChannel, error) {
	return r.list(ctx, sq.Eq{"owner_id": ownerID}, "получение каналов владельца")
}

func (r *ChannelRepository) ListWithoutTitle(ctx context.Context, ownerID int64) ([]*models.MonitoredChannel, error) {
	return r.list(ctx, sq.And{sq.Eq{"owner_id": ownerID}, sq.Eq{"title": nil}}, "получение каналов без названия")
}

func (r *ChannelRepository) list(ctx context.Context, where sq.Sqlizer, operation string) ([]*models.MonitoredChannel, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Select("id", "owner_id", "channel_ref", "title", "created_at").
		From("monitored_channels").
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: operation, Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: operation, Cause: err}
	}
	defer rows.Close()

	channels := make([]*models.MonitoredChannel, 0)

	for rows.Next() {
		channel := &models.MonitoredChannel{}
		if err := rows.Scan(&channel.ID, &channel.OwnerID, &channel.ChannelRef, &channel.Title, &channel.CreatedAt); err != nil {
			return nil, &customerrors.ErrSQLScan{Entity: "канал", Cause: err}
		}

		channels = append(channels, channel)
	}

	if err := rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: operation, Cause: err}
	}

	return channels, nil
}

func (r *ChannelRepository) Add(ctx context.Context, ownerID int64, channelRef string) (bool, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Insert("monitored_channels").
		Columns("owner_id", "channel_ref").
		Values(ownerID, channelRef).
		Suffix("ON CONFLICT (owner_id, channel_ref) DO NOTHING").
		ToSql()
	if err != nil {
		return false, &customerrors.ErrBuildSQLQuery{Operation: "добавление канала", Cause: err}
	}

	result, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return false, &customerrors.ErrSQLExecution{Operation: "добавление канала", Cause: err}
	}

	return result.RowsAffected() > 0, nil
}

func (r *ChannelRepository) Remove(ctx context.Context, ownerID int64, channelRef string) (bool, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Delete("monitored_channels").
		Where(sq.Eq{"owner_id": ownerID, "channel_ref": channelRef}).
		ToSql()
	if err != nil {
		return false, &customerrors.ErrBuildSQLQuery{Operation: "удаление канала", Cause: err}
	}

	result, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return false, &customerrors.ErrSQLExecution{Operation: "удаление канала", Cause: err}
	}

	return result.RowsAffected() > 0, nil
}

func (r *ChannelRepository) UpdateTitle(ctx context.Context, channelID int64, title string) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Update("monitored_channels").
		Set("title", title).
		Where(sq.Eq{"id": channelID}).
		ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "обновление названия канала", Cause: err}
	}

	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return &customerrors.ErrSQLExecution{Operation: "обновление названия канала", Cause: err}
	}

	return nil
}
