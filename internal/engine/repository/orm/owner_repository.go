package orm

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/matthew11k/outreach/internal/database"
	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/pkg/txs"
)

type OwnerRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewOwnerRepository(db *database.PostgresDB) *OwnerRepository {
	return &OwnerRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *OwnerRepository) FindByID(ctx context.Context, ownerID int64) (*models.OwnerConfig, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Select("id", "send_rate_per_minute", "anti_flood_mode", "anti_flood_batch_size").
		From("owners").
		Where(sq.Eq{"id": ownerID}).
		ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "поиск владельца", Cause: err}
	}

	owner := &models.OwnerConfig{}

	err = querier.QueryRow(ctx, query, args...).
		Scan(&owner.ID, &owner.SendRatePerMinute, &owner.AntiFloodMode, &owner.AntiFloodBatchSize)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrOwnerNotFound{OwnerID: ownerID}
		}

		return nil, &customerrors.ErrSQLExecution{Operation: "поиск владельца", Cause: err}
	}

	return owner, nil
}

func (r *OwnerRepository) SetAntiFloodMode(ctx context.Context, ownerID int64, enabled bool) error {
	return r.update(ctx, ownerID, "anti_flood_mode", enabled, "изменение режима антифлуда")
}

func (r *OwnerRepository) SetAntiFloodBatchSize(ctx context.Context, ownerID int64, size int) error {
	return r.update(ctx, ownerID, "anti_flood_batch_size", size, "изменение размера пачки антифлуда")
}

func (r *OwnerRepository) SetSendRate(ctx context.Context, ownerID int64, perMinute int) error {
	return r.update(ctx, ownerID, "send_rate_per_minute", perMinute, "изменение лимита отправки")
}

func (r *OwnerRepository) update(ctx context.Context, ownerID int64, column string, value any, operation string) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Update("owners").
		Set(column, value).
		Where(sq.Eq{"id": ownerID}).
		ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: operation, Cause: err}
	}

	result, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: operation, Cause: err}
	}

	if result.RowsAffected() == 0 {
		return &customerrors.ErrOwnerNotFound{OwnerID: ownerID}
	}

	return nil
}
