package orm

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/samber/lo"

	"github.com/matthew11k/outreach/internal/database"
	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/pkg/txs"
)

type BanRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewBanRepository(db *database.PostgresDB) *BanRepository {
	return &BanRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *BanRepository) List(ctx context.Context, ownerID int64) ([]models.BannedHandle, error) {
	return r.list(ctx, sq.Eq{"owner_id": ownerID}, "получение списка банов")
}

func (r *BanRepository) ListUnblocked(ctx context.Context, ownerID int64) ([]models.BannedHandle, error) {
	return r.list(ctx, sq.Eq{"owner_id": ownerID, "blocked": false}, "получение незаблокированных банов")
}

func (r *BanRepository) list(ctx context.Context, where sq.Eq, operation string) ([]models.BannedHandle, error) {
	query, args, err := r.sq.Select("owner_id", "handle", "blocked").
		From("banned_handles").
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: operation, Cause: err}
	}

	rows, err := txs.GetQuerier(ctx, r.db.Pool).Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: operation, Cause: err}
	}
	defer rows.Close()

	bans := make([]models.BannedHandle, 0)

	for rows.Next() {
		var ban models.BannedHandle
		if err := rows.Scan(&ban.OwnerID, &ban.Handle, &ban.Blocked); err != nil {
			return nil, &customerrors.ErrSQLScan{Entity: "бан", Cause: err}
		}

		bans = append(bans, ban)
	}

	if err := rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: operation, Cause: err}
	}

	return bans, nil
}

func (r *BanRepository) Add(ctx context.Context, ownerID int64, handles []string) (int, error) {
	if len(handles) == 0 {
		return 0, nil
	}

	insert := r.sq.Insert("banned_handles").Columns("owner_id", "handle")
	for _, h := range lo.Uniq(handles) {
		insert = insert.Values(ownerID, h)
	}

	query, args, err := insert.Suffix("ON CONFLICT (owner_id, handle) DO NOTHING").ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: "добавление банов", Cause: err}
	}

	result, err := txs.GetQuerier(ctx, r.db.Pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "добавление банов", Cause: err}
	}

	return int(result.RowsAffected()), nil
}

func (r *BanRepository) Remove(ctx context.Context, ownerID int64, handles []string) (int, error) {
	if len(handles) == 0 {
		return 0, nil
	}

	query, args, err := r.sq.Delete("banned_handles").
		Where(sq.Eq{"owner_id": ownerID, "handle": handles}).
		ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: "удаление банов", Cause: err}
	}

	result, err := txs.GetQuerier(ctx, r.db.Pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "удаление банов", Cause: err}
	}

	return int(result.RowsAffected()), nil
}

func (r *BanRepository) SetBlocked(ctx context.Context, ownerID int64, handle string, blocked bool) error {
	query, args, err := r.sq.Update("banned_handles").
		Set("blocked", blocked).
		Where(sq.Eq{"owner_id": ownerID, "handle": handle}).
		ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "изменение блокировки", Cause: err}
	}

	if _, err := txs.GetQuerier(ctx, r.db.Pool).Exec(ctx, query, args...); err != nil {
		return &customerrors.ErrSQLExecution{Operation: "изменение блокировки", Cause: err}
	}

	return nil
}
