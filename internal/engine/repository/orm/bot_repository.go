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

type BotRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewBotRepository(db *database.PostgresDB) *BotRepository {
	return &BotRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *BotRepository) FindBySession(ctx context.Context, sessionPath string) (*models.Bot, error) {
	bot, err := r.findOne(ctx, sq.Eq{"session_path": sessionPath}, "поиск бота по сессии")
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &customerrors.ErrBotNotFound{SessionPath: sessionPath}
	}

	return bot, err
}

func (r *BotRepository) FindByID(ctx context.Context, botID int64) (*models.Bot, error) {
	bot, err := r.findOne(ctx, sq.Eq{"id": botID}, "поиск бота по ID")
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &customerrors.ErrBotNotFound{BotID: botID}
	}

	return bot, err
}

func (r *BotRepository) findOne(ctx context.Context, where sq.Eq, operation string) (*models.Bot, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Select("id", "owner_id", "COALESCE(name, '')", "session_path", "is_started", "created_at").
		From("bots").
		Where(where).
		ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: operation, Cause: err}
	}

	bot := &models.Bot{}

	err = querier.QueryRow(ctx, query, args...).
		Scan(&bot.ID, &bot.OwnerID, &bot.Name, &bot.SessionPath, &bot.IsStarted, &bot.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}

		return nil, &customerrors.ErrSQLExecution{Operation: operation, Cause: err}
	}

	return bot, nil
}

func (r *BotRepository) SetStarted(ctx context.Context, botID int64, started bool) error {
	return r.update(ctx, botID, "is_started", started, "изменение флага работы бота")
}

func (r *BotRepository) UpdateName(ctx context.Context, botID int64, name string) error {
	return r.update(ctx, botID, "name", name, "обновление имени бота")
}

func (r *BotRepository) update(ctx context.Context, botID int64, column string, value any, operation string) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Update("bots").
		Set(column, value).
		Where(sq.Eq{"id": botID}).
		ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: operation, Cause: err}
	}

	result, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: operation, Cause: err}
	}

	if result.RowsAffected() == 0 {
		return &customerrors.ErrBotNotFound{BotID: botID}
	}

	return nil
}
