package orm

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/matthew11k/outreach/internal/database"
	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/pkg/txs"
)

type CandidateRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewCandidateRepository(db *database.PostgresDB) *CandidateRepository {
	return &CandidateRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *CandidateRepository) Exists(ctx context.Context, ownerID int64, externalUserID string) (bool, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Select("1").
		From("candidates").
		Where(sq.Eq{"owner_id": ownerID, "external_user_id": externalUserID}).
		ToSql()
	if err != nil {
		return false, &customerrors.ErrBuildSQLQuery{Operation: "проверка существования кандидата", Cause: err}
	}

	var exists bool

	err = querier.QueryRow(ctx, "SELECT EXISTS("+query+")", args...).Scan(&exists)
	if err != nil {
		return false, &customerrors.ErrSQLExecution{Operation: "проверка существования кандидата", Cause: err}
	}

	return exists, nil
}

// Insert stores a candidate unless one with the same external user id exists.
// The unique constraint settles races between concurrent sync passes.
func (r *CandidateRepository) Insert(ctx context.Context, candidate *models.Candidate) (bool, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Insert("candidates").
		Columns("owner_id", "external_user_id", "handle", "source_message_id", "source_chat_id",
			"context_text", "accepted", "decision_meta").
		Values(candidate.OwnerID, candidate.ExternalUserID, candidate.Handle, candidate.SourceMessageID,
			candidate.SourceChatID, candidate.ContextText, candidate.Accepted, candidate.DecisionMeta).
		Suffix("ON CONFLICT (owner_id, external_user_id) DO NOTHING RETURNING id, created_at").
		ToSql()
	if err != nil {
		return false, &customerrors.ErrBuildSQLQuery{Operation: "добавление кандидата", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return false, &customerrors.ErrSQLExecution{Operation: "добавление кандидата", Cause: err}
	}
	defer rows.Close()

	inserted := false

	for rows.Next() {
		if err := rows.Scan(&candidate.ID, &candidate.CreatedAt); err != nil {
			return false, &customerrors.ErrSQLScan{Entity: "кандидат", Cause: err}
		}

		inserted = true
	}

	if err := rows.Err(); err != nil {
		return false, &customerrors.ErrSQLExecution{Operation: "добавление кандидата", Cause: err}
	}

	return inserted, nil
}

// ListPending returns accepted, unsent candidates oldest first.
func (r *CandidateRepository) ListPending(ctx context.Context, ownerID int64, limit int) ([]*models.Candidate, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	builder := r.sq.Select("id", "owner_id", "external_user_id", "COALESCE(handle, '')", "source_message_id",
		"source_chat_id", "context_text", "accepted", "decision_meta", "sent", "batched", "created_at").
		From("candidates").
		Where(sq.Eq{"owner_id": ownerID, "sent": false, "accepted": true}).
		OrderBy("id")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "получение ожидающих кандидатов", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "получение ожидающих кандидатов", Cause: err}
	}
	defer rows.Close()

	candidates := make([]*models.Candidate, 0)

	for rows.Next() {
		c := &models.Candidate{}

		err := rows.Scan(&c.ID, &c.OwnerID, &c.ExternalUserID, &c.Handle, &c.SourceMessageID, &c.SourceChatID,
			&c.ContextText, &c.Accepted, &c.DecisionMeta, &c.Sent, &c.Batched, &c.CreatedAt)
		if err != nil {
			return nil, &customerrors.ErrSQLScan{Entity: "кандидат", Cause: err}
		}

		candidates = append(candidates, c)
	}

	if err := rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "получение ожидающих кандидатов", Cause: err}
	}

	return candidates, nil
}

func (r *CandidateRepository) MarkSent(ctx context.Context, ids []int64, batched bool) error {
	if len(ids) == 0 {
		return nil
	}

	update := r.sq.Update("candidates").Set("sent", true)
	if batched {
		update = update.Set("batched", true)
	}

	query, args, err := update.Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "отметка отправленных кандидатов", Cause: err}
	}

	if _, err := txs.GetQuerier(ctx, r.db.Pool).Exec(ctx, query, args...); err != nil {
		return &customerrors.ErrSQLExecution{Operation: "отметка отправленных кандидатов", Cause: err}
	}

	return nil
}

// MarkUndeliverable takes a candidate out of the send queue and records why.
func (r *CandidateRepository) MarkUndeliverable(ctx context.Context, id int64, meta []byte) error {
	query, args, err := r.sq.Update("candidates").
		Set("accepted", false).
		Set("decision_meta", meta).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "отметка недоставляемого кандидата", Cause: err}
	}

	if _, err := txs.GetQuerier(ctx, r.db.Pool).Exec(ctx, query, args...); err != nil {
		return &customerrors.ErrSQLExecution{Operation: "отметка недоставляемого кандидата", Cause: err}
	}

	return nil
}

// ResetBatched returns batched candidates to the send queue. Candidates are
// matched by external user id. An empty list resets every batched candidate
// of the owner.
func (r *CandidateRepository) ResetBatched(ctx context.Context, ownerID int64, externalUserIDs []string) (int64, error) {
	where := sq.Eq{"owner_id": ownerID, "batched": true}
	if len(externalUserIDs) > 0 {
		where["external_user_id"] = externalUserIDs
	}

	query, args, err := r.sq.Update("candidates").
		Set("sent", false).
		Set("batched", false).
		Where(where).
		ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: "сброс пакетной отправки", Cause: err}
	}

	result, err := txs.GetQuerier(ctx, r.db.Pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "сброс пакетной отправки", Cause: err}
	}

	return result.RowsAffected(), nil
}
