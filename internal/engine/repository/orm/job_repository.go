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

var jobColumns = []string{"id", "owner_id", "kind", "metadata", "result", "created_at"}

type JobRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewJobRepository(db *database.PostgresDB) *JobRepository {
	return &JobRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *JobRepository) Enqueue(ctx context.Context, job *models.Job) (int64, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Insert("jobs").
		Columns("owner_id", "kind", "metadata").
		Values(job.OwnerID, string(job.Kind), job.Metadata).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: "постановка задачи", Cause: err}
	}

	if err := querier.QueryRow(ctx, query, args...).Scan(&job.ID, &job.CreatedAt); err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "постановка задачи", Cause: err}
	}

	return job.ID, nil
}

// ListPending returns jobs without a result in creation order.
func (r *JobRepository) ListPending(ctx context.Context, ownerID int64) ([]*models.Job, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Select(jobColumns...).
		From("jobs").
		Where(sq.Eq{"owner_id": ownerID, "result": nil}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "получение задач", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "получение задач", Cause: err}
	}
	defer rows.Close()

	jobs := make([]*models.Job, 0)

	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "получение задач", Cause: err}
	}

	return jobs, nil
}

func (r *JobRepository) ExistsPending(ctx context.Context, ownerID int64, kind models.JobKind, channelRef string) (bool, error) {
	query, args, err := r.sq.Select("1").
		From("jobs").
		Where(sq.Eq{"owner_id": ownerID, "kind": string(kind), "result": nil}).
		Where(sq.Expr("COALESCE(convert_from(metadata, 'UTF8')::jsonb ->> 'channel_ref', '') = ?", channelRef)).
		ToSql()
	if err != nil {
		return false, &customerrors.ErrBuildSQLQuery{Operation: "проверка ожидающей задачи", Cause: err}
	}

	var exists bool

	err = txs.GetQuerier(ctx, r.db.Pool).QueryRow(ctx, "SELECT EXISTS("+query+")", args...).Scan(&exists)
	if err != nil {
		return false, &customerrors.ErrSQLExecution{Operation: "проверка ожидающей задачи", Cause: err}
	}

	return exists, nil
}

func (r *JobRepository) FindByID(ctx context.Context, ownerID, jobID int64) (*models.Job, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Select(jobColumns...).
		From("jobs").
		Where(sq.Eq{"id": jobID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "поиск задачи", Cause: err}
	}

	job, err := scanJob(querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrJobNotFound{JobID: jobID}
		}

		return nil, err
	}

	return job, nil
}

func (r *JobRepository) SetResult(ctx context.Context, jobID int64, result []byte) error {
	if result == nil {
		result = []byte{}
	}

	query, args, err := r.sq.Update("jobs").
		Set("result", result).
		Where(sq.Eq{"id": jobID}).
		ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "запись результата задачи", Cause: err}
	}

	res, err := txs.GetQuerier(ctx, r.db.Pool).Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "запись результата задачи", Cause: err}
	}

	if res.RowsAffected() == 0 {
		return &customerrors.ErrJobNotFound{JobID: jobID}
	}

	return nil
}

func (r *JobRepository) Delete(ctx context.Context, jobID int64) error {
	query, args, err := r.sq.Delete("jobs").Where(sq.Eq{"id": jobID}).ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "удаление задачи", Cause: err}
	}

	if _, err := txs.GetQuerier(ctx, r.db.Pool).Exec(ctx, query, args...); err != nil {
		return &customerrors.ErrSQLExecution{Operation: "удаление задачи", Cause: err}
	}

	return nil
}

func scanJob(row pgx.Row) (*models.Job, error) {
	job := &models.Job{}

	var kind string

	if err := row.Scan(&job.ID, &job.OwnerID, &kind, &job.Metadata, &job.Result, &job.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}

		return nil, &customerrors.ErrSQLScan{Entity: "задача", Cause: err}
	}

	job.Kind = models.JobKind(kind)

	return job, nil
}
