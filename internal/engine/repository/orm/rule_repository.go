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

type ruleTable struct {
	table  string
	column string
}

var ruleTables = map[models.RuleKind]ruleTable{
	models.RuleKeyword: {table: "keywords", column: "word"},
	models.RuleExclude: {table: "excludes", column: "word"},
	models.RuleAnswer:  {table: "answer_templates", column: "sentence"},
}

type RuleRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewRuleRepository(db *database.PostgresDB) *RuleRepository {
	return &RuleRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *RuleRepository) tableFor(kind models.RuleKind) (ruleTable, error) {
	t, ok := ruleTables[kind]
	if !ok {
		return ruleTable{}, &customerrors.ErrInvalidArgument{Message: "неизвестный тип правила: " + string(kind)}
	}

	return t, nil
}

func (r *RuleRepository) List(ctx context.Context, kind models.RuleKind, ownerID int64) ([]string, error) {
	t, err := r.tableFor(kind)
	if err != nil {
		return nil, err
	}

	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Select(t.column).
		From(t.table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "получение правил " + t.table, Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "получение правил " + t.table, Cause: err}
	}
	defer rows.Close()

	values := make([]string, 0)

	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, &customerrors.ErrSQLScan{Entity: t.table, Cause: err}
		}

		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "получение правил " + t.table, Cause: err}
	}

	return values, nil
}

func (r *RuleRepository) Add(ctx context.Context, kind models.RuleKind, ownerID int64, values []string) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}

	t, err := r.tableFor(kind)
	if err != nil {
		return 0, err
	}

	insert := r.sq.Insert(t.table).Columns("owner_id", t.column)
	for _, v := range lo.Uniq(values) {
		insert = insert.Values(ownerID, v)
	}

	query, args, err := insert.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: "добавление правил " + t.table, Cause: err}
	}

	result, err := txs.GetQuerier(ctx, r.db.Pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "добавление правил " + t.table, Cause: err}
	}

	return int(result.RowsAffected()), nil
}

func (r *RuleRepository) Remove(ctx context.Context, kind models.RuleKind, ownerID int64, values []string) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}

	t, err := r.tableFor(kind)
	if err != nil {
		return 0, err
	}

	query, args, err := r.sq.Delete(t.table).
		Where(sq.Eq{"owner_id": ownerID, t.column: values}).
		ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: "удаление правил " + t.table, Cause: err}
	}

	result, err := txs.GetQuerier(ctx, r.db.Pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "удаление правил " + t.table, Cause: err}
	}

	return int(result.RowsAffected()), nil
}
