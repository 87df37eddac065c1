package txs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager scopes a component pass to one read-committed transaction.
type TxManager struct {
	db     *pgxpool.Pool
	opts   pgx.TxOptions
	logger *slog.Logger
}

func NewTxManager(db *pgxpool.Pool, logger *slog.Logger) *TxManager {
	return &TxManager{
		db:     db,
		opts:   pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
		logger: logger,
	}
}

// WithTransaction runs txFunc inside a transaction. A call made while ctx
// already carries one joins it, so the outermost caller owns commit and rollback.
func (t *TxManager) WithTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return txFunc(ctx)
	}

	tx, err := t.db.BeginTx(ctx, t.opts)
	if err != nil {
		t.logger.Error("Не удалось открыть транзакцию", "error", err)
		return fmt.Errorf("ошибка при начале транзакции: %w", err)
	}

	// rollback должен пройти даже после отмены ctx прохода
	cleanupCtx := context.WithoutCancel(ctx)

	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("Паника внутри транзакции, откатываем", "panic", r)

			_ = tx.Rollback(cleanupCtx)

			panic(r)
		}
	}()

	if err := txFunc(withTx(ctx, tx)); err != nil {
		t.logger.Warn("Транзакция откатывается", "error", err)

		if rbErr := tx.Rollback(cleanupCtx); rbErr != nil {
			t.logger.Error("Не удалось откатить транзакцию", "error", rbErr)
			return fmt.Errorf("ошибка в транзакции: %w, ошибка rollback: %v", err, rbErr)
		}

		return err
	}

	if err := tx.Commit(ctx); err != nil {
		t.logger.Error("Не удалось зафиксировать транзакцию", "error", err)
		return fmt.Errorf("ошибка при commit транзакции: %w", err)
	}

	return nil
}
