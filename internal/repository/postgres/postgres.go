package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/avito-tech/go-transaction-manager/trm/v2/settings"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Deymos01/pr-reviewer-service/internal/config"
)

const uniqueViolation = "23505"

type Storage struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func New(ctx context.Context, dbConfig config.PostgresConfig) (*Storage, error) {
	const op = "repository.postgres.New"

	db, err := sqlx.ConnectContext(ctx, "postgres", dbConfig.DSN())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewWithDB(db), nil
}

func NewWithDB(db *sqlx.DB) *Storage {
	return &Storage{db: db, getter: trmsqlx.DefaultCtxGetter}
}

// TxManager returns a manager whose transactions are visible to this storage through ctx.
func (s *Storage) TxManager() *manager.Manager {
	return manager.Must(trmsqlx.NewDefaultFactory(s.db))
}

// SnapshotTxManager runs read-only REPEATABLE READ transactions, so every
// query inside one Do sees the same snapshot.
func (s *Storage) SnapshotTxManager() *manager.Manager {
	return manager.Must(
		trmsqlx.NewDefaultFactory(s.db),
		manager.WithSettings(trmsqlx.MustSettings(
			settings.Must(),
			trmsqlx.WithTxOptions(&sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}),
		)),
	)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// conn returns the transaction bound to ctx, or the pool.
func (s *Storage) conn(ctx context.Context) trmsqlx.Tr {
	return s.getter.DefaultTrOrDB(ctx, s.db)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
