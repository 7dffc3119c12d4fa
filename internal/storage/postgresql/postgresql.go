package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hangpay/internal/utils/retry"
)

type baseRepo struct {
	db      *pgxpool.Pool
	retrier *retry.Retrier
}

// Repositories bundles every postgres-backed store over one shared pool.
type Repositories struct {
	DB *pgxpool.Pool

	Health       *HealthRepo
	Wallets      *WalletsRepo
	Withdrawals  *WithdrawalsRepo
	BankAccounts *BankAccountsRepo
	Events       *EventsRepo
	Groups       *GroupsRepo
	Outbox       *OutboxRepo
}

func NewRepositories(ctx context.Context, dbDSN string) (*Repositories, error) {
	db, err := pgxpool.New(ctx, dbDSN)
	if err != nil {
		return nil, fmt.Errorf("error creating pgxpool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	isRetryable := func(err error) bool {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return pgerrcode.IsConnectionException(pgErr.Code) ||
				pgerrcode.IsOperatorIntervention(pgErr.Code)
		}

		var connErr *pgconn.ConnectError
		return errors.As(err, &connErr)
	}

	base := baseRepo{
		db:      db,
		retrier: retry.New(isRetryable),
	}

	return &Repositories{
		DB:           db,
		Health:       &HealthRepo{base},
		Wallets:      &WalletsRepo{base},
		Withdrawals:  &WithdrawalsRepo{base},
		BankAccounts: &BankAccountsRepo{base},
		Events:       &EventsRepo{base},
		Groups:       &GroupsRepo{base},
		Outbox:       &OutboxRepo{base},
	}, nil
}

func (r *Repositories) Close() {
	r.DB.Close()
}
