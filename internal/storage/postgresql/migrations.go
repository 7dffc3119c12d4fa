package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/tern/v2/migrate"
)

func runMigrations(ctx context.Context, conn *pgxpool.Pool) error {
	poolConn, err := conn.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("error creating pool connection: %w", err)
	}
	defer poolConn.Release()

	m, err := migrate.NewMigrator(ctx, poolConn.Conn(), "hangpay_migrations")
	if err != nil {
		return fmt.Errorf("error migrations init: %w", err)
	}

	m.Migrations = []*migrate.Migration{
		{
			Sequence: 1,
			Name:     "init",
			UpSQL: `
			CREATE TABLE IF NOT EXISTS wallets (
					id BIGSERIAL PRIMARY KEY,
					owner_type VARCHAR(20) NOT NULL,
					owner_id BIGINT NOT NULL DEFAULT 0,
					balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
					currency VARCHAR(3) NOT NULL DEFAULT 'NGN',
					created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
					updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
					UNIQUE (owner_type, owner_id)
			);

			CREATE TABLE IF NOT EXISTS wallet_ledger (
					id BIGSERIAL PRIMARY KEY,
					wallet_id BIGINT NOT NULL REFERENCES wallets(id),
					entry_type VARCHAR(20) NOT NULL,
					direction VARCHAR(10) NOT NULL,
					amount BIGINT NOT NULL CHECK (amount > 0),
					balance_after BIGINT NOT NULL,
					owner_type VARCHAR(20) NOT NULL,
					owner_id BIGINT NOT NULL DEFAULT 0,
					metadata JSONB NOT NULL DEFAULT '{}',
					created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			);

			CREATE TABLE IF NOT EXISTS withdrawals (
					id BIGSERIAL PRIMARY KEY,
					wallet_id BIGINT NOT NULL REFERENCES wallets(id),
					owner_type VARCHAR(20) NOT NULL,
					owner_id BIGINT NOT NULL DEFAULT 0,
					user_id BIGINT NOT NULL,
					amount BIGINT NOT NULL,
					fee_amount BIGINT NOT NULL DEFAULT 0,
					payout_amount BIGINT NOT NULL,
					status VARCHAR(20) NOT NULL DEFAULT 'pending',
					payout_reference VARCHAR(64) UNIQUE NOT NULL,
					bank_account_id BIGINT NOT NULL,
					transfer_id BIGINT,
					transfer_status VARCHAR(32) NOT NULL DEFAULT '',
					transfer_confirmed BOOLEAN NOT NULL DEFAULT FALSE,
					failure_reason TEXT NOT NULL DEFAULT '',
					last_checked_at TIMESTAMP WITH TIME ZONE,
					created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
					updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			);

			CREATE TABLE IF NOT EXISTS bank_accounts (
					id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL,
					bank_code VARCHAR(10) NOT NULL,
					bank_name VARCHAR(255) NOT NULL,
					account_number VARCHAR(32) NOT NULL,
					account_name VARCHAR(255) NOT NULL,
					is_default BOOLEAN NOT NULL DEFAULT FALSE,
					created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			);

			CREATE TABLE IF NOT EXISTS events (
					id BIGSERIAL PRIMARY KEY,
					creator_id BIGINT NOT NULL,
					created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			);

			CREATE TABLE IF NOT EXISTS event_organizers (
					event_id BIGINT NOT NULL REFERENCES events(id),
					user_id BIGINT NOT NULL,
					accepted BOOLEAN NOT NULL DEFAULT FALSE,
					PRIMARY KEY (event_id, user_id)
			);

			CREATE TABLE IF NOT EXISTS groups (
					id BIGSERIAL PRIMARY KEY,
					creator_id BIGINT NOT NULL,
					created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			);

			CREATE TABLE IF NOT EXISTS group_members (
					group_id BIGINT NOT NULL REFERENCES groups(id),
					user_id BIGINT NOT NULL,
					role VARCHAR(20) NOT NULL DEFAULT 'member',
					PRIMARY KEY (group_id, user_id)
			);

			CREATE TABLE IF NOT EXISTS outbox_messages (
					id BIGSERIAL PRIMARY KEY,
					kind VARCHAR(64) NOT NULL,
					payload JSONB NOT NULL DEFAULT '{}',
					status VARCHAR(20) NOT NULL DEFAULT 'pending',
					attempts INTEGER NOT NULL DEFAULT 0,
					next_attempt_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
					created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
					sent_at TIMESTAMP WITH TIME ZONE
			);

			CREATE INDEX IF NOT EXISTS idx_wallet_ledger_wallet_id
			ON wallet_ledger (wallet_id, id);

			CREATE INDEX IF NOT EXISTS idx_withdrawals_user_created
			ON withdrawals (user_id, created_at);

			CREATE INDEX IF NOT EXISTS idx_withdrawals_status_created
			ON withdrawals (status, created_at);

			CREATE INDEX IF NOT EXISTS idx_outbox_status_next_attempt
			ON outbox_messages (status, next_attempt_at);

			CREATE INDEX IF NOT EXISTS idx_bank_accounts_user
			ON bank_accounts (user_id);

			`,
			DownSQL: `
			DROP INDEX IF EXISTS idx_bank_accounts_user;
			DROP INDEX IF EXISTS idx_outbox_status_next_attempt;
			DROP INDEX IF EXISTS idx_withdrawals_status_created;
			DROP INDEX IF EXISTS idx_withdrawals_user_created;
			DROP INDEX IF EXISTS idx_wallet_ledger_wallet_id;

			DROP TABLE IF EXISTS outbox_messages;
			DROP TABLE IF EXISTS group_members;
			DROP TABLE IF EXISTS groups;
			DROP TABLE IF EXISTS event_organizers;
			DROP TABLE IF EXISTS events;
			DROP TABLE IF EXISTS bank_accounts;
			DROP TABLE IF EXISTS withdrawals;
			DROP TABLE IF EXISTS wallet_ledger;
			DROP TABLE IF EXISTS wallets;
			`,
		},
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	return nil
}
