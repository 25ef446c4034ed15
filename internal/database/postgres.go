package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
)

// NewPostgresConnection opens a postgres connection pool and verifies it
func NewPostgresConnection(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Bootstrap creates the application tables if they do not exist
func Bootstrap(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY,
			group_id TEXT NOT NULL,
			payer_id TEXT NOT NULL,
			description TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			split_kind TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS expense_shares (
			id BIGSERIAL PRIMARY KEY,
			expense_id UUID NOT NULL REFERENCES expenses(id) ON DELETE CASCADE,
			borrower_id TEXT NOT NULL,
			payer_id TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expense_shares_expense ON expense_shares(expense_id);

		CREATE TABLE IF NOT EXISTS settlements (
			id BIGSERIAL PRIMARY KEY,
			group_id TEXT NOT NULL,
			debtor_id TEXT NOT NULL,
			creditor_id TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			computed_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_settlements_group ON settlements(group_id);
		CREATE INDEX IF NOT EXISTS idx_expenses_group ON expenses(group_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}
