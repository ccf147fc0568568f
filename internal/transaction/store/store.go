package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"budget/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = ` id, user_id, title, amount, type, category, created_at `

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr, categoryStr string

	if err := s.Scan(
		&tx.ID, &tx.UserID, &tx.Title, &tx.Amount, &typeStr, &categoryStr, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.Category = transaction.Category(categoryStr)

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, title, amount, type, category, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.UserID,
		tx.Title,
		tx.Amount,
		tx.Type,
		tx.Category,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT` + selectTransactionColumns + `
		FROM transactions
		WHERE id = $1 AND user_id = $2`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, ownerID uuid.UUID) ([]*transaction.Transaction, error) {
	query := `SELECT` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET title = $1, amount = $2, type = $3, category = $4
		WHERE id = $5 AND user_id = $6
	`

	res, err := s.db.ExecContext(ctx, query,
		tx.Title,
		tx.Amount,
		tx.Type,
		tx.Category,
		tx.ID,
		tx.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	if affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `
		DELETE FROM transactions
		WHERE id = $1 AND user_id = $2
	`

	res, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

// SummarizeMonth computes the per-type and per-category amount sums for
// the owner's transactions created within the given month. Both group
// queries run inside one read-only transaction so they see a single
// consistent snapshot of the store.
func (s *Store) SummarizeMonth(ctx context.Context, ownerID uuid.UUID, year int, month time.Month) (*transaction.MonthlySummary, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	dbTx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("beginning summary tx: %w", err)
	}
	defer dbTx.Rollback()

	byType, err := sumGroupedBy(ctx, dbTx, "type", ownerID, start, end)
	if err != nil {
		return nil, err
	}

	byCategory, err := sumGroupedBy(ctx, dbTx, "category", ownerID, start, end)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing summary tx: %w", err)
	}

	summary := &transaction.MonthlySummary{
		ByType:     make(map[transaction.Type]decimal.Decimal, len(byType)),
		ByCategory: make(map[transaction.Category]decimal.Decimal, len(byCategory)),
	}

	for key, sum := range byType {
		summary.ByType[transaction.Type(key)] = sum
	}

	for key, sum := range byCategory {
		summary.ByCategory[transaction.Category(key)] = sum
	}

	return summary, nil
}

// sumGroupedBy runs one GROUP BY sum over the owner's transactions in
// [start, end). column is one of the fixed identifiers "type" or
// "category", never user input.
func sumGroupedBy(ctx context.Context, dbTx *sql.Tx, column string, ownerID uuid.UUID, start, end time.Time) (map[string]decimal.Decimal, error) {
	query := fmt.Sprintf(`
		SELECT %s, SUM(amount)
		FROM transactions
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		GROUP BY %s
	`, column, column)

	rows, err := dbTx.QueryContext(ctx, query, ownerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("summing by %s: %w", column, err)
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal)

	for rows.Next() {
		var key string

		var sum decimal.Decimal

		if err := rows.Scan(&key, &sum); err != nil {
			return nil, fmt.Errorf("scanning %s sum: %w", column, err)
		}

		sums[key] = sum
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s sums: %w", column, err)
	}

	return sums, nil
}
