package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/expenso/expenso-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = "id, user_id, type, amount::text, category, transaction_date, description, created_at, updated_at"

// Create creates a new transaction
func (r *TransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	row := r.pool.QueryRow(context.Background(),
		"INSERT INTO transactions (user_id, type, amount, category, transaction_date, description) VALUES ($1, $2, $3, $4, $5, $6) RETURNING "+transactionColumns,
		pgtype.UUID{Bytes: transaction.UserID, Valid: true},
		string(transaction.Type),
		transaction.Amount.String(),
		transaction.Category,
		pgtype.Date{Time: transaction.TransactionDate, Valid: true},
		transaction.Description)
	return scanTransaction(row)
}

// GetByID retrieves a transaction by its ID. Ownership is checked by the
// service, not filtered here.
func (r *TransactionRepository) GetByID(id int32) (*domain.Transaction, error) {
	row := r.pool.QueryRow(context.Background(),
		"SELECT "+transactionColumns+" FROM transactions WHERE id = $1", id)
	transaction, err := scanTransaction(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// GetAllByUser retrieves the user's transactions with optional filters
func (r *TransactionRepository) GetAllByUser(userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString("SELECT " + transactionColumns + " FROM transactions WHERE user_id = $1")
	args := []interface{}{pgtype.UUID{Bytes: userID, Valid: true}}

	if filters != nil {
		if filters.Type != nil {
			args = append(args, string(*filters.Type))
			fmt.Fprintf(&sb, " AND type = $%d", len(args))
		}
		if filters.Category != nil && *filters.Category != "" && *filters.Category != "All" {
			args = append(args, *filters.Category)
			fmt.Fprintf(&sb, " AND category = $%d", len(args))
		}
		if filters.StartDate != nil {
			args = append(args, pgtype.Date{Time: *filters.StartDate, Valid: true})
			fmt.Fprintf(&sb, " AND transaction_date >= $%d", len(args))
		}
		if filters.EndDate != nil {
			args = append(args, pgtype.Date{Time: *filters.EndDate, Valid: true})
			fmt.Fprintf(&sb, " AND transaction_date <= $%d", len(args))
		}
	}
	sb.WriteString(" ORDER BY transaction_date DESC, id DESC")

	rows, err := r.pool.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

// Update updates a transaction's fields
func (r *TransactionRepository) Update(transaction *domain.Transaction) (*domain.Transaction, error) {
	row := r.pool.QueryRow(context.Background(),
		"UPDATE transactions SET type = $2, amount = $3, category = $4, transaction_date = $5, description = $6, updated_at = now() WHERE id = $1 RETURNING "+transactionColumns,
		transaction.ID,
		string(transaction.Type),
		transaction.Amount.String(),
		transaction.Category,
		pgtype.Date{Time: transaction.TransactionDate, Valid: true},
		transaction.Description)
	updated, err := scanTransaction(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(id int32) error {
	tag, err := r.pool.Exec(context.Background(),
		"DELETE FROM transactions WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// ReassignCategory bulk-rewrites the category label on all of the user's
// transactions that currently carry oldName. One conditional UPDATE, so no
// transaction is ever observable with a label matching neither name.
func (r *TransactionRepository) ReassignCategory(userID uuid.UUID, oldName, newName string) (int64, error) {
	tag, err := r.pool.Exec(context.Background(),
		"UPDATE transactions SET category = $3, updated_at = now() WHERE user_id = $1 AND category = $2",
		pgtype.UUID{Bytes: userID, Valid: true}, oldName, newName)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Helper functions

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		userID               pgtype.UUID
		ttype                string
		amount               string
		date                 pgtype.Date
		createdAt, updatedAt pgtype.Timestamptz
		transaction          domain.Transaction
	)
	if err := row.Scan(&transaction.ID, &userID, &ttype, &amount, &transaction.Category, &date, &transaction.Description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}
	transaction.UserID = uuid.UUID(userID.Bytes)
	transaction.Type = domain.TransactionType(ttype)
	transaction.Amount = parsed
	transaction.TransactionDate = date.Time
	transaction.CreatedAt = createdAt.Time
	transaction.UpdatedAt = updatedAt.Time
	return &transaction, nil
}
