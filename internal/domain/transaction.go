package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a dated monetary record. Category holds the category's
// display name as a plain string, not a foreign key; rename and delete of a
// category rewrite this field out of band.
type Transaction struct {
	ID              int32           `json:"id"`
	UserID          uuid.UUID       `json:"userId"`
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	TransactionDate time.Time       `json:"date"`
	Description     *string         `json:"description,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// TransactionFilters narrows GetAllByUser. A nil field means no filtering on
// it; the literal category "All" also disables the category filter.
type TransactionFilters struct {
	Type      *TransactionType
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
}

type TransactionRepository interface {
	Create(transaction *Transaction) (*Transaction, error)
	GetByID(id int32) (*Transaction, error)
	GetAllByUser(userID uuid.UUID, filters *TransactionFilters) ([]*Transaction, error)
	Update(transaction *Transaction) (*Transaction, error)
	Delete(id int32) error
	// ReassignCategory rewrites the category of every transaction of the user
	// currently labeled oldName to newName in a single conditional update.
	// Returns the number of affected rows.
	ReassignCategory(userID uuid.UUID, oldName, newName string) (int64, error)
}
