package service

import (
	"strings"
	"time"

	"github.com/expenso/expenso-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService handles transaction business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// CreateTransactionInput contains the fields for a new transaction
type CreateTransactionInput struct {
	Type            domain.TransactionType
	Amount          decimal.Decimal
	Category        string
	TransactionDate time.Time
	Description     *string
}

// CreateTransaction persists a transaction scoped to the user. The category
// is a free-form label at this layer; it is not checked against the
// category store.
func (s *TransactionService) CreateTransaction(userID uuid.UUID, input CreateTransactionInput) (*domain.Transaction, error) {
	if input.Type != domain.TransactionTypeIncome && input.Type != domain.TransactionTypeExpense {
		return nil, domain.ErrInvalidTransactionType
	}
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if input.TransactionDate.IsZero() {
		return nil, domain.ErrDateRequired
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.UncategorizedName
	}

	transaction := &domain.Transaction{
		UserID:          userID,
		Type:            input.Type,
		Amount:          input.Amount,
		Category:        category,
		TransactionDate: input.TransactionDate,
		Description:     input.Description,
	}

	return s.transactionRepo.Create(transaction)
}

// GetTransactions retrieves the user's transactions with optional filters
func (s *TransactionService) GetTransactions(userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	return s.transactionRepo.GetAllByUser(userID, filters)
}

// UpdateTransactionInput contains the fields for updating a transaction
type UpdateTransactionInput struct {
	Type            domain.TransactionType
	Amount          decimal.Decimal
	Category        string
	TransactionDate time.Time
	Description     *string
}

// UpdateTransaction updates a transaction after the ownership check
func (s *TransactionService) UpdateTransaction(userID uuid.UUID, id int32, input UpdateTransactionInput) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transaction.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if input.Type != domain.TransactionTypeIncome && input.Type != domain.TransactionTypeExpense {
		return nil, domain.ErrInvalidTransactionType
	}
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if input.TransactionDate.IsZero() {
		return nil, domain.ErrDateRequired
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.UncategorizedName
	}

	transaction.Type = input.Type
	transaction.Amount = input.Amount
	transaction.Category = category
	transaction.TransactionDate = input.TransactionDate
	transaction.Description = input.Description

	return s.transactionRepo.Update(transaction)
}

// DeleteTransaction removes a transaction after the ownership check
func (s *TransactionService) DeleteTransaction(userID uuid.UUID, id int32) error {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if transaction.UserID != userID {
		return domain.ErrForbidden
	}

	return s.transactionRepo.Delete(id)
}
