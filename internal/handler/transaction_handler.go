package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/expenso/expenso-backend/internal/domain"
	"github.com/expenso/expenso-backend/internal/middleware"
	"github.com/expenso/expenso-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for transaction dates
const dateLayout = "2006-01-02"

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest represents the create/update transaction request.
// Amount accepts both JSON numbers and numeric strings.
type TransactionRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Description *string         `json:"description"`
}

func (r *TransactionRequest) parseDate(c echo.Context) (time.Time, error) {
	if r.Date == "" {
		return time.Time{}, NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "date", Message: "Date is required"},
		})
	}
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		// Fall back to full timestamps for clients sending ISO 8601
		date, err = time.Parse(time.RFC3339, r.Date)
		if err != nil {
			return time.Time{}, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "date", Message: "Date must be in YYYY-MM-DD format"},
			})
		}
	}
	return date, nil
}

func transactionValidationResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTransactionType):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "type", Message: "Type must be income or expense"},
		})
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be greater than zero"},
		})
	case errors.Is(err, domain.ErrDateRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "date", Message: "Date is required"},
		})
	}
	return nil
}

// CreateTransaction handles POST /transactions/create
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	date, dateErr := req.parseDate(c)
	if dateErr != nil {
		return dateErr
	}

	transaction, err := h.transactionService.CreateTransaction(userID, service.CreateTransactionInput{
		Type:            domain.TransactionType(req.Type),
		Amount:          req.Amount,
		Category:        req.Category,
		TransactionDate: date,
		Description:     req.Description,
	})
	if err != nil {
		if resp := transactionValidationResponse(c, err); resp != nil {
			return resp
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create transaction")
		return NewInternalError(c, "Failed to create transaction")
	}

	return c.JSON(http.StatusCreated, transaction)
}

// GetTransactions handles GET /transactions/lists. Supported query
// parameters: type, category, startDate, endDate. The category value "All"
// is treated the same as no category filter.
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filters := &domain.TransactionFilters{}

	if raw := c.QueryParam("type"); raw != "" {
		transactionType := domain.TransactionType(raw)
		if transactionType != domain.TransactionTypeIncome && transactionType != domain.TransactionTypeExpense {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "type", Message: "Type must be income or expense"},
			})
		}
		filters.Type = &transactionType
	}
	if raw := c.QueryParam("category"); raw != "" {
		filters.Category = &raw
	}
	if raw := c.QueryParam("startDate"); raw != "" {
		start, err := time.Parse(dateLayout, raw)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "startDate", Message: "startDate must be in YYYY-MM-DD format"},
			})
		}
		filters.StartDate = &start
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		end, err := time.Parse(dateLayout, raw)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "endDate", Message: "endDate must be in YYYY-MM-DD format"},
			})
		}
		filters.EndDate = &end
	}

	transactions, err := h.transactionService.GetTransactions(userID, filters)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to list transactions")
		return NewInternalError(c, "Failed to list transactions")
	}

	return c.JSON(http.StatusOK, transactions)
}

// UpdateTransaction handles PUT /transactions/update/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	date, dateErr := req.parseDate(c)
	if dateErr != nil {
		return dateErr
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, int32(transactionID), service.UpdateTransactionInput{
		Type:            domain.TransactionType(req.Type),
		Amount:          req.Amount,
		Category:        req.Category,
		TransactionDate: date,
		Description:     req.Description,
	})
	if err != nil {
		if resp := transactionValidationResponse(c, err); resp != nil {
			return resp
		}
		switch {
		case errors.Is(err, domain.ErrTransactionNotFound):
			return NewNotFoundError(c, "Transaction not found")
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "Transaction belongs to another user")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to update transaction")
		return NewInternalError(c, "Failed to update transaction")
	}

	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction handles DELETE /transactions/delete/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	if err := h.transactionService.DeleteTransaction(userID, int32(transactionID)); err != nil {
		switch {
		case errors.Is(err, domain.ErrTransactionNotFound):
			return NewNotFoundError(c, "Transaction not found")
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "Transaction belongs to another user")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to delete transaction")
		return NewInternalError(c, "Failed to delete transaction")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Transaction deleted"})
}
