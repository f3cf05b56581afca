package service

import (
	"errors"
	"strings"

	"github.com/expenso/expenso-backend/internal/domain"
	"github.com/google/uuid"
)

// CategoryService enforces per-user category name uniqueness and keeps the
// denormalized category labels on transactions consistent: a rename cascades
// to every transaction carrying the old name, and a delete reassigns them to
// the Uncategorized sentinel.
type CategoryService struct {
	categoryRepo    domain.CategoryRepository
	transactionRepo domain.TransactionRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository, transactionRepo domain.TransactionRepository) *CategoryService {
	return &CategoryService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// CreateCategory creates a new category with a lowercase-normalized name
func (s *CategoryService) CreateCategory(userID uuid.UUID, name, categoryType string) (*domain.Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxCategoryNameLength {
		return nil, domain.ErrNameTooLong
	}

	ctype := domain.CategoryType(strings.ToLower(strings.TrimSpace(categoryType)))
	if ctype != domain.CategoryTypeIncome && ctype != domain.CategoryTypeExpense {
		return nil, domain.ErrInvalidCategoryType
	}

	if _, err := s.categoryRepo.GetByName(userID, name); err == nil {
		return nil, domain.ErrCategoryAlreadyExists
	} else if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	category := &domain.Category{
		UserID: userID,
		Name:   name,
		Type:   ctype,
	}

	return s.categoryRepo.Create(category)
}

// GetCategories retrieves all categories owned by the user
func (s *CategoryService) GetCategories(userID uuid.UUID) ([]*domain.Category, error) {
	return s.categoryRepo.GetAllByUser(userID)
}

// UpdateCategoryInput contains the updatable category fields. Empty fields
// keep their current value.
type UpdateCategoryInput struct {
	Name string
	Type string
}

// UpdateCategory updates a category and, when the name changed, rewrites the
// old label on all of the user's transactions in one bulk update. The
// category is saved before the cascade is issued; the two writes are
// separate round trips.
func (s *CategoryService) UpdateCategory(userID uuid.UUID, categoryID int32, input UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, domain.ErrForbidden
	}

	oldName := category.Name

	if name := strings.ToLower(strings.TrimSpace(input.Name)); name != "" {
		if len(name) > domain.MaxCategoryNameLength {
			return nil, domain.ErrNameTooLong
		}
		category.Name = name
	}
	if input.Type != "" {
		ctype := domain.CategoryType(strings.ToLower(strings.TrimSpace(input.Type)))
		if ctype != domain.CategoryTypeIncome && ctype != domain.CategoryTypeExpense {
			return nil, domain.ErrInvalidCategoryType
		}
		category.Type = ctype
	}

	updated, err := s.categoryRepo.Update(category)
	if err != nil {
		return nil, err
	}

	if oldName != updated.Name {
		if _, err := s.transactionRepo.ReassignCategory(userID, oldName, updated.Name); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

// DeleteCategoryResult is the tagged outcome of DeleteCategory. A missing or
// foreign-owned category is reported here as a non-error, preserving the
// original API's soft-failure contract.
type DeleteCategoryResult struct {
	Deleted bool   `json:"-"`
	Message string `json:"message"`
}

// Delete outcome messages
const (
	categoryDeletedMessage  = "Category removed and transactions updated"
	categoryNotOwnedMessage = "Category not found or user not authorized"
)

// DeleteCategory removes a category after reassigning its transactions to
// the Uncategorized sentinel
func (s *CategoryService) DeleteCategory(userID uuid.UUID, categoryID int32) (*DeleteCategoryResult, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return &DeleteCategoryResult{Message: categoryNotOwnedMessage}, nil
		}
		return nil, err
	}
	if category.UserID != userID {
		return &DeleteCategoryResult{Message: categoryNotOwnedMessage}, nil
	}

	if _, err := s.transactionRepo.ReassignCategory(userID, category.Name, domain.UncategorizedName); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Delete(categoryID); err != nil {
		return nil, err
	}

	return &DeleteCategoryResult{Deleted: true, Message: categoryDeletedMessage}, nil
}
