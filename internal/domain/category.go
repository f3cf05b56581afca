package domain

import (
	"time"

	"github.com/google/uuid"
)

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// UncategorizedName is the sentinel category assigned to transactions whose
// category was deleted.
const UncategorizedName = "Uncategorized"

// Category is a per-user label for transactions. Names are stored lowercase
// and are unique per user. Transactions reference categories by name, so a
// rename must cascade to them.
type Category struct {
	ID        int32        `json:"id"`
	UserID    uuid.UUID    `json:"userId"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type CategoryRepository interface {
	Create(category *Category) (*Category, error)
	GetByID(id int32) (*Category, error)
	GetByName(userID uuid.UUID, name string) (*Category, error)
	GetAllByUser(userID uuid.UUID) ([]*Category, error)
	Update(category *Category) (*Category, error)
	Delete(id int32) error
}
