package postgres

import (
	"context"

	"github.com/expenso/expenso-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = "id, user_id, name, type, created_at, updated_at"

// Create creates a new category
func (r *CategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	row := r.pool.QueryRow(context.Background(),
		"INSERT INTO categories (user_id, name, type) VALUES ($1, $2, $3) RETURNING "+categoryColumns,
		pgtype.UUID{Bytes: category.UserID, Valid: true}, category.Name, string(category.Type))
	created, err := scanCategory(row)
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, domain.ErrCategoryAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

// GetByID retrieves a category by its ID. Ownership is not filtered here;
// the service checks it so not-found and forbidden stay distinguishable.
func (r *CategoryRepository) GetByID(id int32) (*domain.Category, error) {
	row := r.pool.QueryRow(context.Background(),
		"SELECT "+categoryColumns+" FROM categories WHERE id = $1", id)
	category, err := scanCategory(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// GetByName retrieves a category by its normalized name within a user
func (r *CategoryRepository) GetByName(userID uuid.UUID, name string) (*domain.Category, error) {
	row := r.pool.QueryRow(context.Background(),
		"SELECT "+categoryColumns+" FROM categories WHERE user_id = $1 AND name = $2",
		pgtype.UUID{Bytes: userID, Valid: true}, name)
	category, err := scanCategory(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// GetAllByUser retrieves all categories owned by the user
func (r *CategoryRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Category, error) {
	rows, err := r.pool.Query(context.Background(),
		"SELECT "+categoryColumns+" FROM categories WHERE user_id = $1 ORDER BY id",
		pgtype.UUID{Bytes: userID, Valid: true})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// Update updates a category's name and type
func (r *CategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	row := r.pool.QueryRow(context.Background(),
		"UPDATE categories SET name = $2, type = $3, updated_at = now() WHERE id = $1 RETURNING "+categoryColumns,
		category.ID, category.Name, string(category.Type))
	updated, err := scanCategory(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCategoryNotFound
		}
		if isPgUniqueViolation(err) {
			return nil, domain.ErrCategoryAlreadyExists
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a category
func (r *CategoryRepository) Delete(id int32) error {
	tag, err := r.pool.Exec(context.Background(),
		"DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Helper functions

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var (
		userID               pgtype.UUID
		ctype                string
		createdAt, updatedAt pgtype.Timestamptz
		category             domain.Category
	)
	if err := row.Scan(&category.ID, &userID, &category.Name, &ctype, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	category.UserID = uuid.UUID(userID.Bytes)
	category.Type = domain.CategoryType(ctype)
	category.CreatedAt = createdAt.Time
	category.UpdatedAt = updatedAt.Time
	return &category, nil
}
