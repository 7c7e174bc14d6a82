package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bible-trivia/internal/domain"
	"bible-trivia/internal/repository/models"
	"bible-trivia/internal/util"

	"github.com/jmoiron/sqlx"
)

const categoryColumns = "id, name, description, sort_order, created_at, updated_at"

// CategoryStore implements domain.CategoryRepository using sqlx.DB.
// The store is environment-agnostic: every method receives the concrete
// table name resolved by the caller.
type CategoryStore struct {
	db *sqlx.DB
}

// NewCategoryStore creates a new instance of CategoryStore
func NewCategoryStore(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryStore{db: db}
}

// GetAll returns all categories in the given table.
func (s *CategoryStore) GetAll(ctx context.Context, table string) ([]*domain.Category, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	var categories []models.Category
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY sort_order, name", categoryColumns, table)
	if err := s.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to get categories from %s: %w", table, err)
	}

	domainCategories := make([]*domain.Category, len(categories))
	for i, category := range categories {
		domainCategories[i] = toDomainCategory(&category)
	}
	return domainCategories, nil
}

// GetByID returns the category with the given id, or nil if absent.
func (s *CategoryStore) GetByID(ctx context.Context, table, id string) (*domain.Category, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	var category models.Category
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", categoryColumns, table)
	err := s.db.GetContext(ctx, &category, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %s from %s: %w", id, table, err)
	}
	return toDomainCategory(&category), nil
}

// GetByName returns the category with the exact name, or nil if absent.
// Name equality is the only identity link between a staging category and
// its production counterpart.
func (s *CategoryStore) GetByName(ctx context.Context, table, name string) (*domain.Category, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	var category models.Category
	query := fmt.Sprintf("SELECT %s FROM %s WHERE name = $1", categoryColumns, table)
	err := s.db.GetContext(ctx, &category, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %q from %s: %w", name, table, err)
	}
	return toDomainCategory(&category), nil
}

// Save persists a new category into the given table.
func (s *CategoryStore) Save(ctx context.Context, table string, category *domain.Category) error {
	if err := checkTable(table); err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("cannot save nil category")
	}

	model := toModelCategory(category)
	model.ID = util.NewULID()
	model.CreatedAt = time.Now()
	model.UpdatedAt = model.CreatedAt

	query := fmt.Sprintf(`INSERT INTO %s (id, name, description, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`, table)
	_, err := s.db.ExecContext(ctx, query,
		model.ID,
		model.Name,
		model.Description,
		model.SortOrder,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save category to %s: %w", table, err)
	}

	category.ID = model.ID
	category.CreatedAt = model.CreatedAt
	category.UpdatedAt = model.UpdatedAt
	return nil
}

// Update updates an existing category in the given table.
func (s *CategoryStore) Update(ctx context.Context, table string, category *domain.Category) error {
	if err := checkTable(table); err != nil {
		return err
	}
	if category == nil || category.ID == "" {
		return fmt.Errorf("cannot update category without id")
	}

	model := toModelCategory(category)
	model.UpdatedAt = time.Now()

	query := fmt.Sprintf(`UPDATE %s SET name = $1, description = $2, sort_order = $3, updated_at = $4
		WHERE id = $5`, table)
	result, err := s.db.ExecContext(ctx, query,
		model.Name,
		model.Description,
		model.SortOrder,
		model.UpdatedAt,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category in %s: %w", table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("category with ID %s not found in %s", category.ID, table)
	}
	category.UpdatedAt = model.UpdatedAt
	return nil
}

func toDomainCategory(category *models.Category) *domain.Category {
	return &domain.Category{
		ID:          category.ID,
		Name:        category.Name,
		Description: util.NullStringToString(category.Description),
		SortOrder:   category.SortOrder,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func toModelCategory(category *domain.Category) *models.Category {
	return &models.Category{
		ID:          category.ID,
		Name:        category.Name,
		Description: util.StringToNullString(category.Description),
		SortOrder:   category.SortOrder,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
