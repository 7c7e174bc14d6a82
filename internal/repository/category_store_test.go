package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"bible-trivia/internal/domain"
	"bible-trivia/internal/repository/models"
	"bible-trivia/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func categoryRows(categories ...models.Category) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "description", "sort_order", "created_at", "updated_at"})
	for _, cat := range categories {
		rows.AddRow(cat.ID, cat.Name, cat.Description, cat.SortOrder, cat.CreatedAt, cat.UpdatedAt)
	}
	return rows
}

func TestCategoryStoreGetAll(t *testing.T) {
	db, mock := setupTestDB(t)
	store := NewCategoryStore(db)

	now := time.Now()
	expected := []models.Category{
		{ID: util.NewULID(), Name: "Gospels", Description: sql.NullString{String: "Life of Jesus", Valid: true}, SortOrder: 1, CreatedAt: now, UpdatedAt: now},
		{ID: util.NewULID(), Name: "Prophecy", Description: sql.NullString{String: "Prophets and prophecies", Valid: true}, SortOrder: 2, CreatedAt: now, UpdatedAt: now},
	}

	query := `SELECT id, name, description, sort_order, created_at, updated_at FROM categories_dev ORDER BY sort_order, name`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(categoryRows(expected...))

	result, err := store.GetAll(context.Background(), "categories_dev")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Gospels", result[0].Name)
	assert.Equal(t, "Life of Jesus", result[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryStoreGetByName(t *testing.T) {
	db, mock := setupTestDB(t)
	store := NewCategoryStore(db)

	now := time.Now()
	cat := models.Category{ID: util.NewULID(), Name: "Prophecy", SortOrder: 3, CreatedAt: now, UpdatedAt: now}

	query := `SELECT id, name, description, sort_order, created_at, updated_at FROM categories WHERE name = $1`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("Prophecy").WillReturnRows(categoryRows(cat))

	result, err := store.GetByName(context.Background(), "categories", "Prophecy")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, cat.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryStoreGetByNameNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	store := NewCategoryStore(db)

	query := `SELECT id, name, description, sort_order, created_at, updated_at FROM categories WHERE name = $1`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("Unknown").WillReturnError(sql.ErrNoRows)

	result, err := store.GetByName(context.Background(), "categories", "Unknown")

	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryStoreSave(t *testing.T) {
	db, mock := setupTestDB(t)
	store := NewCategoryStore(db)

	category := &domain.Category{
		Name:        "Kings and Kingdoms",
		Description: "Israel's monarchy",
		SortOrder:   4,
	}

	mock.ExpectExec(`INSERT INTO categories`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Save(context.Background(), "categories", category)

	assert.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.False(t, category.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryStoreUpdateNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	store := NewCategoryStore(db)

	category := &domain.Category{ID: util.NewULID(), Name: "Gospels"}

	mock.ExpectExec(`UPDATE categories_dev SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Update(context.Background(), "categories_dev", category)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryStoreRejectsBadTableName(t *testing.T) {
	db, _ := setupTestDB(t)
	store := NewCategoryStore(db)

	_, err := store.GetAll(context.Background(), "categories; DROP TABLE questions")
	assert.Error(t, err)
}
