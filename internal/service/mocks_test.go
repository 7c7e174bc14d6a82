package service

import (
	"context"

	"bible-trivia/internal/domain"
	"bible-trivia/internal/environment"

	"github.com/stretchr/testify/mock"
)

// --- MockCategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll(ctx context.Context, table string) ([]*domain.Category, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, table, id string) (*domain.Category, error) {
	args := m.Called(ctx, table, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByName(ctx context.Context, table, name string) (*domain.Category, error) {
	args := m.Called(ctx, table, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, table string, category *domain.Category) error {
	args := m.Called(ctx, table, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, table string, category *domain.Category) error {
	args := m.Called(ctx, table, category)
	return args.Error(0)
}

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, table, id string) (*domain.Question, error) {
	args := m.Called(ctx, table, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByText(ctx context.Context, table, text string) (*domain.Question, error) {
	args := m.Called(ctx, table, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByCategory(ctx context.Context, table, categoryID string) ([]*domain.Question, error) {
	args := m.Called(ctx, table, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetFlagged(ctx context.Context, table string) ([]*domain.Question, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) Save(ctx context.Context, table string, question *domain.Question) error {
	args := m.Called(ctx, table, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) Update(ctx context.Context, table string, question *domain.Question) error {
	args := m.Called(ctx, table, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) SetReadyFlag(ctx context.Context, table, id string, ready bool) error {
	args := m.Called(ctx, table, id, ready)
	return args.Error(0)
}

// --- MockModeStore ---
type MockModeStore struct {
	mock.Mock
}

func (m *MockModeStore) Current(ctx context.Context) (environment.Mode, error) {
	args := m.Called(ctx)
	return args.Get(0).(environment.Mode), args.Error(1)
}

func (m *MockModeStore) Set(ctx context.Context, mode environment.Mode) error {
	args := m.Called(ctx, mode)
	return args.Error(0)
}

func (m *MockModeStore) Subscribe(ctx context.Context) (<-chan environment.Mode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan environment.Mode), args.Error(1)
}
