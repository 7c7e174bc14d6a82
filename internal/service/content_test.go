package service

import (
	"context"
	"testing"

	"bible-trivia/internal/domain"
	"bible-trivia/internal/environment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestListCategoriesFollowsCurrentMode(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	questionRepo := new(MockQuestionRepository)
	modes := new(MockModeStore)

	// First call sees development, second sees production: the mode is
	// re-read on every operation, not cached at construction.
	modes.On("Current", mock.Anything).Return(environment.Development, nil).Once()
	modes.On("Current", mock.Anything).Return(environment.Production, nil).Once()

	devCategories := []*domain.Category{{ID: "c1", Name: "Gospels"}}
	prodCategories := []*domain.Category{{ID: "c2", Name: "Psalms"}}
	categoryRepo.On("GetAll", mock.Anything, "categories_dev").Return(devCategories, nil)
	categoryRepo.On("GetAll", mock.Anything, "categories").Return(prodCategories, nil)

	svc := NewContentService(categoryRepo, questionRepo, modes, zap.NewNop())

	first, err := svc.ListCategories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, devCategories, first)

	second, err := svc.ListCategories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, prodCategories, second)

	modes.AssertExpectations(t)
}

func TestSetModeRejectsUnknownMode(t *testing.T) {
	modes := new(MockModeStore)
	svc := NewContentService(new(MockCategoryRepository), new(MockQuestionRepository), modes, zap.NewNop())

	err := svc.SetMode(context.Background(), environment.Mode("qa"))

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidInput, domainErr.Code)
	modes.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestSaveDraftAlwaysTargetsStaging(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	questionRepo := new(MockQuestionRepository)
	modes := new(MockModeStore)

	q := completeQuestion()
	questionRepo.On("Save", mock.Anything, "questions_dev", q).Return(nil)

	svc := NewContentService(categoryRepo, questionRepo, modes, zap.NewNop())
	assert.NoError(t, svc.SaveDraft(context.Background(), q))

	// Authoring never consults the mode store.
	modes.AssertNotCalled(t, "Current", mock.Anything)
	questionRepo.AssertExpectations(t)
}

func TestFlagForPromotionTargetsStaging(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("SetReadyFlag", mock.Anything, "questions_dev", "q-1", true).Return(nil)

	svc := NewContentService(new(MockCategoryRepository), questionRepo, new(MockModeStore), zap.NewNop())
	assert.NoError(t, svc.FlagForPromotion(context.Background(), "q-1", true))

	questionRepo.AssertExpectations(t)
}

func TestListQuestionsRequiresCategoryID(t *testing.T) {
	svc := NewContentService(new(MockCategoryRepository), new(MockQuestionRepository), new(MockModeStore), zap.NewNop())

	_, err := svc.ListQuestions(context.Background(), "")

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidInput, domainErr.Code)
}
