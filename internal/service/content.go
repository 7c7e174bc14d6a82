package service

import (
	"context"
	"fmt"

	"bible-trivia/internal/domain"
	"bible-trivia/internal/environment"

	"go.uber.org/zap"
)

// ContentService exposes environment-aware content access for the admin
// surfaces. Reads resolve the current mode per call, since the mode can
// change between operations; authoring always targets staging.
type ContentService interface {
	CurrentMode(ctx context.Context) (environment.Mode, error)
	SetMode(ctx context.Context, mode environment.Mode) error

	// ListCategories returns the categories of the environment the app is
	// currently pointed at.
	ListCategories(ctx context.Context) ([]*domain.Category, error)

	// ListQuestions returns the questions of a category in the current
	// environment.
	ListQuestions(ctx context.Context, categoryID string) ([]*domain.Question, error)

	// SaveDraft creates a new staging question.
	SaveDraft(ctx context.Context, question *domain.Question) error

	// FlagForPromotion sets or clears the ready_for_prod marker on a
	// staging question.
	FlagForPromotion(ctx context.Context, questionID string, ready bool) error
}

type contentService struct {
	categoryRepo domain.CategoryRepository
	questionRepo domain.QuestionRepository
	modes        environment.ModeStore
	logger       *zap.Logger
}

// NewContentService creates a new instance of ContentService.
func NewContentService(
	categoryRepo domain.CategoryRepository,
	questionRepo domain.QuestionRepository,
	modes environment.ModeStore,
	logger *zap.Logger,
) ContentService {
	return &contentService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
		modes:        modes,
		logger:       logger,
	}
}

func (s *contentService) CurrentMode(ctx context.Context) (environment.Mode, error) {
	return s.modes.Current(ctx)
}

func (s *contentService) SetMode(ctx context.Context, mode environment.Mode) error {
	if !mode.IsValid() {
		return domain.NewInvalidInputError(fmt.Sprintf("unknown environment mode: %q", mode))
	}
	if err := s.modes.Set(ctx, mode); err != nil {
		return domain.NewStoreError("failed to switch environment mode", err)
	}
	s.logger.Info("Environment mode changed", zap.String("mode", string(mode)))
	return nil
}

// currentTables resolves the table snapshot for this one operation.
func (s *contentService) currentTables(ctx context.Context) (environment.Tables, error) {
	mode, err := s.modes.Current(ctx)
	if err != nil {
		return environment.Tables{}, domain.NewStoreError("failed to read environment mode", err)
	}
	return environment.TablesFor(mode), nil
}

func (s *contentService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	tables, err := s.currentTables(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetAll(ctx, tables.Categories)
	if err != nil {
		return nil, domain.NewStoreError("failed to list categories", err)
	}
	return categories, nil
}

func (s *contentService) ListQuestions(ctx context.Context, categoryID string) ([]*domain.Question, error) {
	if categoryID == "" {
		return nil, domain.NewInvalidInputError("category id is required")
	}

	tables, err := s.currentTables(ctx)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.GetByCategory(ctx, tables.Questions, categoryID)
	if err != nil {
		return nil, domain.NewStoreError("failed to list questions", err)
	}
	return questions, nil
}

func (s *contentService) SaveDraft(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return domain.NewInvalidInputError("question is required")
	}
	if err := question.Validate(); err != nil {
		return err
	}

	staging := environment.TablesFor(environment.Development)
	if err := s.questionRepo.Save(ctx, staging.Questions, question); err != nil {
		return domain.NewStoreError("failed to save draft question", err)
	}
	return nil
}

func (s *contentService) FlagForPromotion(ctx context.Context, questionID string, ready bool) error {
	if questionID == "" {
		return domain.NewInvalidInputError("question id is required")
	}

	staging := environment.TablesFor(environment.Development)
	if err := s.questionRepo.SetReadyFlag(ctx, staging.Questions, questionID, ready); err != nil {
		return domain.NewStoreError("failed to update promotion flag", err)
	}
	return nil
}
