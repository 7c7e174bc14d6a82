package service

import (
	"context"
	"fmt"
	"strings"

	"bible-trivia/internal/domain"
	"bible-trivia/internal/environment"

	"go.uber.org/zap"
)

// messagePrefixLen bounds the question-text prefix used in aggregated
// batch reports.
const messagePrefixLen = 40

// PromotionService is the content promotion pipeline: validation of staging
// questions, single-item migration into production, batch orchestration and
// the read-only readiness summary.
type PromotionService interface {
	// ValidateQuestion runs the validation engine over one staging question.
	ValidateQuestion(ctx context.Context, questionID string) (*domain.ValidationResult, error)

	// MigrateQuestion promotes one staging question into production.
	// Failures are returned as a structured result, never as an error.
	MigrateQuestion(ctx context.Context, questionID string) *domain.MigrationResult

	// PromoteCategory copies a staging category into production unless a
	// production category with the same name already exists.
	PromoteCategory(ctx context.Context, categoryID string) *domain.MigrationResult

	// MigrateAll promotes every flagged staging question, continuing past
	// individual failures.
	MigrateAll(ctx context.Context) *domain.BatchResult

	// Summarize previews a batch run without performing any writes.
	Summarize(ctx context.Context) (*domain.ReadinessSummary, error)
}

type promotionService struct {
	categoryRepo domain.CategoryRepository
	questionRepo domain.QuestionRepository
	auth         domain.AuthChecker
	validator    *ValidationEngine
	logger       *zap.Logger
}

// NewPromotionService creates a new instance of the promotion pipeline.
func NewPromotionService(
	categoryRepo domain.CategoryRepository,
	questionRepo domain.QuestionRepository,
	auth domain.AuthChecker,
	logger *zap.Logger,
) PromotionService {
	return &promotionService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
		auth:         auth,
		validator:    NewValidationEngine(categoryRepo, questionRepo),
		logger:       logger,
	}
}

// snapshotTables fixes the resolved table names for one pipeline operation.
// Promotion always reads staging (development tables) and writes production,
// regardless of the mode the app is currently pointed at.
func snapshotTables() (source, target environment.Tables) {
	return environment.TablesFor(environment.Development), environment.TablesFor(environment.Production)
}

func (s *promotionService) ValidateQuestion(ctx context.Context, questionID string) (*domain.ValidationResult, error) {
	source, target := snapshotTables()

	question, err := s.questionRepo.GetByID(ctx, source.Questions, questionID)
	if err != nil {
		return nil, domain.NewStoreError("failed to load staging question", err)
	}
	if question == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("staging question not found: %s", questionID))
	}

	return s.validator.Validate(ctx, question, source, target)
}

func (s *promotionService) MigrateQuestion(ctx context.Context, questionID string) *domain.MigrationResult {
	source, target := snapshotTables()
	return s.migrateOne(ctx, source, target, questionID)
}

// migrateOne performs the single-item migration algorithm against an
// already-resolved pair of table snapshots, failing fast on the first
// blocking condition.
func (s *promotionService) migrateOne(ctx context.Context, source, target environment.Tables, questionID string) *domain.MigrationResult {
	question, err := s.questionRepo.GetByID(ctx, source.Questions, questionID)
	if err != nil {
		return failure(domain.ErrStore, fmt.Sprintf("failed to load staging question: %v", err))
	}
	if question == nil {
		return failure(domain.ErrNotFound, fmt.Sprintf("staging question not found: %s", questionID))
	}

	category, err := s.categoryRepo.GetByID(ctx, source.Categories, question.CategoryID)
	if err != nil {
		return failure(domain.ErrStore, fmt.Sprintf("failed to load staging category: %v", err))
	}
	if category == nil {
		return failure(domain.ErrCategoryNotMigrated, "owning category cannot be resolved in staging")
	}

	prodCategory, err := s.categoryRepo.GetByName(ctx, target.Categories, category.Name)
	if err != nil {
		return failure(domain.ErrStore, fmt.Sprintf("failed to resolve production category: %v", err))
	}
	if prodCategory == nil {
		return failure(domain.ErrCategoryNotMigrated,
			fmt.Sprintf("category %q has not been migrated to production", category.Name))
	}

	duplicate, err := s.questionRepo.GetByText(ctx, target.Questions, question.QuestionText)
	if err != nil {
		return failure(domain.ErrStore, fmt.Sprintf("failed to check production for duplicates: %v", err))
	}
	if duplicate != nil {
		return failure(domain.ErrDuplicateContent,
			fmt.Sprintf("a production question with the same text already exists: %q",
				domain.Truncate(question.QuestionText, 60)))
	}

	if !s.auth.IsAuthenticated(ctx) {
		return failure(domain.ErrUnauthenticated, "no authenticated caller for production write")
	}

	promoted := question.CopyForPromotion(prodCategory.ID)
	if err := s.questionRepo.Save(ctx, target.Questions, promoted); err != nil {
		return failure(domain.ErrStore, fmt.Sprintf("failed to insert production question: %v", err))
	}

	result := &domain.MigrationResult{
		Success:       true,
		Message:       "question migrated to production",
		ItemsMigrated: 1,
		Written:       true,
		FlagCleared:   true,
	}

	// The production row exists at this point, so a flag-clear failure must
	// not fail the migration. The orphaned flag is safe: the next batch run
	// re-attempts, hits the duplicate check and skips.
	if err := s.questionRepo.SetReadyFlag(ctx, source.Questions, question.ID, false); err != nil {
		s.logger.Warn("Question migrated but staging flag could not be cleared",
			zap.String("question_id", question.ID),
			zap.Error(err),
		)
		result.FlagCleared = false
		result.Message = "question migrated to production, but the staging flag could not be cleared"
	}

	return result
}

func (s *promotionService) PromoteCategory(ctx context.Context, categoryID string) *domain.MigrationResult {
	source, target := snapshotTables()

	category, err := s.categoryRepo.GetByID(ctx, source.Categories, categoryID)
	if err != nil {
		return failure(domain.ErrStore, fmt.Sprintf("failed to load staging category: %v", err))
	}
	if category == nil {
		return failure(domain.ErrNotFound, fmt.Sprintf("staging category not found: %s", categoryID))
	}

	existing, err := s.categoryRepo.GetByName(ctx, target.Categories, category.Name)
	if err != nil {
		return failure(domain.ErrStore, fmt.Sprintf("failed to resolve production category: %v", err))
	}
	if existing != nil {
		return &domain.MigrationResult{
			Success:     true,
			Message:     fmt.Sprintf("category %q already exists in production", category.Name),
			FlagCleared: true,
		}
	}

	if !s.auth.IsAuthenticated(ctx) {
		return failure(domain.ErrUnauthenticated, "no authenticated caller for production write")
	}

	if err := s.categoryRepo.Save(ctx, target.Categories, category.CopyForPromotion()); err != nil {
		return failure(domain.ErrStore, fmt.Sprintf("failed to insert production category: %v", err))
	}

	return &domain.MigrationResult{
		Success:       true,
		Message:       fmt.Sprintf("category %q migrated to production", category.Name),
		ItemsMigrated: 1,
		Written:       true,
		FlagCleared:   true,
	}
}

func (s *promotionService) MigrateAll(ctx context.Context) *domain.BatchResult {
	// Resolve table names once for the whole run; the current mode changing
	// mid-batch must not redirect in-flight items.
	source, target := snapshotTables()

	flagged, err := s.questionRepo.GetFlagged(ctx, source.Questions)
	if err != nil {
		return &domain.BatchResult{
			Success: false,
			Message: "failed to fetch flagged questions",
			Err:     domain.NewStoreError("failed to fetch flagged questions", err),
		}
	}

	if len(flagged) == 0 {
		return &domain.BatchResult{
			Success: true,
			Message: "no questions flagged for promotion",
		}
	}

	s.logger.Info("Starting batch migration",
		zap.Int("flagged", len(flagged)),
		zap.String("source_table", source.Questions),
		zap.String("target_table", target.Questions),
	)

	result := &domain.BatchResult{}
	for _, question := range flagged {
		item := s.migrateOne(ctx, source, target, question.ID)
		if item.Success {
			result.ItemsMigrated += item.ItemsMigrated
			continue
		}

		result.Failures = append(result.Failures, domain.BatchFailure{
			QuestionID:   question.ID,
			QuestionText: question.QuestionText,
			Reason:       item.Message,
		})
		s.logger.Warn("Batch item failed, continuing",
			zap.String("question_id", question.ID),
			zap.String("code", string(item.Code)),
			zap.String("reason", item.Message),
		)
	}

	if len(result.Failures) == 0 {
		result.Success = true
		result.Message = fmt.Sprintf("migrated %d questions", result.ItemsMigrated)
		return result
	}

	parts := make([]string, len(result.Failures))
	for i, f := range result.Failures {
		parts[i] = fmt.Sprintf("%q: %s", domain.Truncate(f.QuestionText, messagePrefixLen), f.Reason)
	}
	result.Err = domain.NewPartialBatchFailureError(strings.Join(parts, "; "))
	result.Message = fmt.Sprintf("migrated %d questions, %d failed", result.ItemsMigrated, len(result.Failures))
	return result
}

func (s *promotionService) Summarize(ctx context.Context) (*domain.ReadinessSummary, error) {
	source, target := snapshotTables()

	flagged, err := s.questionRepo.GetFlagged(ctx, source.Questions)
	if err != nil {
		return nil, domain.NewStoreError("failed to fetch flagged questions", err)
	}

	summary := &domain.ReadinessSummary{TotalFlagged: len(flagged)}
	for _, question := range flagged {
		validation, err := s.validator.Validate(ctx, question, source, target)
		if err != nil {
			return nil, err
		}

		if validation.IsReady {
			summary.ReadyToMigrate++
			if len(validation.Warnings) > 0 {
				summary.HasWarningsOnly++
			}
			continue
		}

		summary.HasErrors++
		summary.ErrorDetails = append(summary.ErrorDetails, domain.QuestionIssue{
			QuestionID:   question.ID,
			QuestionText: question.QuestionText,
			Errors:       validation.Errors,
		})
	}
	return summary, nil
}

func failure(code domain.ErrorCode, message string) *domain.MigrationResult {
	return &domain.MigrationResult{
		Success: false,
		Code:    code,
		Message: message,
	}
}
