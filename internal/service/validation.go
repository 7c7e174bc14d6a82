package service

import (
	"context"
	"fmt"
	"strings"

	"bible-trivia/internal/domain"
	"bible-trivia/internal/environment"
)

const (
	minQuestionTextLength = 10
	maxQuestionTextLength = 500
	minChoiceOptions      = 2
)

// ValidationEngine decides whether a staging question is safe to promote.
// Errors encode consistency guarantees the production dataset must never
// violate; warnings encode editorial quality and never block promotion.
type ValidationEngine struct {
	categoryRepo domain.CategoryRepository
	questionRepo domain.QuestionRepository
}

// NewValidationEngine creates a new ValidationEngine instance.
func NewValidationEngine(categoryRepo domain.CategoryRepository, questionRepo domain.QuestionRepository) *ValidationEngine {
	return &ValidationEngine{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
	}
}

// Validate runs every blocking and quality check against a staging question.
// source and target are the table snapshots for the staging and production
// environments; lookups go against the target so the result reflects what a
// migration attempt would hit. Only store failures surface as an error.
func (e *ValidationEngine) Validate(ctx context.Context, q *domain.Question, source, target environment.Tables) (*domain.ValidationResult, error) {
	result := &domain.ValidationResult{
		Errors:   fieldErrors(q),
		Warnings: qualityWarnings(q),
	}

	category, err := e.categoryRepo.GetByID(ctx, source.Categories, q.CategoryID)
	if err != nil {
		return nil, domain.NewStoreError("failed to load staging category", err)
	}
	if category == nil {
		result.Errors = append(result.Errors, "owning category cannot be resolved in staging")
	} else {
		prodCategory, err := e.categoryRepo.GetByName(ctx, target.Categories, category.Name)
		if err != nil {
			return nil, domain.NewStoreError("failed to resolve production category", err)
		}
		if prodCategory == nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("category %q has not been migrated to production", category.Name))
		}
	}

	if strings.TrimSpace(q.QuestionText) != "" {
		duplicate, err := e.questionRepo.GetByText(ctx, target.Questions, q.QuestionText)
		if err != nil {
			return nil, domain.NewStoreError("failed to check production for duplicates", err)
		}
		if duplicate != nil {
			result.Errors = append(result.Errors, "a production question with identical text already exists")
		}
	}

	result.IsReady = len(result.Errors) == 0
	return result, nil
}

// fieldErrors returns the blocking errors derivable from the question's own
// fields, without any store lookups.
func fieldErrors(q *domain.Question) []string {
	var errs []string

	if strings.TrimSpace(q.QuestionText) == "" {
		errs = append(errs, "question text is empty")
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		errs = append(errs, "correct answer is empty")
	}

	if q.QuestionType == domain.QuestionMultipleChoice {
		options := q.Options()
		if len(options) < minChoiceOptions {
			errs = append(errs, fmt.Sprintf("multiple choice questions need at least %d options", minChoiceOptions))
		}
		if strings.TrimSpace(q.CorrectAnswer) != "" && len(options) > 0 && !matchesAnyOption(q.CorrectAnswer, options) {
			errs = append(errs, "correct answer does not match any option")
		}
	}

	return errs
}

// qualityWarnings returns the non-blocking editorial findings.
func qualityWarnings(q *domain.Question) []string {
	var warnings []string

	if strings.TrimSpace(q.Explanation) == "" {
		warnings = append(warnings, "missing explanation")
	}
	if strings.TrimSpace(q.BibleReference) == "" {
		warnings = append(warnings, "missing bible reference")
	}
	if q.Difficulty == domain.DifficultyScholar && strings.TrimSpace(q.TeachingNotes) == "" {
		warnings = append(warnings, "scholar difficulty without teaching notes")
	}
	if len(q.Tags) == 0 {
		warnings = append(warnings, "no tags set")
	}

	textLen := len([]rune(q.QuestionText))
	if textLen > 0 && textLen < minQuestionTextLength {
		warnings = append(warnings, fmt.Sprintf("question text is shorter than %d characters", minQuestionTextLength))
	}
	if textLen > maxQuestionTextLength {
		warnings = append(warnings, fmt.Sprintf("question text is longer than %d characters", maxQuestionTextLength))
	}

	return warnings
}

// matchesAnyOption reports whether the correct answer case-sensitively
// matches one of the non-empty options.
func matchesAnyOption(answer string, options []string) bool {
	for _, o := range options {
		if answer == o {
			return true
		}
	}
	return false
}
