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

const questionColumns = `id, category_id, difficulty, question_type, question_text, correct_answer,
	option_a, option_b, option_c, option_d, bible_reference, explanation, teaching_notes,
	tags, is_active, ready_for_prod, created_at, updated_at`

// QuestionStore implements domain.QuestionRepository using sqlx.DB.
// Like CategoryStore it is environment-agnostic; callers pass the resolved
// table name per operation.
type QuestionStore struct {
	db *sqlx.DB
}

// NewQuestionStore creates a new instance of QuestionStore
func NewQuestionStore(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionStore{db: db}
}

// GetByID returns the question with the given id, or nil if absent.
func (s *QuestionStore) GetByID(ctx context.Context, table, id string) (*domain.Question, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	var question models.Question
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", questionColumns, table)
	err := s.db.GetContext(ctx, &question, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %s from %s: %w", id, table, err)
	}
	return toDomainQuestion(&question), nil
}

// GetByText returns the question with exactly matching text, or nil if
// absent. The match is case-sensitive; text equality is the duplicate key
// for promotion.
func (s *QuestionStore) GetByText(ctx context.Context, table, text string) (*domain.Question, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	var question models.Question
	query := fmt.Sprintf("SELECT %s FROM %s WHERE question_text = $1 LIMIT 1", questionColumns, table)
	err := s.db.GetContext(ctx, &question, query, text)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by text from %s: %w", table, err)
	}
	return toDomainQuestion(&question), nil
}

// GetByCategory returns all questions owned by a category.
func (s *QuestionStore) GetByCategory(ctx context.Context, table, categoryID string) ([]*domain.Question, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	var questions []models.Question
	query := fmt.Sprintf("SELECT %s FROM %s WHERE category_id = $1 ORDER BY created_at", questionColumns, table)
	if err := s.db.SelectContext(ctx, &questions, query, categoryID); err != nil {
		return nil, fmt.Errorf("failed to get questions for category %s from %s: %w", categoryID, table, err)
	}
	return toDomainQuestions(questions), nil
}

// GetFlagged returns every question with ready_for_prod set, oldest first so
// batch runs process items in review order.
func (s *QuestionStore) GetFlagged(ctx context.Context, table string) ([]*domain.Question, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	var questions []models.Question
	query := fmt.Sprintf("SELECT %s FROM %s WHERE ready_for_prod = TRUE ORDER BY created_at", questionColumns, table)
	if err := s.db.SelectContext(ctx, &questions, query); err != nil {
		return nil, fmt.Errorf("failed to get flagged questions from %s: %w", table, err)
	}
	return toDomainQuestions(questions), nil
}

// Save persists a new question into the given table.
func (s *QuestionStore) Save(ctx context.Context, table string, question *domain.Question) error {
	if err := checkTable(table); err != nil {
		return err
	}
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}

	model := toModelQuestion(question)
	model.ID = util.NewULID()
	model.CreatedAt = time.Now()
	model.UpdatedAt = model.CreatedAt

	query := fmt.Sprintf(`INSERT INTO %s (
		id, category_id, difficulty, question_type, question_text, correct_answer,
		option_a, option_b, option_c, option_d, bible_reference, explanation, teaching_notes,
		tags, is_active, ready_for_prod, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
	)`, table)

	_, err := s.db.ExecContext(ctx, query,
		model.ID,
		model.CategoryID,
		model.Difficulty,
		model.QuestionType,
		model.QuestionText,
		model.CorrectAnswer,
		model.OptionA,
		model.OptionB,
		model.OptionC,
		model.OptionD,
		model.BibleReference,
		model.Explanation,
		model.TeachingNotes,
		model.Tags,
		model.IsActive,
		model.ReadyForProd,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save question to %s: %w", table, err)
	}

	question.ID = model.ID
	question.CreatedAt = model.CreatedAt
	question.UpdatedAt = model.UpdatedAt
	return nil
}

// Update updates an existing question in the given table.
func (s *QuestionStore) Update(ctx context.Context, table string, question *domain.Question) error {
	if err := checkTable(table); err != nil {
		return err
	}
	if question == nil || question.ID == "" {
		return fmt.Errorf("cannot update question without id")
	}

	model := toModelQuestion(question)
	model.UpdatedAt = time.Now()

	query := fmt.Sprintf(`UPDATE %s SET
		category_id = $1, difficulty = $2, question_type = $3, question_text = $4,
		correct_answer = $5, option_a = $6, option_b = $7, option_c = $8, option_d = $9,
		bible_reference = $10, explanation = $11, teaching_notes = $12, tags = $13,
		is_active = $14, ready_for_prod = $15, updated_at = $16
	WHERE id = $17`, table)

	result, err := s.db.ExecContext(ctx, query,
		model.CategoryID,
		model.Difficulty,
		model.QuestionType,
		model.QuestionText,
		model.CorrectAnswer,
		model.OptionA,
		model.OptionB,
		model.OptionC,
		model.OptionD,
		model.BibleReference,
		model.Explanation,
		model.TeachingNotes,
		model.Tags,
		model.IsActive,
		model.ReadyForProd,
		model.UpdatedAt,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update question in %s: %w", table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("question with ID %s not found in %s", question.ID, table)
	}
	question.UpdatedAt = model.UpdatedAt
	return nil
}

// SetReadyFlag sets or clears ready_for_prod on a single row.
func (s *QuestionStore) SetReadyFlag(ctx context.Context, table, id string, ready bool) error {
	if err := checkTable(table); err != nil {
		return err
	}

	query := fmt.Sprintf("UPDATE %s SET ready_for_prod = $1, updated_at = $2 WHERE id = $3", table)
	result, err := s.db.ExecContext(ctx, query, ready, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set ready flag on %s in %s: %w", id, table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("question with ID %s not found in %s", id, table)
	}
	return nil
}

func toDomainQuestions(questions []models.Question) []*domain.Question {
	domainQuestions := make([]*domain.Question, len(questions))
	for i := range questions {
		domainQuestions[i] = toDomainQuestion(&questions[i])
	}
	return domainQuestions
}

func toDomainQuestion(q *models.Question) *domain.Question {
	return &domain.Question{
		ID:             q.ID,
		CategoryID:     q.CategoryID,
		Difficulty:     domain.Difficulty(q.Difficulty),
		QuestionType:   domain.QuestionType(q.QuestionType),
		QuestionText:   q.QuestionText,
		CorrectAnswer:  q.CorrectAnswer,
		OptionA:        util.NullStringToString(q.OptionA),
		OptionB:        util.NullStringToString(q.OptionB),
		OptionC:        util.NullStringToString(q.OptionC),
		OptionD:        util.NullStringToString(q.OptionD),
		BibleReference: util.NullStringToString(q.BibleReference),
		Explanation:    util.NullStringToString(q.Explanation),
		TeachingNotes:  util.NullStringToString(q.TeachingNotes),
		Tags:           []string(q.Tags),
		IsActive:       q.IsActive,
		ReadyForProd:   q.ReadyForProd,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:             q.ID,
		CategoryID:     q.CategoryID,
		Difficulty:     string(q.Difficulty),
		QuestionType:   string(q.QuestionType),
		QuestionText:   q.QuestionText,
		CorrectAnswer:  q.CorrectAnswer,
		OptionA:        util.StringToNullString(q.OptionA),
		OptionB:        util.StringToNullString(q.OptionB),
		OptionC:        util.StringToNullString(q.OptionC),
		OptionD:        util.StringToNullString(q.OptionD),
		BibleReference: util.StringToNullString(q.BibleReference),
		Explanation:    util.StringToNullString(q.Explanation),
		TeachingNotes:  util.StringToNullString(q.TeachingNotes),
		Tags:           models.StringSlice(q.Tags),
		IsActive:       q.IsActive,
		ReadyForProd:   q.ReadyForProd,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}
