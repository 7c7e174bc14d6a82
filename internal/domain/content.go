package domain

import (
	"strings"
	"time"
)

// Difficulty is the editorial difficulty tier of a question.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyExpert       Difficulty = "expert"
	DifficultyScholar      Difficulty = "scholar"
)

// IsValid reports whether d is one of the known difficulty tiers.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyExpert, DifficultyScholar:
		return true
	}
	return false
}

// QuestionType is the answer format of a question.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionFillBlank      QuestionType = "fill_blank"
)

// IsValid reports whether t is one of the known question types.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionMultipleChoice, QuestionTrueFalse, QuestionFillBlank:
		return true
	}
	return false
}

// Category represents a content category. Categories exist independently in
// each environment; a staging category and its production counterpart are
// correlated only by exact name equality, never by id.
type Category struct {
	ID          string
	Name        string
	Description string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new Category instance.
func NewCategory(name, description string, sortOrder int) *Category {
	now := time.Now()
	return &Category{
		Name:        name,
		Description: description,
		SortOrder:   sortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate validates the category.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewInvalidInputError("category name is required")
	}
	return nil
}

// Question represents a trivia question. A question is drafted in the
// staging environment and promoted into production by copy: the production
// row is a new, independent row whose ids carry no cross-environment
// meaning. Cross-environment identity is established by question text
// equality.
type Question struct {
	ID             string
	CategoryID     string
	Difficulty     Difficulty
	QuestionType   QuestionType
	QuestionText   string
	CorrectAnswer  string
	OptionA        string
	OptionB        string
	OptionC        string
	OptionD        string
	BibleReference string
	Explanation    string
	TeachingNotes  string
	Tags           []string
	IsActive       bool
	ReadyForProd   bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Options returns the non-empty answer options, in order.
func (q *Question) Options() []string {
	var opts []string
	for _, o := range []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD} {
		if strings.TrimSpace(o) != "" {
			opts = append(opts, o)
		}
	}
	return opts
}

// Validate performs the structural checks applied when a question is saved.
// Promotion readiness is a stricter, separate concern handled by the
// validation engine.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return NewInvalidInputError("question text is required")
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return NewInvalidInputError("correct answer is required")
	}
	if q.CategoryID == "" {
		return NewInvalidInputError("category is required")
	}
	if !q.Difficulty.IsValid() {
		return NewInvalidInputError("unknown difficulty: " + string(q.Difficulty))
	}
	if !q.QuestionType.IsValid() {
		return NewInvalidInputError("unknown question type: " + string(q.QuestionType))
	}
	return nil
}

// CopyForPromotion returns the production copy of a staging question.
// The copy is re-parented onto the resolved production category and never
// carries the staging ready flag. Ids and timestamps are assigned on insert.
func (q *Question) CopyForPromotion(productionCategoryID string) *Question {
	return &Question{
		CategoryID:     productionCategoryID,
		Difficulty:     q.Difficulty,
		QuestionType:   q.QuestionType,
		QuestionText:   q.QuestionText,
		CorrectAnswer:  q.CorrectAnswer,
		OptionA:        q.OptionA,
		OptionB:        q.OptionB,
		OptionC:        q.OptionC,
		OptionD:        q.OptionD,
		BibleReference: q.BibleReference,
		Explanation:    q.Explanation,
		TeachingNotes:  q.TeachingNotes,
		Tags:           append([]string(nil), q.Tags...),
		IsActive:       q.IsActive,
		ReadyForProd:   false,
	}
}

// CopyForPromotion returns the production copy of a staging category,
// carrying the fields the promotion pipeline owns.
func (c *Category) CopyForPromotion() *Category {
	return &Category{
		Name:        c.Name,
		Description: c.Description,
		SortOrder:   c.SortOrder,
	}
}
