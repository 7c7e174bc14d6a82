package dto

import (
	"time"

	"bible-trivia/internal/domain"
)

// CategoryResponse represents a category in the API response
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

func NewCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		SortOrder:   c.SortOrder,
	}
}

// QuestionResponse represents a question in the API response
type QuestionResponse struct {
	ID             string    `json:"id"`
	CategoryID     string    `json:"category_id"`
	Difficulty     string    `json:"difficulty"`
	QuestionType   string    `json:"question_type"`
	QuestionText   string    `json:"question_text"`
	CorrectAnswer  string    `json:"correct_answer"`
	Options        []string  `json:"options,omitempty"`
	BibleReference string    `json:"bible_reference,omitempty"`
	Explanation    string    `json:"explanation,omitempty"`
	TeachingNotes  string    `json:"teaching_notes,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	IsActive       bool      `json:"is_active"`
	ReadyForProd   bool      `json:"ready_for_prod"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:             q.ID,
		CategoryID:     q.CategoryID,
		Difficulty:     string(q.Difficulty),
		QuestionType:   string(q.QuestionType),
		QuestionText:   q.QuestionText,
		CorrectAnswer:  q.CorrectAnswer,
		Options:        q.Options(),
		BibleReference: q.BibleReference,
		Explanation:    q.Explanation,
		TeachingNotes:  q.TeachingNotes,
		Tags:           q.Tags,
		IsActive:       q.IsActive,
		ReadyForProd:   q.ReadyForProd,
		CreatedAt:      q.CreatedAt,
	}
}

// CreateQuestionRequest is the payload for drafting a staging question.
type CreateQuestionRequest struct {
	CategoryID     string   `json:"category_id"`
	Difficulty     string   `json:"difficulty"`
	QuestionType   string   `json:"question_type"`
	QuestionText   string   `json:"question_text"`
	CorrectAnswer  string   `json:"correct_answer"`
	OptionA        string   `json:"option_a"`
	OptionB        string   `json:"option_b"`
	OptionC        string   `json:"option_c"`
	OptionD        string   `json:"option_d"`
	BibleReference string   `json:"bible_reference"`
	Explanation    string   `json:"explanation"`
	TeachingNotes  string   `json:"teaching_notes"`
	Tags           []string `json:"tags"`
}

// ToDomain maps the request onto a domain question. New drafts are active
// and unflagged until an editor marks them ready.
func (r *CreateQuestionRequest) ToDomain() *domain.Question {
	return &domain.Question{
		CategoryID:     r.CategoryID,
		Difficulty:     domain.Difficulty(r.Difficulty),
		QuestionType:   domain.QuestionType(r.QuestionType),
		QuestionText:   r.QuestionText,
		CorrectAnswer:  r.CorrectAnswer,
		OptionA:        r.OptionA,
		OptionB:        r.OptionB,
		OptionC:        r.OptionC,
		OptionD:        r.OptionD,
		BibleReference: r.BibleReference,
		Explanation:    r.Explanation,
		TeachingNotes:  r.TeachingNotes,
		Tags:           r.Tags,
		IsActive:       true,
	}
}

// FlagRequest sets or clears the promotion flag on a staging question.
type FlagRequest struct {
	Ready bool `json:"ready"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
