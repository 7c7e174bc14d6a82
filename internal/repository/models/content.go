package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice is a custom type for handling string lists stored as JSON text
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		// store nil slices as an empty JSON array
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte

	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 {
		*s = StringSlice{}
		return nil
	}
	if string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	return json.Unmarshal(bytesToParse, s)
}

// Category row. The same model is used for both environments' category
// tables; the table name is supplied per query.
type Category struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	SortOrder   int            `db:"sort_order"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// Question row, shared by both environments' question tables.
type Question struct {
	ID             string         `db:"id"`
	CategoryID     string         `db:"category_id"`
	Difficulty     string         `db:"difficulty"`
	QuestionType   string         `db:"question_type"`
	QuestionText   string         `db:"question_text"`
	CorrectAnswer  string         `db:"correct_answer"`
	OptionA        sql.NullString `db:"option_a"`
	OptionB        sql.NullString `db:"option_b"`
	OptionC        sql.NullString `db:"option_c"`
	OptionD        sql.NullString `db:"option_d"`
	BibleReference sql.NullString `db:"bible_reference"`
	Explanation    sql.NullString `db:"explanation"`
	TeachingNotes  sql.NullString `db:"teaching_notes"`
	Tags           StringSlice    `db:"tags"`
	IsActive       bool           `db:"is_active"`
	ReadyForProd   bool           `db:"ready_for_prod"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}
