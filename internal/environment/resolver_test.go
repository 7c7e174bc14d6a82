package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableFor(t *testing.T) {
	tests := []struct {
		name     string
		logical  string
		mode     Mode
		expected string
	}{
		{"production keeps logical name", TableQuestions, Production, "questions"},
		{"development appends suffix", TableQuestions, Development, "questions_dev"},
		{"categories in production", TableCategories, Production, "categories"},
		{"categories in development", TableCategories, Development, "categories_dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TableFor(tt.logical, tt.mode))
		})
	}
}

func TestTablesFor(t *testing.T) {
	dev := TablesFor(Development)
	assert.Equal(t, "categories_dev", dev.Categories)
	assert.Equal(t, "questions_dev", dev.Questions)

	prod := TablesFor(Production)
	assert.Equal(t, "categories", prod.Categories)
	assert.Equal(t, "questions", prod.Questions)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("development")
	assert.NoError(t, err)
	assert.Equal(t, Development, mode)

	mode, err = ParseMode("production")
	assert.NoError(t, err)
	assert.Equal(t, Production, mode)

	_, err = ParseMode("staging")
	assert.Error(t, err)
}

func TestModeIsValid(t *testing.T) {
	assert.True(t, Development.IsValid())
	assert.True(t, Production.IsValid())
	assert.False(t, Mode("qa").IsValid())
	assert.False(t, Mode("").IsValid())
}
