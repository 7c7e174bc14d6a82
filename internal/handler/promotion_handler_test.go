package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"bible-trivia/internal/domain"
	"bible-trivia/internal/dto"
	"bible-trivia/internal/handler"
	"bible-trivia/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockPromotionService
type MockPromotionService struct {
	ValidateQuestionFunc func(ctx context.Context, questionID string) (*domain.ValidationResult, error)
	MigrateQuestionFunc  func(ctx context.Context, questionID string) *domain.MigrationResult
	PromoteCategoryFunc  func(ctx context.Context, categoryID string) *domain.MigrationResult
	MigrateAllFunc       func(ctx context.Context) *domain.BatchResult
	SummarizeFunc        func(ctx context.Context) (*domain.ReadinessSummary, error)
}

func (m *MockPromotionService) ValidateQuestion(ctx context.Context, questionID string) (*domain.ValidationResult, error) {
	if m.ValidateQuestionFunc != nil {
		return m.ValidateQuestionFunc(ctx, questionID)
	}
	panic("MockPromotionService.ValidateQuestionFunc not implemented")
}
func (m *MockPromotionService) MigrateQuestion(ctx context.Context, questionID string) *domain.MigrationResult {
	if m.MigrateQuestionFunc != nil {
		return m.MigrateQuestionFunc(ctx, questionID)
	}
	panic("MockPromotionService.MigrateQuestionFunc not implemented")
}
func (m *MockPromotionService) PromoteCategory(ctx context.Context, categoryID string) *domain.MigrationResult {
	if m.PromoteCategoryFunc != nil {
		return m.PromoteCategoryFunc(ctx, categoryID)
	}
	panic("MockPromotionService.PromoteCategoryFunc not implemented")
}
func (m *MockPromotionService) MigrateAll(ctx context.Context) *domain.BatchResult {
	if m.MigrateAllFunc != nil {
		return m.MigrateAllFunc(ctx)
	}
	panic("MockPromotionService.MigrateAllFunc not implemented")
}
func (m *MockPromotionService) Summarize(ctx context.Context) (*domain.ReadinessSummary, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx)
	}
	panic("MockPromotionService.SummarizeFunc not implemented")
}

func newTestApp(h *handler.PromotionHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Get("/promotion/status", h.GetStatus)
	app.Get("/promotion/questions/:id/validation", h.ValidateQuestion)
	app.Post("/promotion/questions/:id", h.MigrateQuestion)
	app.Post("/promotion/categories/:id", h.PromoteCategory)
	app.Post("/promotion/batch", h.RunBatch)
	return app
}

func TestPromotionHandler_GetStatus(t *testing.T) {
	mockSvc := &MockPromotionService{
		SummarizeFunc: func(ctx context.Context) (*domain.ReadinessSummary, error) {
			return &domain.ReadinessSummary{
				TotalFlagged:    3,
				ReadyToMigrate:  2,
				HasWarningsOnly: 1,
				HasErrors:       1,
				ErrorDetails: []domain.QuestionIssue{
					{QuestionID: "q-3", QuestionText: "Broken question", Errors: []string{"correct answer is empty"}},
				},
			}, nil
		},
	}
	app := newTestApp(handler.NewPromotionHandler(mockSvc))

	resp, err := app.Test(httptest.NewRequest("GET", "/promotion/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ReadinessSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.TotalFlagged)
	assert.Equal(t, 2, body.ReadyToMigrate)
	assert.Len(t, body.ErrorDetails, 1)
	assert.Equal(t, "q-3", body.ErrorDetails[0].QuestionID)
}

func TestPromotionHandler_MigrateQuestionSuccess(t *testing.T) {
	mockSvc := &MockPromotionService{
		MigrateQuestionFunc: func(ctx context.Context, questionID string) *domain.MigrationResult {
			assert.Equal(t, "q-1", questionID)
			return &domain.MigrationResult{
				Success:       true,
				Message:       "question migrated to production",
				ItemsMigrated: 1,
				Written:       true,
				FlagCleared:   true,
			}
		},
	}
	app := newTestApp(handler.NewPromotionHandler(mockSvc))

	resp, err := app.Test(httptest.NewRequest("POST", "/promotion/questions/q-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.MigrationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.True(t, body.FlagCleared)
	assert.Equal(t, 1, body.ItemsMigrated)
}

func TestPromotionHandler_MigrateQuestionFailureStatuses(t *testing.T) {
	cases := []struct {
		name       string
		code       domain.ErrorCode
		wantStatus int
	}{
		{"not found", domain.ErrNotFound, fiber.StatusNotFound},
		{"unauthenticated", domain.ErrUnauthenticated, fiber.StatusUnauthorized},
		{"duplicate", domain.ErrDuplicateContent, fiber.StatusConflict},
		{"category not migrated", domain.ErrCategoryNotMigrated, fiber.StatusUnprocessableEntity},
		{"store error", domain.ErrStore, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &MockPromotionService{
				MigrateQuestionFunc: func(ctx context.Context, questionID string) *domain.MigrationResult {
					return &domain.MigrationResult{Success: false, Code: tc.code, Message: "rejected"}
				},
			}
			app := newTestApp(handler.NewPromotionHandler(mockSvc))

			resp, err := app.Test(httptest.NewRequest("POST", "/promotion/questions/q-1", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var body dto.MigrationResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, string(tc.code), body.Code)
		})
	}
}

func TestPromotionHandler_RunBatchPartialFailure(t *testing.T) {
	mockSvc := &MockPromotionService{
		MigrateAllFunc: func(ctx context.Context) *domain.BatchResult {
			return &domain.BatchResult{
				Success:       false,
				Message:       "migrated 2 questions, 1 failed",
				ItemsMigrated: 2,
				Failures: []domain.BatchFailure{
					{QuestionID: "q-bad", QuestionText: "Broken", Reason: "category \"Prophecy\" has not been migrated to production"},
				},
				Err: domain.NewPartialBatchFailureError("1 item failed"),
			}
		},
	}
	app := newTestApp(handler.NewPromotionHandler(mockSvc))

	resp, err := app.Test(httptest.NewRequest("POST", "/promotion/batch", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMultiStatus, resp.StatusCode)

	var body dto.BatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, 2, body.ItemsMigrated)
	require.Len(t, body.Failures, 1)
	assert.Equal(t, "q-bad", body.Failures[0].QuestionID)
}

func TestPromotionHandler_RunBatchAllMigrated(t *testing.T) {
	mockSvc := &MockPromotionService{
		MigrateAllFunc: func(ctx context.Context) *domain.BatchResult {
			return &domain.BatchResult{Success: true, Message: "migrated 3 questions", ItemsMigrated: 3}
		},
	}
	app := newTestApp(handler.NewPromotionHandler(mockSvc))

	resp, err := app.Test(httptest.NewRequest("POST", "/promotion/batch", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPromotionHandler_ValidateQuestion(t *testing.T) {
	mockSvc := &MockPromotionService{
		ValidateQuestionFunc: func(ctx context.Context, questionID string) (*domain.ValidationResult, error) {
			return &domain.ValidationResult{
				IsReady:  true,
				Warnings: []string{"missing explanation"},
			}, nil
		},
	}
	app := newTestApp(handler.NewPromotionHandler(mockSvc))

	resp, err := app.Test(httptest.NewRequest("GET", "/promotion/questions/q-1/validation", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ValidationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.IsReady)
	assert.Contains(t, body.Warnings, "missing explanation")
}

func TestPromotionHandler_ValidateQuestionNotFound(t *testing.T) {
	mockSvc := &MockPromotionService{
		ValidateQuestionFunc: func(ctx context.Context, questionID string) (*domain.ValidationResult, error) {
			return nil, domain.NewNotFoundError("staging question not found: nope")
		},
	}
	app := newTestApp(handler.NewPromotionHandler(mockSvc))

	resp, err := app.Test(httptest.NewRequest("GET", "/promotion/questions/nope/validation", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
