package dto

import "bible-trivia/internal/domain"

// ModeResponse reports the environment the app is currently pointed at.
type ModeResponse struct {
	Mode string `json:"mode"`
}

// SetModeRequest switches the active environment.
type SetModeRequest struct {
	Mode string `json:"mode"`
}

// ValidationResponse is the readiness verdict for one staging question.
type ValidationResponse struct {
	IsReady  bool     `json:"is_ready"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func NewValidationResponse(result *domain.ValidationResult) ValidationResponse {
	return ValidationResponse{
		IsReady:  result.IsReady,
		Errors:   result.Errors,
		Warnings: result.Warnings,
	}
}

// MigrationResponse is the outcome of a single-item promotion.
type MigrationResponse struct {
	Success       bool   `json:"success"`
	Code          string `json:"code,omitempty"`
	Message       string `json:"message"`
	ItemsMigrated int    `json:"items_migrated"`
	Written       bool   `json:"written"`
	FlagCleared   bool   `json:"flag_cleared"`
}

func NewMigrationResponse(result *domain.MigrationResult) MigrationResponse {
	return MigrationResponse{
		Success:       result.Success,
		Code:          string(result.Code),
		Message:       result.Message,
		ItemsMigrated: result.ItemsMigrated,
		Written:       result.Written,
		FlagCleared:   result.FlagCleared,
	}
}

// BatchFailureItem describes one question that could not be promoted.
type BatchFailureItem struct {
	QuestionID   string `json:"question_id"`
	QuestionText string `json:"question_text"`
	Reason       string `json:"reason"`
}

// BatchResponse is the outcome of a full batch run.
type BatchResponse struct {
	Success       bool               `json:"success"`
	Message       string             `json:"message"`
	ItemsMigrated int                `json:"items_migrated"`
	Failures      []BatchFailureItem `json:"failures,omitempty"`
}

func NewBatchResponse(result *domain.BatchResult) BatchResponse {
	resp := BatchResponse{
		Success:       result.Success,
		Message:       result.Message,
		ItemsMigrated: result.ItemsMigrated,
	}
	for _, f := range result.Failures {
		resp.Failures = append(resp.Failures, BatchFailureItem{
			QuestionID:   f.QuestionID,
			QuestionText: f.QuestionText,
			Reason:       f.Reason,
		})
	}
	return resp
}

// QuestionIssueItem lists the blocking errors of one flagged question.
type QuestionIssueItem struct {
	QuestionID   string   `json:"question_id"`
	QuestionText string   `json:"question_text"`
	Errors       []string `json:"errors"`
}

// ReadinessSummaryResponse previews a batch run without writing anything.
type ReadinessSummaryResponse struct {
	TotalFlagged    int                 `json:"total_flagged"`
	ReadyToMigrate  int                 `json:"ready_to_migrate"`
	HasWarningsOnly int                 `json:"has_warnings_only"`
	HasErrors       int                 `json:"has_errors"`
	ErrorDetails    []QuestionIssueItem `json:"error_details,omitempty"`
}

func NewReadinessSummaryResponse(summary *domain.ReadinessSummary) ReadinessSummaryResponse {
	resp := ReadinessSummaryResponse{
		TotalFlagged:    summary.TotalFlagged,
		ReadyToMigrate:  summary.ReadyToMigrate,
		HasWarningsOnly: summary.HasWarningsOnly,
		HasErrors:       summary.HasErrors,
	}
	for _, issue := range summary.ErrorDetails {
		resp.ErrorDetails = append(resp.ErrorDetails, QuestionIssueItem{
			QuestionID:   issue.QuestionID,
			QuestionText: issue.QuestionText,
			Errors:       issue.Errors,
		})
	}
	return resp
}
