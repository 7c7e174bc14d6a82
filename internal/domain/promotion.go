package domain

import "context"

// ValidationResult is the outcome of running the validation engine over a
// staging question. Errors block promotion; warnings are editorial quality
// signals and never do.
type ValidationResult struct {
	IsReady  bool
	Errors   []string
	Warnings []string
}

// MigrationResult is the structured outcome of a single-item promotion.
// Written and FlagCleared model the two phases separately: the production
// insert can succeed while the staging flag-clear fails, which is still an
// overall success (a later run hits the duplicate check and skips).
type MigrationResult struct {
	Success       bool
	Code          ErrorCode
	Message       string
	ItemsMigrated int
	Written       bool
	FlagCleared   bool
}

// BatchFailure records one failed item of a batch run.
type BatchFailure struct {
	QuestionID   string
	QuestionText string
	Reason       string
}

// BatchResult aggregates a full batch run. Every per-item outcome stays
// inspectable; Err carries the combined failure list when any item failed.
type BatchResult struct {
	Success       bool
	Message       string
	ItemsMigrated int
	Failures      []BatchFailure
	Err           *DomainError
}

// QuestionIssue pairs a flagged question with its blocking errors.
type QuestionIssue struct {
	QuestionID   string
	QuestionText string
	Errors       []string
}

// ReadinessSummary is a read-only preview of a batch run.
// HasWarningsOnly is a subset of ReadyToMigrate.
type ReadinessSummary struct {
	TotalFlagged    int
	ReadyToMigrate  int
	HasWarningsOnly int
	HasErrors       int
	ErrorDetails    []QuestionIssue
}

// CategoryRepository defines category persistence against a named table.
// The table argument is the concrete, environment-resolved name; the
// repository itself is environment-agnostic.
type CategoryRepository interface {
	GetAll(ctx context.Context, table string) ([]*Category, error)
	GetByID(ctx context.Context, table, id string) (*Category, error)

	// GetByName returns the category with the exact name, or nil if none
	// exists. Name equality is the only cross-environment identity link.
	GetByName(ctx context.Context, table, name string) (*Category, error)

	Save(ctx context.Context, table string, category *Category) error
	Update(ctx context.Context, table string, category *Category) error
}

// QuestionRepository defines question persistence against a named table.
type QuestionRepository interface {
	GetByID(ctx context.Context, table, id string) (*Question, error)

	// GetByText returns the question with the exact (case-sensitive) text,
	// or nil if none exists. Text equality is the duplicate-detection and
	// idempotency key for promotion.
	GetByText(ctx context.Context, table, text string) (*Question, error)

	GetByCategory(ctx context.Context, table, categoryID string) ([]*Question, error)

	// GetFlagged returns every question with ready_for_prod set.
	GetFlagged(ctx context.Context, table string) ([]*Question, error)

	Save(ctx context.Context, table string, question *Question) error
	Update(ctx context.Context, table string, question *Question) error
	SetReadyFlag(ctx context.Context, table, id string, ready bool) error
}

// AuthChecker is the external auth collaborator, reduced to the single
// capability the pipeline consults before any production write.
type AuthChecker interface {
	IsAuthenticated(ctx context.Context) bool
}

type callerContextKey struct{}

// WithCaller marks ctx as carrying an authenticated caller.
func WithCaller(ctx context.Context, callerID string) context.Context {
	return context.WithValue(ctx, callerContextKey{}, callerID)
}

// CallerID returns the authenticated caller id from ctx, if any.
func CallerID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(callerContextKey{}).(string)
	return id, ok && id != ""
}
