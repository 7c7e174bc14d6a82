package handler

import (
	"bible-trivia/internal/domain"
	"bible-trivia/internal/dto"
	"bible-trivia/internal/logger"
	"bible-trivia/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PromotionHandler handles the staging-to-production promotion endpoints.
type PromotionHandler struct {
	service service.PromotionService
}

// NewPromotionHandler creates a new PromotionHandler instance
func NewPromotionHandler(service service.PromotionService) *PromotionHandler {
	return &PromotionHandler{service: service}
}

// GetStatus handles GET /api/admin/promotion/status
func (h *PromotionHandler) GetStatus(c *fiber.Ctx) error {
	summary, err := h.service.Summarize(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReadinessSummaryResponse(summary))
}

// ValidateQuestion handles GET /api/admin/promotion/questions/:id/validation
func (h *PromotionHandler) ValidateQuestion(c *fiber.Ctx) error {
	questionID := c.Params("id")
	if questionID == "" {
		return domain.NewInvalidInputError("question id is required")
	}

	result, err := h.service.ValidateQuestion(c.UserContext(), questionID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewValidationResponse(result))
}

// MigrateQuestion handles POST /api/admin/promotion/questions/:id
func (h *PromotionHandler) MigrateQuestion(c *fiber.Ctx) error {
	questionID := c.Params("id")
	if questionID == "" {
		return domain.NewInvalidInputError("question id is required")
	}

	result := h.service.MigrateQuestion(c.UserContext(), questionID)
	if !result.Success {
		logger.Get().Warn("Question migration rejected",
			zap.String("question_id", questionID),
			zap.String("code", string(result.Code)),
		)
		return c.Status(statusForCode(result.Code)).JSON(dto.NewMigrationResponse(result))
	}
	return c.JSON(dto.NewMigrationResponse(result))
}

// PromoteCategory handles POST /api/admin/promotion/categories/:id
func (h *PromotionHandler) PromoteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	if categoryID == "" {
		return domain.NewInvalidInputError("category id is required")
	}

	result := h.service.PromoteCategory(c.UserContext(), categoryID)
	if !result.Success {
		return c.Status(statusForCode(result.Code)).JSON(dto.NewMigrationResponse(result))
	}
	return c.JSON(dto.NewMigrationResponse(result))
}

// RunBatch handles POST /api/admin/promotion/batch
func (h *PromotionHandler) RunBatch(c *fiber.Ctx) error {
	result := h.service.MigrateAll(c.UserContext())
	if result.Err != nil && result.Err.Code != domain.ErrPartialBatchFailure {
		return result.Err
	}
	if !result.Success {
		// Partial outcome: some items migrated, some failed.
		return c.Status(fiber.StatusMultiStatus).JSON(dto.NewBatchResponse(result))
	}
	return c.JSON(dto.NewBatchResponse(result))
}

// statusForCode maps structured migration outcomes to HTTP status codes.
func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.ErrNotFound:
		return fiber.StatusNotFound
	case domain.ErrUnauthenticated:
		return fiber.StatusUnauthorized
	case domain.ErrDuplicateContent:
		return fiber.StatusConflict
	case domain.ErrCategoryNotMigrated:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
