package handler

import (
	"bible-trivia/internal/domain"
	"bible-trivia/internal/dto"
	"bible-trivia/internal/environment"
	"bible-trivia/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler handles environment-aware content access.
type ContentHandler struct {
	service service.ContentService
}

// NewContentHandler creates a new ContentHandler instance
func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// GetMode handles GET /api/admin/environment
func (h *ContentHandler) GetMode(c *fiber.Ctx) error {
	mode, err := h.service.CurrentMode(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.ModeResponse{Mode: string(mode)})
}

// SetMode handles PUT /api/admin/environment
func (h *ContentHandler) SetMode(c *fiber.Ctx) error {
	var req dto.SetModeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	mode, err := environment.ParseMode(req.Mode)
	if err != nil {
		return domain.NewInvalidInputError(err.Error())
	}

	if err := h.service.SetMode(c.UserContext(), mode); err != nil {
		return err
	}
	return c.JSON(dto.ModeResponse{Mode: string(mode)})
}

// ListCategories handles GET /api/admin/categories
func (h *ContentHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, dto.NewCategoryResponse(category))
	}
	return c.JSON(resp)
}

// ListQuestions handles GET /api/admin/questions?category_id=...
func (h *ContentHandler) ListQuestions(c *fiber.Ctx) error {
	categoryID := c.Query("category_id")

	questions, err := h.service.ListQuestions(c.UserContext(), categoryID)
	if err != nil {
		return err
	}

	resp := make([]dto.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		resp = append(resp, dto.NewQuestionResponse(question))
	}
	return c.JSON(resp)
}

// CreateQuestion handles POST /api/admin/questions
func (h *ContentHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	question := req.ToDomain()
	if err := h.service.SaveDraft(c.UserContext(), question); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewQuestionResponse(question))
}

// FlagQuestion handles PUT /api/admin/questions/:id/flag
func (h *ContentHandler) FlagQuestion(c *fiber.Ctx) error {
	questionID := c.Params("id")
	if questionID == "" {
		return domain.NewInvalidInputError("question id is required")
	}

	var req dto.FlagRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	if err := h.service.FlagForPromotion(c.UserContext(), questionID, req.Ready); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
