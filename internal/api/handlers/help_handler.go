package handlers

import (
	"errors"

	"hustleke/internal/dto"
	"hustleke/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HelpHandler struct {
	helpService   *service.HelpService
	answerService *service.AnswerService
	logger        *zap.Logger
}

func NewHelpHandler(helpService *service.HelpService, answerService *service.AnswerService, logger *zap.Logger) *HelpHandler {
	return &HelpHandler{
		helpService:   helpService,
		answerService: answerService,
		logger:        logger,
	}
}

// Search godoc
// @Summary Search the help center
// @Description Rank FAQ entries against a free-text query. Queries shorter than 2 significant characters are not searched.
// @Tags help
// @Produce json
// @Param q query string true "Search query"
// @Param category query string false "Restrict to a category"
// @Param limit query int false "Maximum results" default(5)
// @Success 200 {object} dto.SearchResponse
// @Router /help/search [get]
func (h *HelpHandler) Search(c *fiber.Ctx) error {
	resp := h.helpService.Search(c.Query("q"), c.Query("category"), c.QueryInt("limit", 0))
	return c.JSON(resp)
}

// Categories godoc
// @Summary List help center categories
// @Tags help
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /help/categories [get]
func (h *HelpHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(dto.CategoriesResponse{Categories: h.helpService.Categories()})
}

// Ask godoc
// @Summary Ask the AI assistant
// @Description Ask a question; the answer is grounded on the best local FAQ matches. Requires at least 3 significant characters.
// @Tags help
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Question"
// @Success 200 {object} dto.AskResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /help/ask [post]
func (h *HelpHandler) Ask(c *fiber.Ctx) error {
	var req dto.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.answerService.Ask(c.UserContext(), req.Question)
	switch {
	case errors.Is(err, service.ErrQueryTooShort):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Question must have at least 3 significant characters",
		})
	case errors.Is(err, service.ErrAIUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "AI answers are not available",
		})
	case err != nil:
		h.logger.Error("Ask failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to answer question",
		})
	}

	return c.JSON(resp)
}
