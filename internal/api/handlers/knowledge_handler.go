package handlers

import (
	"errors"

	"hustleke/internal/dto"
	"hustleke/internal/repository"
	"hustleke/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KnowledgeHandler struct {
	knowledgeService *service.KnowledgeService
	logger           *zap.Logger
}

func NewKnowledgeHandler(knowledgeService *service.KnowledgeService, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledgeService: knowledgeService,
		logger:           logger,
	}
}

// Create godoc
// @Summary Add a help center entry
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateKnowledgeRequest true "Entry"
// @Security Bearer
// @Success 201 {object} dto.KnowledgeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/knowledge [post]
func (h *KnowledgeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateKnowledgeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.knowledgeService.Create(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidKnowledge) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if errors.Is(err, repository.ErrDuplicateQuestion) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "An entry with this question already exists",
			})
		}
		h.logger.Error("Failed to create knowledge entry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create knowledge entry",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get godoc
// @Summary Get a help center entry, including deactivated ones
// @Tags admin
// @Produce json
// @Param id path string true "Entry ID"
// @Security Bearer
// @Success 200 {object} dto.KnowledgeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/knowledge/{id} [get]
func (h *KnowledgeHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entry ID",
		})
	}

	resp, err := h.knowledgeService.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrKnowledgeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Entry not found",
			})
		}
		h.logger.Error("Failed to get knowledge entry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get entry",
		})
	}

	return c.JSON(resp)
}

// Deactivate godoc
// @Summary Remove a help center entry from search
// @Tags admin
// @Param id path string true "Entry ID"
// @Security Bearer
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/knowledge/{id} [delete]
func (h *KnowledgeHandler) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entry ID",
		})
	}

	if err := h.knowledgeService.Deactivate(c.UserContext(), id); err != nil {
		if errors.Is(err, repository.ErrKnowledgeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Entry not found",
			})
		}
		h.logger.Error("Failed to deactivate knowledge entry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to deactivate entry",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Reload godoc
// @Summary Reload the search snapshot from the database
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ReloadResponse
// @Router /admin/knowledge/reload [post]
func (h *KnowledgeHandler) Reload(c *fiber.Ctx) error {
	resp, err := h.knowledgeService.Reload(c.UserContext())
	if err != nil {
		h.logger.Error("Knowledge reload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reload knowledge base",
		})
	}
	return c.JSON(resp)
}
