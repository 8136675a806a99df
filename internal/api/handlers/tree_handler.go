package handlers

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/internal/api/presenters"
	"Wanderpass-Backend/pkg/tree"

	"github.com/gofiber/fiber/v2"
)

type (
	TreeHandler interface {
		PlantTrees(c *fiber.Ctx) error
		GetUserTrees(c *fiber.Ctx) error
	}

	treeHandler struct {
		treeService tree.TreeService
	}
)

func NewTreeHandler(treeService tree.TreeService) TreeHandler {
	return &treeHandler{treeService: treeService}
}

func (h *treeHandler) PlantTrees(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.PlantTreesRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	resp, err := h.treeService.PlantTrees(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedPlantTrees, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessPlantTrees)
}

func (h *treeHandler) GetUserTrees(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	limit, offset := parseLimitOffset(c, 20)

	resp, err := h.treeService.GetUserTrees(c.Context(), userID, limit, offset)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetTrees, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetTrees)
}
