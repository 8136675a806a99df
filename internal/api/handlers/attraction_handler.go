package handlers

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/internal/api/presenters"
	"Wanderpass-Backend/pkg/attraction"

	"github.com/gofiber/fiber/v2"
)

type (
	AttractionHandler interface {
		GetAttractions(c *fiber.Ctx) error
	}

	attractionHandler struct {
		attractionService attraction.AttractionService
	}
)

func NewAttractionHandler(attractionService attraction.AttractionService) AttractionHandler {
	return &attractionHandler{attractionService: attractionService}
}

func (h *attractionHandler) GetAttractions(c *fiber.Ctx) error {
	category := c.Query("category")
	limit, offset := parseLimitOffset(c, 20)

	attractions, total, err := h.attractionService.GetAttractions(c.Context(), category, limit, offset)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetAttractions, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"attractions": attractions,
		"pagination": fiber.Map{
			"limit":  limit,
			"offset": offset,
			"total":  total,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetAttraction)
}
