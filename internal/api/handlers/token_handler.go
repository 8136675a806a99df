package handlers

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/internal/api/presenters"
	"Wanderpass-Backend/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TokenHandler interface {
		GetTokenHistory(c *fiber.Ctx) error
		GetTokenStats(c *fiber.Ctx) error
		CreateTokenTransaction(c *fiber.Ctx) error
	}

	tokenHandler struct {
		tokenService token.TokenService
		validator    *validator.Validate
	}
)

func NewTokenHandler(tokenService token.TokenService, validator *validator.Validate) TokenHandler {
	return &tokenHandler{
		tokenService: tokenService,
		validator:    validator,
	}
}

func (h *tokenHandler) GetTokenHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	limit, offset := parseLimitOffset(c, 50)

	resp, err := h.tokenService.GetTokenHistory(c.Context(), userID, limit, offset)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetTokenHistory, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetTokenHistory)
}

func (h *tokenHandler) GetTokenStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.tokenService.GetTokenStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetTokenStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetTokenStats)
}

func (h *tokenHandler) CreateTokenTransaction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateTokenTransactionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateToken, err)
	}

	transaction, err := h.tokenService.CreateTransaction(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateToken, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"token_transaction": transaction,
	}, fiber.StatusCreated, domain.MessageSuccessCreateToken)
}
