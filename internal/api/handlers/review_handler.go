package handlers

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/internal/api/presenters"
	"Wanderpass-Backend/pkg/review"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewHandler interface {
		CreateReview(c *fiber.Ctx) error
		GetAttractionReviews(c *fiber.Ctx) error
		GetMyReviews(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *reviewHandler) CreateReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReview, err)
	}

	// Optional review photo, multipart only
	if photo, err := c.FormFile("photo"); err == nil {
		req.Photo = photo
	}

	resp, err := h.reviewService.CreateReview(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateReview, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessCreateReview)
}

func (h *reviewHandler) GetAttractionReviews(c *fiber.Ctx) error {
	attractionID := c.Params("id")
	limit, offset := parseLimitOffset(c, 20)

	reviews, err := h.reviewService.GetAttractionReviews(c.Context(), attractionID, limit, offset)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"reviews": reviews,
	}, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) GetMyReviews(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	limit, offset := parseLimitOffset(c, 20)

	reviews, err := h.reviewService.GetUserReviews(c.Context(), userID, limit, offset)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"reviews": reviews,
		"pagination": fiber.Map{
			"limit":    limit,
			"offset":   offset,
			"has_more": len(reviews) == limit,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetReviews)
}
