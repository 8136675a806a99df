package handlers

import (
	"Wanderpass-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps a service error to the HTTP status reported at the
// boundary. Anything unrecognized is an internal failure and stays generic.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrAttractionNotFound),
		errors.Is(err, domain.ErrTripNotFound),
		errors.Is(err, domain.ErrUserTripNotFound),
		errors.Is(err, domain.ErrCouponNotFound),
		errors.Is(err, domain.ErrUserCouponNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound

	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden

	case errors.Is(err, domain.ErrDuplicateReview),
		errors.Is(err, domain.ErrTripAlreadyOwned),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict

	case errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrEmptyReviewContent),
		errors.Is(err, domain.ErrTripNotLockable),
		errors.Is(err, domain.ErrTripNotFree),
		errors.Is(err, domain.ErrInvalidTripStatus),
		errors.Is(err, domain.ErrCouponNotValid),
		errors.Is(err, domain.ErrCouponMaxRedemptions),
		errors.Is(err, domain.ErrCouponAlreadyUsed),
		errors.Is(err, domain.ErrCouponExpired),
		errors.Is(err, domain.ErrInvalidTreeCount),
		errors.Is(err, domain.ErrInsufficientTokens),
		errors.Is(err, domain.ErrInvalidTokenKind),
		errors.Is(err, domain.ErrZeroTokenAmount),
		errors.Is(err, domain.ErrWrongCredentials),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest

	default:
		return fiber.StatusInternalServerError
	}
}

func parseLimitOffset(c *fiber.Ctx, defaultLimit int) (int, int) {
	limit := c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
