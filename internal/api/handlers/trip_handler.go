package handlers

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/internal/api/presenters"
	"Wanderpass-Backend/pkg/trip"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TripHandler interface {
		GetTrips(c *fiber.Ctx) error
		UnlockTrip(c *fiber.Ctx) error
		ClaimTrip(c *fiber.Ctx) error
		GetUserTrips(c *fiber.Ctx) error
		UpdateTripStatus(c *fiber.Ctx) error
	}

	tripHandler struct {
		tripService trip.TripService
		validator   *validator.Validate
	}
)

func NewTripHandler(tripService trip.TripService, validator *validator.Validate) TripHandler {
	return &tripHandler{
		tripService: tripService,
		validator:   validator,
	}
}

func (h *tripHandler) GetTrips(c *fiber.Ctx) error {
	req := domain.GetTripsRequest{
		Category:         c.Query("category"),
		TransportMode:    c.Query("transport"),
		VisuallyImpaired: c.QueryBool("visually_impaired"),
		WheelchairAccess: c.QueryBool("wheelchair_access"),
	}
	req.Limit, req.Offset = parseLimitOffset(c, 20)

	trips, err := h.tripService.GetTrips(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetTrips, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"trips": trips,
		"pagination": fiber.Map{
			"limit":    req.Limit,
			"offset":   req.Offset,
			"has_more": len(trips) == req.Limit,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetTrips)
}

func (h *tripHandler) UnlockTrip(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UnlockTripRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnlockTrip, err)
	}

	resp, err := h.tripService.UnlockTrip(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUnlockTrip, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessUnlockTrip)
}

func (h *tripHandler) ClaimTrip(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UnlockTripRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimTrip, err)
	}

	userTrip, err := h.tripService.ClaimTrip(c.Context(), req.TripID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedClaimTrip, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"user_trip": userTrip,
	}, fiber.StatusCreated, domain.MessageSuccessClaimTrip)
}

func (h *tripHandler) GetUserTrips(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	status := c.Query("status")
	limit, offset := parseLimitOffset(c, 20)

	userTrips, err := h.tripService.GetUserTrips(c.Context(), userID, status, limit, offset)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetUserTrips, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"user_trips": userTrips,
		"pagination": fiber.Map{
			"limit":    limit,
			"offset":   offset,
			"has_more": len(userTrips) == limit,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetUserTrips)
}

func (h *tripHandler) UpdateTripStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UpdateTripStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTripStatus, err)
	}

	if err := h.tripService.UpdateTripStatus(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateTripStatus, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateTripStatus)
}
