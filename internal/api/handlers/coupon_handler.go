package handlers

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/internal/api/presenters"
	"Wanderpass-Backend/pkg/coupon"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CouponHandler interface {
		GetCoupons(c *fiber.Ctx) error
		RedeemCoupon(c *fiber.Ctx) error
		GetUserCoupons(c *fiber.Ctx) error
		UseCoupon(c *fiber.Ctx) error
	}

	couponHandler struct {
		couponService coupon.CouponService
		validator     *validator.Validate
	}
)

func NewCouponHandler(couponService coupon.CouponService, validator *validator.Validate) CouponHandler {
	return &couponHandler{
		couponService: couponService,
		validator:     validator,
	}
}

func (h *couponHandler) GetCoupons(c *fiber.Ctx) error {
	req := domain.GetCouponsRequest{
		Category: c.Query("category"),
	}
	req.Limit, req.Offset = parseLimitOffset(c, 20)

	coupons, err := h.couponService.GetCoupons(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetCoupons, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"coupons": coupons,
		"pagination": fiber.Map{
			"limit":    req.Limit,
			"offset":   req.Offset,
			"has_more": len(coupons) == req.Limit,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetCoupons)
}

func (h *couponHandler) RedeemCoupon(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.RedeemCouponRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRedeemCoupon, err)
	}

	resp, err := h.couponService.RedeemCoupon(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedRedeemCoupon, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessRedeemCoupon)
}

func (h *couponHandler) GetUserCoupons(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	status := c.Query("status")
	limit, offset := parseLimitOffset(c, 20)

	userCoupons, err := h.couponService.GetUserCoupons(c.Context(), userID, status, limit, offset)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetUserCoupons, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"coupons": userCoupons,
		"pagination": fiber.Map{
			"limit":    limit,
			"offset":   offset,
			"has_more": len(userCoupons) == limit,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetUserCoupons)
}

func (h *couponHandler) UseCoupon(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UseCouponRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUseCoupon, err)
	}

	userCoupon, err := h.couponService.UseCoupon(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUseCoupon, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"user_coupon": userCoupon,
	}, fiber.StatusOK, domain.MessageSuccessUseCoupon)
}
