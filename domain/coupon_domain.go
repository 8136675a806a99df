package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCoupons     = "coupons retrieved successfully"
	MessageSuccessRedeemCoupon   = "coupon redeemed successfully"
	MessageSuccessGetUserCoupons = "user coupons retrieved successfully"
	MessageSuccessUseCoupon      = "coupon marked as used successfully"

	MessageFailedGetCoupons     = "failed to retrieve coupons"
	MessageFailedRedeemCoupon   = "failed to redeem coupon"
	MessageFailedGetUserCoupons = "failed to retrieve user coupons"
	MessageFailedUseCoupon      = "failed to mark coupon as used"

	ErrCouponNotFound       = errors.New("coupon not found")
	ErrCouponNotValid       = errors.New("coupon is no longer valid")
	ErrCouponMaxRedemptions = errors.New("coupon has reached maximum redemptions")
	ErrUserCouponNotFound   = errors.New("user coupon not found")
	ErrCouponAlreadyUsed    = errors.New("coupon already used")
	ErrCouponExpired        = errors.New("coupon has expired")
)

type (
	GetCouponsRequest struct {
		Category string `query:"category"`
		Limit    int    `query:"limit"`
		Offset   int    `query:"offset"`
	}

	RedeemCouponRequest struct {
		CouponID string `json:"coupon_id" validate:"required,uuid"`
	}

	UseCouponRequest struct {
		UserCouponID string `json:"user_coupon_id" validate:"required,uuid"`
	}

	Coupon struct {
		ID                 string    `json:"id"`
		Title              string    `json:"title"`
		Description        string    `json:"description"`
		BusinessName       string    `json:"business_name"`
		BusinessAddress    string    `json:"business_address,omitempty"`
		DiscountType       string    `json:"discount_type"`
		DiscountValue      int       `json:"discount_value"`
		TokenCost          int       `json:"token_cost"`
		Category           string    `json:"category"`
		ImageURL           string    `json:"image_url,omitempty"`
		Terms              string    `json:"terms,omitempty"`
		ValidFrom          time.Time `json:"valid_from"`
		ValidUntil         time.Time `json:"valid_until"`
		MaxRedemptions     *int      `json:"max_redemptions,omitempty"`
		CurrentRedemptions int       `json:"current_redemptions"`
	}

	UserCoupon struct {
		ID             string     `json:"id"`
		UserID         string     `json:"user_id"`
		CouponID       string     `json:"coupon_id"`
		RedemptionCode string     `json:"redemption_code"`
		IsUsed         bool       `json:"is_used"`
		UsedAt         *time.Time `json:"used_at,omitempty"`
		RedeemedAt     time.Time  `json:"redeemed_at"`
		ExpiresAt      time.Time  `json:"expires_at"`
		Coupon         *Coupon    `json:"coupon,omitempty"`
	}

	RedeemCouponResponse struct {
		UserCoupon *UserCoupon `json:"user_coupon"`
		Coupon     *Coupon     `json:"coupon"`
	}
)
