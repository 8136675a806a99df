package coupon

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/entities"
	"Wanderpass-Backend/pkg/token"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	CouponService interface {
		GetCoupons(ctx context.Context, req domain.GetCouponsRequest) ([]*domain.Coupon, error)
		RedeemCoupon(ctx context.Context, req domain.RedeemCouponRequest, userID string) (*domain.RedeemCouponResponse, error)
		GetUserCoupons(ctx context.Context, userID, status string, limit, offset int) ([]*domain.UserCoupon, error)
		UseCoupon(ctx context.Context, req domain.UseCouponRequest, userID string) (*domain.UserCoupon, error)
	}

	couponService struct {
		couponRepository CouponRepository
		tokenRepository  token.TokenRepository
	}
)

func NewCouponService(couponRepository CouponRepository, tokenRepository token.TokenRepository) CouponService {
	return &couponService{
		couponRepository: couponRepository,
		tokenRepository:  tokenRepository,
	}
}

func (s *couponService) GetCoupons(ctx context.Context, req domain.GetCouponsRequest) ([]*domain.Coupon, error) {
	coupons, err := s.couponRepository.GetCoupons(ctx, req.Category, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Coupon, 0, len(coupons))
	for _, coupon := range coupons {
		result = append(result, toDomainCoupon(coupon))
	}

	return result, nil
}

func (s *couponService) RedeemCoupon(ctx context.Context, req domain.RedeemCouponRequest, userID string) (*domain.RedeemCouponResponse, error) {
	coupon, err := s.couponRepository.GetCouponByID(ctx, req.CouponID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, err
	}

	if !coupon.IsActive || time.Now().After(coupon.ValidUntil) {
		return nil, domain.ErrCouponNotValid
	}

	if coupon.MaxRedemptions != nil && coupon.CurrentRedemptions >= *coupon.MaxRedemptions {
		return nil, domain.ErrCouponMaxRedemptions
	}

	currentBalance, err := s.tokenRepository.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if currentBalance < coupon.TokenCost {
		return nil, &domain.InsufficientTokensError{Required: coupon.TokenCost, Current: currentBalance}
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	redemptionCode, err := generateRedemptionCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	userCoupon := &entities.UserCoupon{
		ID:             uuid.New(),
		UserID:         userUUID,
		CouponID:       coupon.ID,
		RedemptionCode: redemptionCode,
		IsUsed:         false,
		RedeemedAt:     now,
		ExpiresAt:      coupon.ValidUntil, // fixed at issuance
	}

	sourceID := coupon.ID.String()
	transaction := &entities.TokenTransaction{
		ID:          uuid.New(),
		UserID:      userUUID,
		Amount:      -coupon.TokenCost,
		Kind:        entities.TokenKindSpent,
		Source:      entities.TokenSourceCoupon,
		SourceID:    &sourceID,
		Description: fmt.Sprintf("Redeemed coupon: %s", coupon.Title),
		Metadata: datatypes.JSONMap{
			"coupon_id":       coupon.ID.String(),
			"redemption_code": redemptionCode,
			"business_name":   coupon.BusinessName,
		},
		CreatedAt: now,
	}

	if err := s.couponRepository.RedeemCoupon(ctx, userCoupon, transaction); err != nil {
		return nil, err
	}
	coupon.CurrentRedemptions++

	return &domain.RedeemCouponResponse{
		UserCoupon: toDomainUserCoupon(userCoupon),
		Coupon:     toDomainCoupon(coupon),
	}, nil
}

func (s *couponService) GetUserCoupons(ctx context.Context, userID, status string, limit, offset int) ([]*domain.UserCoupon, error) {
	userCoupons, err := s.couponRepository.GetUserCoupons(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]*domain.UserCoupon, 0, len(userCoupons))
	for _, userCoupon := range userCoupons {
		switch status {
		case "used":
			if !userCoupon.IsUsed {
				continue
			}
		case "expired":
			if userCoupon.IsUsed || userCoupon.ExpiresAt.After(now) {
				continue
			}
		case "active":
			if userCoupon.IsUsed || userCoupon.ExpiresAt.Before(now) {
				continue
			}
		}

		item := toDomainUserCoupon(userCoupon)
		if userCoupon.Coupon != nil {
			item.Coupon = toDomainCoupon(userCoupon.Coupon)
		}
		result = append(result, item)
	}

	return result, nil
}

// UseCoupon records merchant-side redemption. It never touches the ledger;
// the tokens were spent when the coupon was redeemed.
func (s *couponService) UseCoupon(ctx context.Context, req domain.UseCouponRequest, userID string) (*domain.UserCoupon, error) {
	userCoupon, err := s.couponRepository.GetUserCouponByID(ctx, req.UserCouponID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserCouponNotFound
		}
		return nil, err
	}

	if userCoupon.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	if userCoupon.IsUsed {
		return nil, domain.ErrCouponAlreadyUsed
	}
	if time.Now().After(userCoupon.ExpiresAt) {
		return nil, domain.ErrCouponExpired
	}

	usedAt := time.Now()
	if err := s.couponRepository.MarkCouponUsed(ctx, req.UserCouponID, usedAt); err != nil {
		return nil, err
	}

	userCoupon.IsUsed = true
	userCoupon.UsedAt = &usedAt
	return toDomainUserCoupon(userCoupon), nil
}

const redemptionCodeCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// generateRedemptionCode returns a human-shareable code such as HK483920XX7Q.
// Collisions are extremely improbable; the unique constraint on the column is
// the final arbiter.
func generateRedemptionCode() (string, error) {
	epoch := fmt.Sprintf("%d", time.Now().UnixMilli())
	code := "HK" + epoch[len(epoch)-6:]
	for i := 0; i < 4; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(redemptionCodeCharset))))
		if err != nil {
			return "", err
		}
		code += string(redemptionCodeCharset[n.Int64()])
	}
	return code, nil
}

func toDomainCoupon(coupon *entities.Coupon) *domain.Coupon {
	return &domain.Coupon{
		ID:                 coupon.ID.String(),
		Title:              coupon.Title,
		Description:        coupon.Description,
		BusinessName:       coupon.BusinessName,
		BusinessAddress:    coupon.BusinessAddress,
		DiscountType:       coupon.DiscountType,
		DiscountValue:      coupon.DiscountValue,
		TokenCost:          coupon.TokenCost,
		Category:           coupon.Category,
		ImageURL:           coupon.ImageURL,
		Terms:              coupon.Terms,
		ValidFrom:          coupon.ValidFrom,
		ValidUntil:         coupon.ValidUntil,
		MaxRedemptions:     coupon.MaxRedemptions,
		CurrentRedemptions: coupon.CurrentRedemptions,
	}
}

func toDomainUserCoupon(userCoupon *entities.UserCoupon) *domain.UserCoupon {
	return &domain.UserCoupon{
		ID:             userCoupon.ID.String(),
		UserID:         userCoupon.UserID.String(),
		CouponID:       userCoupon.CouponID.String(),
		RedemptionCode: userCoupon.RedemptionCode,
		IsUsed:         userCoupon.IsUsed,
		UsedAt:         userCoupon.UsedAt,
		RedeemedAt:     userCoupon.RedeemedAt,
		ExpiresAt:      userCoupon.ExpiresAt,
	}
}
