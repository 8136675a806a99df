package coupon

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	CouponRepository interface {
		GetCoupons(ctx context.Context, category string, limit, offset int) ([]*entities.Coupon, error)
		GetCouponByID(ctx context.Context, id string) (*entities.Coupon, error)
		CreateCoupon(ctx context.Context, coupon *entities.Coupon) error

		GetUserCouponByID(ctx context.Context, id string) (*entities.UserCoupon, error)
		GetUserCoupons(ctx context.Context, userID string, limit, offset int) ([]*entities.UserCoupon, error)
		MarkCouponUsed(ctx context.Context, userCouponID string, usedAt time.Time) error

		// RedeemCoupon commits the redemption record, the debit ledger row and
		// the redemption-count increment in one transaction. The increment is
		// guarded by the max-redemption cap so the cap cannot be exceeded by
		// concurrent redemptions.
		RedeemCoupon(ctx context.Context, userCoupon *entities.UserCoupon, transaction *entities.TokenTransaction) error
	}

	couponRepository struct {
		db *gorm.DB
	}
)

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) GetCoupons(ctx context.Context, category string, limit, offset int) ([]*entities.Coupon, error) {
	var coupons []*entities.Coupon

	query := r.db.WithContext(ctx).
		Where("is_active = ? AND valid_until >= ?", true, time.Now())
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&coupons).Error; err != nil {
		return nil, err
	}

	return coupons, nil
}

func (r *couponRepository) GetCouponByID(ctx context.Context, id string) (*entities.Coupon, error) {
	var coupon entities.Coupon
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) CreateCoupon(ctx context.Context, coupon *entities.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *couponRepository) GetUserCouponByID(ctx context.Context, id string) (*entities.UserCoupon, error) {
	var userCoupon entities.UserCoupon
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userCoupon).Error; err != nil {
		return nil, err
	}
	return &userCoupon, nil
}

func (r *couponRepository) GetUserCoupons(ctx context.Context, userID string, limit, offset int) ([]*entities.UserCoupon, error) {
	var userCoupons []*entities.UserCoupon
	if err := r.db.WithContext(ctx).
		Preload("Coupon").
		Where("user_id = ?", userID).
		Order("redeemed_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&userCoupons).Error; err != nil {
		return nil, err
	}
	return userCoupons, nil
}

func (r *couponRepository) MarkCouponUsed(ctx context.Context, userCouponID string, usedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entities.UserCoupon{}).
		Where("id = ?", userCouponID).
		Updates(map[string]interface{}{
			"is_used": true,
			"used_at": usedAt,
		}).Error
}

func (r *couponRepository) RedeemCoupon(ctx context.Context, userCoupon *entities.UserCoupon, transaction *entities.TokenTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Coupon{}).
			Where("id = ? AND (max_redemptions IS NULL OR current_redemptions < max_redemptions)", userCoupon.CouponID).
			UpdateColumn("current_redemptions", gorm.Expr("current_redemptions + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrCouponMaxRedemptions
		}

		if err := tx.Create(userCoupon).Error; err != nil {
			return err
		}

		return tx.Create(transaction).Error
	})
}
