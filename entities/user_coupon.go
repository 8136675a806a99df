package entities

import (
	"time"

	"github.com/google/uuid"
)

type UserCoupon struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID  `gorm:"index" json:"user_id"`
	CouponID       uuid.UUID  `json:"coupon_id"`
	RedemptionCode string     `gorm:"unique" json:"redemption_code"`
	IsUsed         bool       `json:"is_used"`
	UsedAt         *time.Time `json:"used_at,omitempty"`
	RedeemedAt     time.Time  `json:"redeemed_at"`
	ExpiresAt      time.Time  `json:"expires_at"` // copied from the coupon's valid_until at redemption time

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Coupon *Coupon `gorm:"foreignKey:CouponID" json:"coupon,omitempty"`
	Timestamp
}
