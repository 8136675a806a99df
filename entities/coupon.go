package entities

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	BusinessName       string    `json:"business_name"`
	BusinessAddress    string    `json:"business_address,omitempty"`
	DiscountType       string    `json:"discount_type"` // "percentage", "fixed_amount", "bogo"
	DiscountValue      int       `json:"discount_value"`
	OriginalPrice      *int      `json:"original_price,omitempty"`
	FinalPrice         *int      `json:"final_price,omitempty"`
	TokenCost          int       `json:"token_cost"`
	Category           string    `json:"category"`
	ImageURL           string    `json:"image_url,omitempty"`
	Terms              string    `json:"terms,omitempty"`
	ValidFrom          time.Time `json:"valid_from"`
	ValidUntil         time.Time `json:"valid_until"`
	IsActive           bool      `json:"is_active"`
	MaxRedemptions     *int      `json:"max_redemptions,omitempty"` // nil = unlimited
	CurrentRedemptions int       `json:"current_redemptions"`       // incremented per redemption, never decremented

	Timestamp
}

const (
	DiscountTypePercentage  = "percentage"
	DiscountTypeFixedAmount = "fixed_amount"
	DiscountTypeBOGO        = "bogo"
)

func ValidDiscountType(t string) bool {
	switch t {
	case DiscountTypePercentage, DiscountTypeFixedAmount, DiscountTypeBOGO:
		return true
	}
	return false
}
