package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TokenTransaction is one immutable row of the append-only token ledger.
// A user's balance is always SUM(amount) over their rows; no balance column
// exists anywhere else.
type TokenTransaction struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID         `gorm:"index" json:"user_id"`
	Amount      int               `json:"amount"` // positive = credit, negative = debit
	Kind        string            `json:"kind"`   // "earned", "spent", "bonus", "refund"
	Source      string            `json:"source"` // "review", "signup", "purchase", "trip_unlock", "coupon_redemption", "tree_donation", "admin"
	SourceID    *string           `json:"source_id,omitempty"`
	Description string            `json:"description"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

const (
	TokenKindEarned = "earned"
	TokenKindSpent  = "spent"
	TokenKindBonus  = "bonus"
	TokenKindRefund = "refund"
)

const (
	TokenSourceReview     = "review"
	TokenSourceSignup     = "signup"
	TokenSourcePurchase   = "purchase"
	TokenSourceTripUnlock = "trip_unlock"
	TokenSourceCoupon     = "coupon_redemption"
	TokenSourceTree       = "tree_donation"
	TokenSourceAdmin      = "admin"
)

func ValidTokenKind(kind string) bool {
	switch kind {
	case TokenKindEarned, TokenKindSpent, TokenKindBonus, TokenKindRefund:
		return true
	}
	return false
}
