package entities

import (
	"github.com/google/uuid"
)

type Review struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AttractionID uuid.UUID `gorm:"uniqueIndex:idx_reviews_user_attraction,priority:2" json:"attraction_id"`
	UserID       uuid.UUID `gorm:"uniqueIndex:idx_reviews_user_attraction,priority:1" json:"user_id"`
	Rating       int       `json:"rating"` // 1-5
	Title        string    `json:"title,omitempty"`
	Content      string    `json:"content"`
	IsVerified   bool      `json:"is_verified"`
	TokensEarned int       `json:"tokens_earned"`
	ImageURL     string    `json:"image_url,omitempty"`

	Attraction *Attraction `gorm:"foreignKey:AttractionID" json:"-"`
	User       *User       `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
