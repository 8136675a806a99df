package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserTrip struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID         `gorm:"uniqueIndex:idx_user_trips_user_trip,priority:1" json:"user_id"`
	TripID      uuid.UUID         `gorm:"uniqueIndex:idx_user_trips_user_trip,priority:2" json:"trip_id"`
	UnlockedAt  time.Time         `json:"unlocked_at"`
	TokensSpent int               `json:"tokens_spent"`
	Status      string            `json:"status"` // "unlocked", "started", "completed"
	StartedAt   *time.Time        `json:"started_at,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	Progress    datatypes.JSONMap `gorm:"type:jsonb" json:"progress,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Trip *Trip `gorm:"foreignKey:TripID" json:"-"`
	Timestamp
}

const (
	TripStatusUnlocked  = "unlocked"
	TripStatusStarted   = "started"
	TripStatusCompleted = "completed"
)

func ValidTripStatus(status string) bool {
	switch status {
	case TripStatusUnlocked, TripStatusStarted, TripStatusCompleted:
		return true
	}
	return false
}
