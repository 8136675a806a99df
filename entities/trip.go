package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Trip struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Duration      string            `json:"duration"`
	Rating        float64           `json:"rating"`
	ReviewCount   int               `json:"review_count"`
	IsPremium     bool              `json:"is_premium"`
	IsLocked      bool              `json:"is_locked"` // true only when premium and token_cost > 0
	TokenCost     int               `json:"token_cost"`
	Category      string            `json:"category"` // "restaurant", "shopping", "entertainment", "nature", "culture"
	TransportMode datatypes.JSON    `gorm:"type:jsonb" json:"transport_mode"`
	Accessibility datatypes.JSONMap `gorm:"type:jsonb" json:"accessibility"` // visuallyImpaired, wheelchairAccessible
	ImageURL      string            `json:"image_url,omitempty"`
	Itinerary     datatypes.JSON    `gorm:"type:jsonb" json:"itinerary"` // ordered TripStop list, stops may carry nextTransport
	Metadata      datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`

	Timestamp
}
