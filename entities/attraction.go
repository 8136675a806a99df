package entities

import (
	"github.com/google/uuid"
)

type Attraction struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Rating       float64   `json:"rating"`       // running average, 1 decimal
	ReviewCount  int       `json:"review_count"` // only ever incremented by review creation
	Category     string    `json:"category"`
	ImageURL     string    `json:"image_url,omitempty"`
	OpeningHours string    `json:"opening_hours,omitempty"`
	PriceRange   string    `json:"price_range,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`

	Timestamp
}
