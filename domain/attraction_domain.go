package domain

import (
	"time"
)

type (
	Attraction struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Description  string    `json:"description"`
		Location     string    `json:"location"`
		Rating       float64   `json:"rating"`
		ReviewCount  int       `json:"review_count"`
		Category     string    `json:"category"`
		ImageURL     string    `json:"image_url,omitempty"`
		OpeningHours string    `json:"opening_hours,omitempty"`
		PriceRange   string    `json:"price_range,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
