package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetTrips         = "trips retrieved successfully"
	MessageSuccessUnlockTrip       = "trip unlocked successfully"
	MessageSuccessClaimTrip        = "trip added successfully"
	MessageSuccessGetUserTrips     = "user trips retrieved successfully"
	MessageSuccessUpdateTripStatus = "trip status updated successfully"

	MessageFailedGetTrips         = "failed to retrieve trips"
	MessageFailedUnlockTrip       = "failed to unlock trip"
	MessageFailedClaimTrip        = "failed to add trip"
	MessageFailedGetUserTrips     = "failed to retrieve user trips"
	MessageFailedUpdateTripStatus = "failed to update trip status"

	ErrTripNotFound      = errors.New("trip not found")
	ErrTripNotLockable   = errors.New("trip does not require unlocking")
	ErrTripNotFree       = errors.New("trip requires unlocking with tokens")
	ErrTripAlreadyOwned  = errors.New("trip already unlocked")
	ErrUserTripNotFound  = errors.New("trip not found in user's collection")
	ErrInvalidTripStatus = errors.New("invalid status")
)

type (
	GetTripsRequest struct {
		Category         string `query:"category"`
		TransportMode    string `query:"transport"`
		VisuallyImpaired bool   `query:"visually_impaired"`
		WheelchairAccess bool   `query:"wheelchair_access"`
		Limit            int    `query:"limit"`
		Offset           int    `query:"offset"`
	}

	UnlockTripRequest struct {
		TripID string `json:"trip_id" validate:"required,uuid"`
	}

	UnlockTripResponse struct {
		TokensSpent int          `json:"tokens_spent"`
		NewBalance  int          `json:"new_balance"`
		Trip        *TripSummary `json:"trip"`
	}

	TripSummary struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	Trip struct {
		ID            string         `json:"id"`
		Name          string         `json:"name"`
		Description   string         `json:"description"`
		Duration      string         `json:"duration"`
		Rating        float64        `json:"rating"`
		ReviewCount   int            `json:"review_count"`
		IsPremium     bool           `json:"is_premium"`
		IsLocked      bool           `json:"is_locked"`
		TokenCost     int            `json:"token_cost"`
		Category      string         `json:"category"`
		TransportMode []string       `json:"transport_mode"`
		Accessibility map[string]any `json:"accessibility"`
		ImageURL      string         `json:"image_url,omitempty"`
		Itinerary     []any          `json:"itinerary"`
		Metadata      map[string]any `json:"metadata,omitempty"`
	}

	UpdateTripStatusRequest struct {
		TripID   string         `json:"trip_id" validate:"required,uuid"`
		Status   string         `json:"status" validate:"required"`
		Progress map[string]any `json:"progress,omitempty"`
	}

	UserTrip struct {
		ID          string         `json:"id"`
		UserID      string         `json:"user_id"`
		TripID      string         `json:"trip_id"`
		UnlockedAt  time.Time      `json:"unlocked_at"`
		TokensSpent int            `json:"tokens_spent"`
		Status      string         `json:"status"`
		StartedAt   *time.Time     `json:"started_at,omitempty"`
		CompletedAt *time.Time     `json:"completed_at,omitempty"`
		Progress    map[string]any `json:"progress,omitempty"`
		Trip        *Trip          `json:"trip,omitempty"`
	}
)
