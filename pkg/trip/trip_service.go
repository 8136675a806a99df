package trip

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/entities"
	"Wanderpass-Backend/pkg/token"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	TripService interface {
		GetTrips(ctx context.Context, req domain.GetTripsRequest) ([]*domain.Trip, error)
		UnlockTrip(ctx context.Context, req domain.UnlockTripRequest, userID string) (*domain.UnlockTripResponse, error)
		ClaimTrip(ctx context.Context, tripID string, userID string) (*domain.UserTrip, error)
		GetUserTrips(ctx context.Context, userID, status string, limit, offset int) ([]*domain.UserTrip, error)
		UpdateTripStatus(ctx context.Context, req domain.UpdateTripStatusRequest, userID string) error
	}

	tripService struct {
		tripRepository  TripRepository
		tokenRepository token.TokenRepository
	}
)

// statusRank orders the forward-only state machine. Direct unlocked to
// completed transitions are allowed; moving backwards is not.
var statusRank = map[string]int{
	entities.TripStatusUnlocked:  0,
	entities.TripStatusStarted:   1,
	entities.TripStatusCompleted: 2,
}

func NewTripService(tripRepository TripRepository, tokenRepository token.TokenRepository) TripService {
	return &tripService{
		tripRepository:  tripRepository,
		tokenRepository: tokenRepository,
	}
}

func (s *tripService) GetTrips(ctx context.Context, req domain.GetTripsRequest) ([]*domain.Trip, error) {
	trips, err := s.tripRepository.GetTrips(ctx, req.Category, req.TransportMode, req.VisuallyImpaired, req.WheelchairAccess, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Trip, 0, len(trips))
	for _, trip := range trips {
		result = append(result, toDomainTrip(trip))
	}

	return result, nil
}

func (s *tripService) UnlockTrip(ctx context.Context, req domain.UnlockTripRequest, userID string) (*domain.UnlockTripResponse, error) {
	trip, err := s.tripRepository.GetTripByID(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTripNotFound
		}
		return nil, err
	}

	if !trip.IsLocked || trip.TokenCost == 0 {
		return nil, domain.ErrTripNotLockable
	}

	if _, err := s.tripRepository.GetUserTrip(ctx, userID, req.TripID); err == nil {
		return nil, domain.ErrTripAlreadyOwned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Balance is derived fresh from the ledger right before the check, never
	// from a cached value.
	currentBalance, err := s.tokenRepository.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if currentBalance < trip.TokenCost {
		return nil, &domain.InsufficientTokensError{Required: trip.TokenCost, Current: currentBalance}
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	now := time.Now()
	sourceID := trip.ID.String()
	transaction := &entities.TokenTransaction{
		ID:          uuid.New(),
		UserID:      userUUID,
		Amount:      -trip.TokenCost,
		Kind:        entities.TokenKindSpent,
		Source:      entities.TokenSourceTripUnlock,
		SourceID:    &sourceID,
		Description: fmt.Sprintf("Unlocked trip: %s", trip.Name),
		Metadata: datatypes.JSONMap{
			"trip_id":    trip.ID.String(),
			"trip_name":  trip.Name,
			"token_cost": trip.TokenCost,
		},
		CreatedAt: now,
	}

	userTrip := &entities.UserTrip{
		ID:          uuid.New(),
		UserID:      userUUID,
		TripID:      trip.ID,
		UnlockedAt:  now,
		TokensSpent: trip.TokenCost,
		Status:      entities.TripStatusUnlocked,
	}

	if err := s.tripRepository.UnlockTrip(ctx, userTrip, transaction); err != nil {
		return nil, err
	}

	return &domain.UnlockTripResponse{
		TokensSpent: trip.TokenCost,
		NewBalance:  currentBalance - trip.TokenCost,
		Trip: &domain.TripSummary{
			ID:          trip.ID.String(),
			Name:        trip.Name,
			Description: trip.Description,
		},
	}, nil
}

// ClaimTrip adds a free trip to the user's collection. No tokens move and no
// ledger row is written; this is not a purchase.
func (s *tripService) ClaimTrip(ctx context.Context, tripID string, userID string) (*domain.UserTrip, error) {
	trip, err := s.tripRepository.GetTripByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTripNotFound
		}
		return nil, err
	}

	if trip.IsLocked && trip.TokenCost > 0 {
		return nil, domain.ErrTripNotFree
	}

	if _, err := s.tripRepository.GetUserTrip(ctx, userID, tripID); err == nil {
		return nil, domain.ErrTripAlreadyOwned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	userTrip := &entities.UserTrip{
		ID:          uuid.New(),
		UserID:      userUUID,
		TripID:      trip.ID,
		UnlockedAt:  time.Now(),
		TokensSpent: 0,
		Status:      entities.TripStatusUnlocked,
	}

	if err := s.tripRepository.CreateUserTrip(ctx, userTrip); err != nil {
		return nil, err
	}

	result := toDomainUserTrip(userTrip)
	result.Trip = toDomainTrip(trip)
	return result, nil
}

func (s *tripService) GetUserTrips(ctx context.Context, userID, status string, limit, offset int) ([]*domain.UserTrip, error) {
	if status != "" && !entities.ValidTripStatus(status) {
		return nil, domain.ErrInvalidTripStatus
	}

	userTrips, err := s.tripRepository.GetUserTrips(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.UserTrip, 0, len(userTrips))
	for _, userTrip := range userTrips {
		item := toDomainUserTrip(userTrip)
		if userTrip.Trip != nil {
			item.Trip = toDomainTrip(userTrip.Trip)
		}
		result = append(result, item)
	}

	return result, nil
}

func (s *tripService) UpdateTripStatus(ctx context.Context, req domain.UpdateTripStatusRequest, userID string) error {
	if !entities.ValidTripStatus(req.Status) {
		return domain.ErrInvalidTripStatus
	}

	userTrip, err := s.tripRepository.GetUserTrip(ctx, userID, req.TripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserTripNotFound
		}
		return err
	}

	if statusRank[req.Status] < statusRank[userTrip.Status] {
		return domain.ErrInvalidTripStatus
	}

	// Timestamps are set only the first time a state is entered. Re-entering
	// the same state may still replace the progress payload.
	var startedAt, completedAt *time.Time
	now := time.Now()
	if req.Status == entities.TripStatusStarted && userTrip.StartedAt == nil {
		startedAt = &now
	}
	if req.Status == entities.TripStatusCompleted && userTrip.CompletedAt == nil {
		completedAt = &now
	}

	var progress datatypes.JSONMap
	if req.Progress != nil {
		progress = datatypes.JSONMap(req.Progress)
	}

	return s.tripRepository.UpdateUserTripStatus(ctx, userTrip.ID.String(), req.Status, startedAt, completedAt, progress)
}

func toDomainTrip(trip *entities.Trip) *domain.Trip {
	var transportMode []string
	if len(trip.TransportMode) > 0 {
		_ = json.Unmarshal(trip.TransportMode, &transportMode)
	}

	var itinerary []any
	if len(trip.Itinerary) > 0 {
		_ = json.Unmarshal(trip.Itinerary, &itinerary)
	}

	return &domain.Trip{
		ID:            trip.ID.String(),
		Name:          trip.Name,
		Description:   trip.Description,
		Duration:      trip.Duration,
		Rating:        trip.Rating,
		ReviewCount:   trip.ReviewCount,
		IsPremium:     trip.IsPremium,
		IsLocked:      trip.IsLocked,
		TokenCost:     trip.TokenCost,
		Category:      trip.Category,
		TransportMode: transportMode,
		Accessibility: trip.Accessibility,
		ImageURL:      trip.ImageURL,
		Itinerary:     itinerary,
		Metadata:      trip.Metadata,
	}
}

func toDomainUserTrip(userTrip *entities.UserTrip) *domain.UserTrip {
	return &domain.UserTrip{
		ID:          userTrip.ID.String(),
		UserID:      userTrip.UserID.String(),
		TripID:      userTrip.TripID.String(),
		UnlockedAt:  userTrip.UnlockedAt,
		TokensSpent: userTrip.TokensSpent,
		Status:      userTrip.Status,
		StartedAt:   userTrip.StartedAt,
		CompletedAt: userTrip.CompletedAt,
		Progress:    userTrip.Progress,
	}
}
