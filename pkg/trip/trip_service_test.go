package trip

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type fakeTripRepository struct {
	trips        map[string]*entities.Trip
	userTrips    []*entities.UserTrip
	transactions []*entities.TokenTransaction
}

func newFakeTripRepository() *fakeTripRepository {
	return &fakeTripRepository{trips: map[string]*entities.Trip{}}
}

func (f *fakeTripRepository) GetTrips(_ context.Context, _, _ string, _, _ bool, _, _ int) ([]*entities.Trip, error) {
	var result []*entities.Trip
	for _, trip := range f.trips {
		result = append(result, trip)
	}
	return result, nil
}

func (f *fakeTripRepository) GetTripByID(_ context.Context, id string) (*entities.Trip, error) {
	trip, ok := f.trips[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return trip, nil
}

func (f *fakeTripRepository) CreateTrip(_ context.Context, trip *entities.Trip) error {
	f.trips[trip.ID.String()] = trip
	return nil
}

func (f *fakeTripRepository) GetUserTrip(_ context.Context, userID, tripID string) (*entities.UserTrip, error) {
	for _, userTrip := range f.userTrips {
		if userTrip.UserID.String() == userID && userTrip.TripID.String() == tripID {
			return userTrip, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTripRepository) GetUserTrips(_ context.Context, userID, status string, _, _ int) ([]*entities.UserTrip, error) {
	var result []*entities.UserTrip
	for _, userTrip := range f.userTrips {
		if userTrip.UserID.String() != userID {
			continue
		}
		if status != "" && userTrip.Status != status {
			continue
		}
		result = append(result, userTrip)
	}
	return result, nil
}

func (f *fakeTripRepository) CreateUserTrip(_ context.Context, userTrip *entities.UserTrip) error {
	f.userTrips = append(f.userTrips, userTrip)
	return nil
}

func (f *fakeTripRepository) UpdateUserTripStatus(_ context.Context, userTripID string, status string, startedAt, completedAt *time.Time, progress datatypes.JSONMap) error {
	for _, userTrip := range f.userTrips {
		if userTrip.ID.String() != userTripID {
			continue
		}
		userTrip.Status = status
		if startedAt != nil {
			userTrip.StartedAt = startedAt
		}
		if completedAt != nil {
			userTrip.CompletedAt = completedAt
		}
		if progress != nil {
			userTrip.Progress = progress
		}
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTripRepository) UnlockTrip(_ context.Context, userTrip *entities.UserTrip, transaction *entities.TokenTransaction) error {
	f.transactions = append(f.transactions, transaction)
	f.userTrips = append(f.userTrips, userTrip)
	return nil
}

// fakeLedger satisfies token.TokenRepository with a fixed starting balance.
type fakeLedger struct {
	balance int
}

func (f *fakeLedger) CreateTransaction(_ context.Context, transaction *entities.TokenTransaction) error {
	f.balance += transaction.Amount
	return nil
}

func (f *fakeLedger) GetBalance(_ context.Context, _ string) (int, error) {
	return f.balance, nil
}

func (f *fakeLedger) GetUserTransactions(_ context.Context, _ string, _, _ int) ([]*entities.TokenTransaction, error) {
	return nil, nil
}

func (f *fakeLedger) GetUserTokenStats(_ context.Context, _ string) (map[string]int, error) {
	return map[string]int{"balance": f.balance}, nil
}

func newPremiumTrip(cost int) *entities.Trip {
	return &entities.Trip{
		ID:        uuid.New(),
		Name:      "Peak Tram Heritage Walk",
		IsPremium: true,
		IsLocked:  true,
		TokenCost: cost,
		Category:  "culture",
	}
}

func TestUnlockTripNotFound(t *testing.T) {
	repo := newFakeTripRepository()
	service := NewTripService(repo, &fakeLedger{balance: 100})

	_, err := service.UnlockTrip(context.Background(), domain.UnlockTripRequest{TripID: uuid.NewString()}, uuid.NewString())

	require.ErrorIs(t, err, domain.ErrTripNotFound)
}

func TestUnlockTripNotLockable(t *testing.T) {
	repo := newFakeTripRepository()
	freeTrip := &entities.Trip{ID: uuid.New(), Name: "Star Ferry Loop", IsLocked: false, TokenCost: 0}
	repo.trips[freeTrip.ID.String()] = freeTrip
	service := NewTripService(repo, &fakeLedger{balance: 100})

	_, err := service.UnlockTrip(context.Background(), domain.UnlockTripRequest{TripID: freeTrip.ID.String()}, uuid.NewString())

	require.ErrorIs(t, err, domain.ErrTripNotLockable)
}

func TestUnlockTripAlreadyOwned(t *testing.T) {
	repo := newFakeTripRepository()
	trip := newPremiumTrip(50)
	repo.trips[trip.ID.String()] = trip
	userID := uuid.New()
	repo.userTrips = append(repo.userTrips, &entities.UserTrip{
		ID:     uuid.New(),
		UserID: userID,
		TripID: trip.ID,
		Status: entities.TripStatusUnlocked,
	})
	service := NewTripService(repo, &fakeLedger{balance: 100})

	_, err := service.UnlockTrip(context.Background(), domain.UnlockTripRequest{TripID: trip.ID.String()}, userID.String())

	require.ErrorIs(t, err, domain.ErrTripAlreadyOwned)
	assert.Empty(t, repo.transactions)
}

func TestUnlockTripInsufficientTokens(t *testing.T) {
	repo := newFakeTripRepository()
	trip := newPremiumTrip(50)
	repo.trips[trip.ID.String()] = trip
	service := NewTripService(repo, &fakeLedger{balance: 10})

	_, err := service.UnlockTrip(context.Background(), domain.UnlockTripRequest{TripID: trip.ID.String()}, uuid.NewString())

	require.ErrorIs(t, err, domain.ErrInsufficientTokens)

	var insufficient *domain.InsufficientTokensError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 50, insufficient.Required)
	assert.Equal(t, 10, insufficient.Current)

	assert.Empty(t, repo.userTrips)
	assert.Empty(t, repo.transactions)
}

func TestUnlockTripSuccess(t *testing.T) {
	repo := newFakeTripRepository()
	trip := newPremiumTrip(50)
	repo.trips[trip.ID.String()] = trip
	service := NewTripService(repo, &fakeLedger{balance: 60})
	userID := uuid.NewString()

	result, err := service.UnlockTrip(context.Background(), domain.UnlockTripRequest{TripID: trip.ID.String()}, userID)

	require.NoError(t, err)
	assert.Equal(t, 50, result.TokensSpent)
	assert.Equal(t, 10, result.NewBalance)
	assert.Equal(t, trip.ID.String(), result.Trip.ID)

	require.Len(t, repo.transactions, 1)
	transaction := repo.transactions[0]
	assert.Equal(t, -50, transaction.Amount)
	assert.Equal(t, entities.TokenKindSpent, transaction.Kind)
	assert.Equal(t, entities.TokenSourceTripUnlock, transaction.Source)

	require.Len(t, repo.userTrips, 1)
	userTrip := repo.userTrips[0]
	assert.Equal(t, entities.TripStatusUnlocked, userTrip.Status)
	assert.Equal(t, 50, userTrip.TokensSpent)
}

func TestClaimTripRejectsPremium(t *testing.T) {
	repo := newFakeTripRepository()
	trip := newPremiumTrip(50)
	repo.trips[trip.ID.String()] = trip
	service := NewTripService(repo, &fakeLedger{balance: 100})

	_, err := service.ClaimTrip(context.Background(), trip.ID.String(), uuid.NewString())

	require.ErrorIs(t, err, domain.ErrTripNotFree)
}

func TestClaimTripWritesNoLedgerRow(t *testing.T) {
	repo := newFakeTripRepository()
	freeTrip := &entities.Trip{ID: uuid.New(), Name: "Star Ferry Loop", IsLocked: false, TokenCost: 0}
	repo.trips[freeTrip.ID.String()] = freeTrip
	service := NewTripService(repo, &fakeLedger{balance: 0})

	result, err := service.ClaimTrip(context.Background(), freeTrip.ID.String(), uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, 0, result.TokensSpent)
	assert.Equal(t, entities.TripStatusUnlocked, result.Status)
	assert.Empty(t, repo.transactions)
	require.Len(t, repo.userTrips, 1)
}

func TestUpdateTripStatusInvalid(t *testing.T) {
	repo := newFakeTripRepository()
	service := NewTripService(repo, &fakeLedger{})

	err := service.UpdateTripStatus(context.Background(), domain.UpdateTripStatusRequest{
		TripID: uuid.NewString(),
		Status: "paused",
	}, uuid.NewString())

	require.ErrorIs(t, err, domain.ErrInvalidTripStatus)
}

func TestUpdateTripStatusForwardOnly(t *testing.T) {
	repo := newFakeTripRepository()
	userID := uuid.New()
	tripID := uuid.New()
	userTrip := &entities.UserTrip{
		ID:     uuid.New(),
		UserID: userID,
		TripID: tripID,
		Status: entities.TripStatusCompleted,
	}
	repo.userTrips = append(repo.userTrips, userTrip)
	service := NewTripService(repo, &fakeLedger{})

	err := service.UpdateTripStatus(context.Background(), domain.UpdateTripStatusRequest{
		TripID: tripID.String(),
		Status: entities.TripStatusStarted,
	}, userID.String())

	require.ErrorIs(t, err, domain.ErrInvalidTripStatus)
	assert.Equal(t, entities.TripStatusCompleted, userTrip.Status)
}

func TestUpdateTripStatusSkipsToCompleted(t *testing.T) {
	repo := newFakeTripRepository()
	userID := uuid.New()
	tripID := uuid.New()
	userTrip := &entities.UserTrip{
		ID:     uuid.New(),
		UserID: userID,
		TripID: tripID,
		Status: entities.TripStatusUnlocked,
	}
	repo.userTrips = append(repo.userTrips, userTrip)
	service := NewTripService(repo, &fakeLedger{})

	err := service.UpdateTripStatus(context.Background(), domain.UpdateTripStatusRequest{
		TripID: tripID.String(),
		Status: entities.TripStatusCompleted,
	}, userID.String())

	require.NoError(t, err)
	assert.Equal(t, entities.TripStatusCompleted, userTrip.Status)
	require.NotNil(t, userTrip.CompletedAt)
	assert.Nil(t, userTrip.StartedAt)
}

func TestUpdateTripStatusFirstEntryTimestamp(t *testing.T) {
	repo := newFakeTripRepository()
	userID := uuid.New()
	tripID := uuid.New()
	started := time.Now().Add(-time.Hour)
	userTrip := &entities.UserTrip{
		ID:        uuid.New(),
		UserID:    userID,
		TripID:    tripID,
		Status:    entities.TripStatusStarted,
		StartedAt: &started,
	}
	repo.userTrips = append(repo.userTrips, userTrip)
	service := NewTripService(repo, &fakeLedger{})

	err := service.UpdateTripStatus(context.Background(), domain.UpdateTripStatusRequest{
		TripID:   tripID.String(),
		Status:   entities.TripStatusStarted,
		Progress: map[string]any{"stop": 3},
	}, userID.String())

	require.NoError(t, err)
	assert.Equal(t, started, *userTrip.StartedAt) // not reset on re-entry
	assert.Equal(t, 3, userTrip.Progress["stop"])
}
