package trip

import (
	"Wanderpass-Backend/entities"
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	TripRepository interface {
		GetTrips(ctx context.Context, category, transportMode string, visuallyImpaired, wheelchairAccess bool, limit, offset int) ([]*entities.Trip, error)
		GetTripByID(ctx context.Context, id string) (*entities.Trip, error)
		CreateTrip(ctx context.Context, trip *entities.Trip) error

		GetUserTrip(ctx context.Context, userID, tripID string) (*entities.UserTrip, error)
		GetUserTrips(ctx context.Context, userID, status string, limit, offset int) ([]*entities.UserTrip, error)
		CreateUserTrip(ctx context.Context, userTrip *entities.UserTrip) error
		UpdateUserTripStatus(ctx context.Context, userTripID string, status string, startedAt, completedAt *time.Time, progress datatypes.JSONMap) error

		// UnlockTrip commits the debit ledger row and the user trip record
		// together. A debit without an entitlement (or the reverse) can never
		// be observed.
		UnlockTrip(ctx context.Context, userTrip *entities.UserTrip, transaction *entities.TokenTransaction) error
	}

	tripRepository struct {
		db *gorm.DB
	}
)

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) GetTrips(ctx context.Context, category, transportMode string, visuallyImpaired, wheelchairAccess bool, limit, offset int) ([]*entities.Trip, error) {
	var trips []*entities.Trip

	query := r.db.WithContext(ctx).Model(&entities.Trip{})

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if transportMode != "" {
		query = query.Where("transport_mode @> ?", fmt.Sprintf("[%q]", transportMode))
	}
	if visuallyImpaired {
		query = query.Where(datatypes.JSONQuery("accessibility").Equals(true, "visuallyImpaired"))
	}
	if wheelchairAccess {
		query = query.Where(datatypes.JSONQuery("accessibility").Equals(true, "wheelchairAccessible"))
	}

	if err := query.Order("rating DESC").Limit(limit).Offset(offset).Find(&trips).Error; err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepository) GetTripByID(ctx context.Context, id string) (*entities.Trip, error) {
	var trip entities.Trip
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *entities.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetUserTrip(ctx context.Context, userID, tripID string) (*entities.UserTrip, error) {
	var userTrip entities.UserTrip
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND trip_id = ?", userID, tripID).
		First(&userTrip).Error; err != nil {
		return nil, err
	}
	return &userTrip, nil
}

func (r *tripRepository) GetUserTrips(ctx context.Context, userID, status string, limit, offset int) ([]*entities.UserTrip, error) {
	var userTrips []*entities.UserTrip

	query := r.db.WithContext(ctx).Preload("Trip").Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("unlocked_at").Limit(limit).Offset(offset).Find(&userTrips).Error; err != nil {
		return nil, err
	}

	return userTrips, nil
}

func (r *tripRepository) CreateUserTrip(ctx context.Context, userTrip *entities.UserTrip) error {
	return r.db.WithContext(ctx).Create(userTrip).Error
}

func (r *tripRepository) UpdateUserTripStatus(ctx context.Context, userTripID string, status string, startedAt, completedAt *time.Time, progress datatypes.JSONMap) error {
	updates := map[string]interface{}{"status": status}
	if startedAt != nil {
		updates["started_at"] = startedAt
	}
	if completedAt != nil {
		updates["completed_at"] = completedAt
	}
	if progress != nil {
		updates["progress"] = progress
	}

	return r.db.WithContext(ctx).
		Model(&entities.UserTrip{}).
		Where("id = ?", userTripID).
		Updates(updates).Error
}

func (r *tripRepository) UnlockTrip(ctx context.Context, userTrip *entities.UserTrip, transaction *entities.TokenTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}
		return tx.Create(userTrip).Error
	})
}
