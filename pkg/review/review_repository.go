package review

import (
	"Wanderpass-Backend/entities"
	"context"
	"math"

	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		GetReviewByUserAndAttraction(ctx context.Context, userID, attractionID string) (*entities.Review, error)
		GetReviewsByAttraction(ctx context.Context, attractionID string, limit, offset int) ([]*entities.Review, error)
		GetUserReviews(ctx context.Context, userID string, limit, offset int) ([]*entities.Review, error)
		CountUserReviews(ctx context.Context, userID string) (int64, error)

		// CreateReviewWithReward commits the review, the attraction rating
		// roll-up and the earn ledger row in one transaction. Either all three
		// land or none do.
		CreateReviewWithReward(ctx context.Context, review *entities.Review, transaction *entities.TokenTransaction) error
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// rollupRating folds one new star rating into the attraction's running
// average, rounded to one decimal place.
func rollupRating(rating float64, reviewCount, stars int) float64 {
	newRating := (rating*float64(reviewCount) + float64(stars)) / float64(reviewCount+1)
	return math.Round(newRating*10) / 10
}

func (r *reviewRepository) GetReviewByUserAndAttraction(ctx context.Context, userID, attractionID string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND attraction_id = ?", userID, attractionID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetReviewsByAttraction(ctx context.Context, attractionID string, limit, offset int) ([]*entities.Review, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Where("attraction_id = ?", attractionID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) GetUserReviews(ctx context.Context, userID string, limit, offset int) ([]*entities.Review, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) CountUserReviews(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reviewRepository) CreateReviewWithReward(ctx context.Context, review *entities.Review, transaction *entities.TokenTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}

		var attraction entities.Attraction
		if err := tx.Where("id = ?", review.AttractionID).First(&attraction).Error; err != nil {
			return err
		}

		newReviewCount := attraction.ReviewCount + 1
		newRating := rollupRating(attraction.Rating, attraction.ReviewCount, review.Rating)

		if err := tx.Model(&entities.Attraction{}).
			Where("id = ?", attraction.ID).
			Updates(map[string]interface{}{
				"rating":       newRating,
				"review_count": newReviewCount,
			}).Error; err != nil {
			return err
		}

		return tx.Create(transaction).Error
	})
}
