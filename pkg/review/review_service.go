package review

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/entities"
	"Wanderpass-Backend/internal/utils/storage"
	"Wanderpass-Backend/pkg/attraction"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		CreateReview(ctx context.Context, req domain.CreateReviewRequest, userID string) (*domain.CreateReviewResponse, error)
		GetAttractionReviews(ctx context.Context, attractionID string, limit, offset int) ([]*domain.Review, error)
		GetUserReviews(ctx context.Context, userID string, limit, offset int) ([]*domain.Review, error)
	}

	reviewService struct {
		reviewRepository     ReviewRepository
		attractionRepository attraction.AttractionRepository
		s3                   storage.AwsS3
	}
)

func NewReviewService(reviewRepository ReviewRepository, attractionRepository attraction.AttractionRepository, s3 storage.AwsS3) ReviewService {
	return &reviewService{
		reviewRepository:     reviewRepository,
		attractionRepository: attractionRepository,
		s3:                   s3,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req domain.CreateReviewRequest, userID string) (*domain.CreateReviewResponse, error) {
	attractionEntity, err := s.attractionRepository.GetAttractionByID(ctx, req.AttractionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAttractionNotFound
		}
		return nil, err
	}

	if _, err := s.reviewRepository.GetReviewByUserAndAttraction(ctx, userID, req.AttractionID); err == nil {
		return nil, domain.ErrDuplicateReview
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	if req.Content == "" {
		return nil, domain.ErrEmptyReviewContent
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	reviewID := uuid.New()

	var imageURL string
	if req.Photo != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("review-%s", reviewID.String()),
			req.Photo,
			"reviews",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	tokensEarned := domain.ReviewBaseTokens
	bonusApplied := len(req.Content) > domain.ReviewBonusMinLength
	if bonusApplied {
		tokensEarned = domain.ReviewBonusTokens
	}

	reviewEntity := &entities.Review{
		ID:           reviewID,
		AttractionID: attractionEntity.ID,
		UserID:       userUUID,
		Rating:       req.Rating,
		Title:        req.Title,
		Content:      req.Content,
		IsVerified:   false,
		TokensEarned: tokensEarned,
		ImageURL:     imageURL,
	}

	sourceID := reviewID.String()
	transaction := &entities.TokenTransaction{
		ID:          uuid.New(),
		UserID:      userUUID,
		Amount:      tokensEarned,
		Kind:        entities.TokenKindEarned,
		Source:      entities.TokenSourceReview,
		SourceID:    &sourceID,
		Description: fmt.Sprintf("Earned %d tokens for reviewing %s", tokensEarned, attractionEntity.Name),
		Metadata: datatypes.JSONMap{
			"attraction_id": req.AttractionID,
			"review_length": len(req.Content),
			"bonus_applied": bonusApplied,
		},
		CreatedAt: time.Now(),
	}

	if err := s.reviewRepository.CreateReviewWithReward(ctx, reviewEntity, transaction); err != nil {
		return nil, err
	}

	return &domain.CreateReviewResponse{
		Review:       toDomainReview(reviewEntity),
		TokensEarned: tokensEarned,
	}, nil
}

func (s *reviewService) GetAttractionReviews(ctx context.Context, attractionID string, limit, offset int) ([]*domain.Review, error) {
	if _, err := s.attractionRepository.GetAttractionByID(ctx, attractionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAttractionNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepository.GetReviewsByAttraction(ctx, attractionID, limit, offset)
	if err != nil {
		return nil, err
	}

	return toDomainReviews(reviews), nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID string, limit, offset int) ([]*domain.Review, error) {
	reviews, err := s.reviewRepository.GetUserReviews(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return toDomainReviews(reviews), nil
}

func toDomainReview(review *entities.Review) *domain.Review {
	return &domain.Review{
		ID:           review.ID.String(),
		AttractionID: review.AttractionID.String(),
		UserID:       review.UserID.String(),
		Rating:       review.Rating,
		Title:        review.Title,
		Content:      review.Content,
		IsVerified:   review.IsVerified,
		TokensEarned: review.TokensEarned,
		ImageURL:     review.ImageURL,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
}

func toDomainReviews(reviews []*entities.Review) []*domain.Review {
	result := make([]*domain.Review, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, toDomainReview(review))
	}
	return result
}
