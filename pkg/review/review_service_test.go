package review

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/entities"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAttractionRepository struct {
	attractions map[string]*entities.Attraction
}

func (f *fakeAttractionRepository) GetAttractions(_ context.Context, _ string, _, _ int) ([]*entities.Attraction, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttractionRepository) GetAttractionByID(_ context.Context, id string) (*entities.Attraction, error) {
	attraction, ok := f.attractions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return attraction, nil
}

func (f *fakeAttractionRepository) CreateAttraction(_ context.Context, attraction *entities.Attraction) error {
	f.attractions[attraction.ID.String()] = attraction
	return nil
}

type fakeReviewRepository struct {
	reviews      []*entities.Review
	transactions []*entities.TokenTransaction
}

func (f *fakeReviewRepository) GetReviewByUserAndAttraction(_ context.Context, userID, attractionID string) (*entities.Review, error) {
	for _, review := range f.reviews {
		if review.UserID.String() == userID && review.AttractionID.String() == attractionID {
			return review, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReviewRepository) GetReviewsByAttraction(_ context.Context, attractionID string, _, _ int) ([]*entities.Review, error) {
	var result []*entities.Review
	for _, review := range f.reviews {
		if review.AttractionID.String() == attractionID {
			result = append(result, review)
		}
	}
	return result, nil
}

func (f *fakeReviewRepository) GetUserReviews(_ context.Context, userID string, _, _ int) ([]*entities.Review, error) {
	var result []*entities.Review
	for _, review := range f.reviews {
		if review.UserID.String() == userID {
			result = append(result, review)
		}
	}
	return result, nil
}

func (f *fakeReviewRepository) CountUserReviews(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, review := range f.reviews {
		if review.UserID.String() == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeReviewRepository) CreateReviewWithReward(_ context.Context, review *entities.Review, transaction *entities.TokenTransaction) error {
	f.reviews = append(f.reviews, review)
	f.transactions = append(f.transactions, transaction)
	return nil
}

func newReviewFixture() (*fakeReviewRepository, *fakeAttractionRepository, ReviewService, *entities.Attraction) {
	attraction := &entities.Attraction{
		ID:          uuid.New(),
		Name:        "Victoria Peak",
		Rating:      4.5,
		ReviewCount: 2,
		Category:    "nature",
	}
	attractionRepo := &fakeAttractionRepository{
		attractions: map[string]*entities.Attraction{attraction.ID.String(): attraction},
	}
	reviewRepo := &fakeReviewRepository{}
	service := NewReviewService(reviewRepo, attractionRepo, nil)
	return reviewRepo, attractionRepo, service, attraction
}

func TestCreateReviewUnknownAttraction(t *testing.T) {
	reviewRepo, _, service, _ := newReviewFixture()

	_, err := service.CreateReview(context.Background(), domain.CreateReviewRequest{
		AttractionID: uuid.NewString(),
		Rating:       9, // checked after the attraction lookup
		Content:      "great",
	}, uuid.NewString())

	require.ErrorIs(t, err, domain.ErrAttractionNotFound)
	assert.Empty(t, reviewRepo.reviews)
	assert.Empty(t, reviewRepo.transactions)
}

func TestCreateReviewDuplicate(t *testing.T) {
	reviewRepo, _, service, attraction := newReviewFixture()
	userID := uuid.New()

	reviewRepo.reviews = append(reviewRepo.reviews, &entities.Review{
		ID:           uuid.New(),
		AttractionID: attraction.ID,
		UserID:       userID,
		Rating:       4,
		Content:      "first visit",
	})

	_, err := service.CreateReview(context.Background(), domain.CreateReviewRequest{
		AttractionID: attraction.ID.String(),
		Rating:       5,
		Content:      "second visit",
	}, userID.String())

	require.ErrorIs(t, err, domain.ErrDuplicateReview)
	assert.Len(t, reviewRepo.reviews, 1)
	assert.Empty(t, reviewRepo.transactions)
}

func TestCreateReviewInvalidRating(t *testing.T) {
	_, _, service, attraction := newReviewFixture()

	for _, rating := range []int{-1, 0, 6} {
		_, err := service.CreateReview(context.Background(), domain.CreateReviewRequest{
			AttractionID: attraction.ID.String(),
			Rating:       rating,
			Content:      "fine",
		}, uuid.NewString())
		require.ErrorIs(t, err, domain.ErrInvalidRating)
	}
}

func TestCreateReviewEmptyContent(t *testing.T) {
	_, _, service, attraction := newReviewFixture()

	_, err := service.CreateReview(context.Background(), domain.CreateReviewRequest{
		AttractionID: attraction.ID.String(),
		Rating:       4,
		Content:      "",
	}, uuid.NewString())

	require.ErrorIs(t, err, domain.ErrEmptyReviewContent)
}

func TestCreateReviewBaseReward(t *testing.T) {
	reviewRepo, _, service, attraction := newReviewFixture()

	result, err := service.CreateReview(context.Background(), domain.CreateReviewRequest{
		AttractionID: attraction.ID.String(),
		Rating:       5,
		Content:      "short but honest",
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, domain.ReviewBaseTokens, result.TokensEarned)

	require.Len(t, reviewRepo.transactions, 1)
	transaction := reviewRepo.transactions[0]
	assert.Equal(t, domain.ReviewBaseTokens, transaction.Amount)
	assert.Equal(t, entities.TokenKindEarned, transaction.Kind)
	assert.Equal(t, entities.TokenSourceReview, transaction.Source)
	require.NotNil(t, transaction.SourceID)
	assert.Equal(t, result.Review.ID, *transaction.SourceID)
	assert.Equal(t, false, transaction.Metadata["bonus_applied"])
}

func TestCreateReviewLongContentBonus(t *testing.T) {
	reviewRepo, _, service, attraction := newReviewFixture()
	content := strings.Repeat("a", domain.ReviewBonusMinLength+1)

	result, err := service.CreateReview(context.Background(), domain.CreateReviewRequest{
		AttractionID: attraction.ID.String(),
		Rating:       4,
		Content:      content,
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, domain.ReviewBonusTokens, result.TokensEarned)
	require.Len(t, reviewRepo.transactions, 1)
	assert.Equal(t, true, reviewRepo.transactions[0].Metadata["bonus_applied"])
}

func TestCreateReviewBonusBoundary(t *testing.T) {
	_, _, service, attraction := newReviewFixture()
	content := strings.Repeat("a", domain.ReviewBonusMinLength) // exactly at the threshold

	result, err := service.CreateReview(context.Background(), domain.CreateReviewRequest{
		AttractionID: attraction.ID.String(),
		Rating:       3,
		Content:      content,
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, domain.ReviewBaseTokens, result.TokensEarned)
}

func TestRollupRating(t *testing.T) {
	cases := []struct {
		name   string
		rating float64
		count  int
		stars  int
		want   float64
	}{
		{"first review", 0, 0, 5, 5},
		{"pulls average down", 4.5, 2, 3, 4},
		{"pulls average up", 4.0, 1, 5, 4.5},
		{"rounds to one decimal", 4.3, 3, 4, 4.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, rollupRating(tc.rating, tc.count, tc.stars), 1e-9)
		})
	}
}
