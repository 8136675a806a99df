package attraction

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/entities"
	"context"
)

type (
	AttractionService interface {
		GetAttractions(ctx context.Context, category string, limit, offset int) ([]*domain.Attraction, int64, error)
	}

	attractionService struct {
		attractionRepository AttractionRepository
	}
)

func NewAttractionService(attractionRepository AttractionRepository) AttractionService {
	return &attractionService{attractionRepository: attractionRepository}
}

func (s *attractionService) GetAttractions(ctx context.Context, category string, limit, offset int) ([]*domain.Attraction, int64, error) {
	attractions, count, err := s.attractionRepository.GetAttractions(ctx, category, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.Attraction, 0, len(attractions))
	for _, attraction := range attractions {
		result = append(result, toDomainAttraction(attraction))
	}

	return result, count, nil
}

func toDomainAttraction(attraction *entities.Attraction) *domain.Attraction {
	return &domain.Attraction{
		ID:           attraction.ID.String(),
		Name:         attraction.Name,
		Description:  attraction.Description,
		Location:     attraction.Location,
		Rating:       attraction.Rating,
		ReviewCount:  attraction.ReviewCount,
		Category:     attraction.Category,
		ImageURL:     attraction.ImageURL,
		OpeningHours: attraction.OpeningHours,
		PriceRange:   attraction.PriceRange,
		CreatedAt:    attraction.CreatedAt,
	}
}
