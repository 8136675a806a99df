package attraction

import (
	"Wanderpass-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AttractionRepository interface {
		GetAttractions(ctx context.Context, category string, limit, offset int) ([]*entities.Attraction, int64, error)
		GetAttractionByID(ctx context.Context, id string) (*entities.Attraction, error)
		CreateAttraction(ctx context.Context, attraction *entities.Attraction) error
	}

	attractionRepository struct {
		db *gorm.DB
	}
)

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

func (r *attractionRepository) GetAttractions(ctx context.Context, category string, limit, offset int) ([]*entities.Attraction, int64, error) {
	var attractions []*entities.Attraction
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Attraction{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("rating DESC").Limit(limit).Offset(offset).Find(&attractions).Error; err != nil {
		return nil, 0, err
	}

	return attractions, count, nil
}

func (r *attractionRepository) GetAttractionByID(ctx context.Context, id string) (*entities.Attraction, error) {
	var attraction entities.Attraction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&attraction).Error; err != nil {
		return nil, err
	}
	return &attraction, nil
}

func (r *attractionRepository) CreateAttraction(ctx context.Context, attraction *entities.Attraction) error {
	return r.db.WithContext(ctx).Create(attraction).Error
}
