package tree

import (
	"Wanderpass-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	TreeRepository interface {
		GetUserTreePlantings(ctx context.Context, userID string, limit, offset int) ([]*entities.TreePlanting, error)
		GetUserTotalTrees(ctx context.Context, userID string) (int, error)

		// CreateTreePlanting commits the planting record and the debit ledger
		// row together or not at all.
		CreateTreePlanting(ctx context.Context, planting *entities.TreePlanting, transaction *entities.TokenTransaction) error
	}

	treeRepository struct {
		db *gorm.DB
	}
)

func NewTreeRepository(db *gorm.DB) TreeRepository {
	return &treeRepository{db: db}
}

func (r *treeRepository) GetUserTreePlantings(ctx context.Context, userID string, limit, offset int) ([]*entities.TreePlanting, error) {
	var plantings []*entities.TreePlanting
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Limit(limit).
		Offset(offset).
		Find(&plantings).Error; err != nil {
		return nil, err
	}
	return plantings, nil
}

func (r *treeRepository) GetUserTotalTrees(ctx context.Context, userID string) (int, error) {
	var total int
	query := r.db.WithContext(ctx).
		Model(&entities.TreePlanting{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(tree_count), 0) as total")
	if err := query.Row().Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *treeRepository) CreateTreePlanting(ctx context.Context, planting *entities.TreePlanting, transaction *entities.TokenTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(planting).Error; err != nil {
			return err
		}
		return tx.Create(transaction).Error
	})
}
