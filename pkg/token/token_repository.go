package token

import (
	"Wanderpass-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	TokenRepository interface {
		// CreateTransaction appends one immutable row to the ledger. Rows are
		// never updated or deleted.
		CreateTransaction(ctx context.Context, transaction *entities.TokenTransaction) error

		// GetBalance derives the user's balance by summing every ledger row.
		GetBalance(ctx context.Context, userID string) (int, error)

		GetUserTransactions(ctx context.Context, userID string, limit, offset int) ([]*entities.TokenTransaction, error)
		GetUserTokenStats(ctx context.Context, userID string) (map[string]int, error)
	}

	tokenRepository struct {
		db *gorm.DB
	}
)

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) CreateTransaction(ctx context.Context, transaction *entities.TokenTransaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *tokenRepository) GetBalance(ctx context.Context, userID string) (int, error) {
	var balance int
	query := r.db.WithContext(ctx).
		Model(&entities.TokenTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0) as balance")
	if err := query.Row().Scan(&balance); err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *tokenRepository) GetUserTransactions(ctx context.Context, userID string, limit, offset int) ([]*entities.TokenTransaction, error) {
	var transactions []*entities.TokenTransaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *tokenRepository) GetUserTokenStats(ctx context.Context, userID string) (map[string]int, error) {
	var totalEarned int
	earnedQuery := r.db.WithContext(ctx).
		Model(&entities.TokenTransaction{}).
		Where("user_id = ? AND amount > 0", userID).
		Select("COALESCE(SUM(amount), 0) as total")
	if err := earnedQuery.Row().Scan(&totalEarned); err != nil {
		return nil, err
	}

	var totalSpent int
	spentQuery := r.db.WithContext(ctx).
		Model(&entities.TokenTransaction{}).
		Where("user_id = ? AND amount < 0", userID).
		Select("COALESCE(SUM(amount), 0) as total")
	if err := spentQuery.Row().Scan(&totalSpent); err != nil {
		return nil, err
	}
	totalSpent = -totalSpent

	balance, err := r.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return map[string]int{
		"balance":      balance,
		"total_earned": totalEarned,
		"total_spent":  totalSpent,
	}, nil
}
