package token

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/entities"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type (
	TokenService interface {
		GetTokenHistory(ctx context.Context, userID string, limit, offset int) (*domain.TokenHistoryResponse, error)
		GetTokenStats(ctx context.Context, userID string) (*domain.TokenStats, error)
		CreateTransaction(ctx context.Context, req domain.CreateTokenTransactionRequest, userID string) (*domain.TokenTransaction, error)
		GrantSignupBonus(ctx context.Context, userID string) error
	}

	tokenService struct {
		tokenRepository TokenRepository
	}
)

func NewTokenService(tokenRepository TokenRepository) TokenService {
	return &tokenService{tokenRepository: tokenRepository}
}

func (s *tokenService) GetTokenHistory(ctx context.Context, userID string, limit, offset int) (*domain.TokenHistoryResponse, error) {
	transactions, err := s.tokenRepository.GetUserTransactions(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	balance, err := s.tokenRepository.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	history := make([]*domain.TokenTransaction, 0, len(transactions))
	for _, transaction := range transactions {
		history = append(history, toDomainTransaction(transaction))
	}

	return &domain.TokenHistoryResponse{
		Balance: balance,
		History: history,
		Pagination: domain.Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: len(history) == limit,
		},
	}, nil
}

func (s *tokenService) GetTokenStats(ctx context.Context, userID string) (*domain.TokenStats, error) {
	stats, err := s.tokenRepository.GetUserTokenStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.TokenStats{
		Balance:     stats["balance"],
		TotalEarned: stats["total_earned"],
		TotalSpent:  stats["total_spent"],
	}, nil
}

// CreateTransaction is the trusted generic credit path. It appends one ledger
// row as directed by the caller and deliberately skips any balance check.
func (s *tokenService) CreateTransaction(ctx context.Context, req domain.CreateTokenTransactionRequest, userID string) (*domain.TokenTransaction, error) {
	if req.Amount == 0 {
		return nil, domain.ErrZeroTokenAmount
	}
	if !entities.ValidTokenKind(req.Kind) {
		return nil, domain.ErrInvalidTokenKind
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	transaction := &entities.TokenTransaction{
		ID:          uuid.New(),
		UserID:      userUUID,
		Amount:      req.Amount,
		Kind:        req.Kind,
		Source:      req.Source,
		SourceID:    req.SourceID,
		Description: req.Description,
		Metadata:    req.Metadata,
		CreatedAt:   time.Now(),
	}

	if err := s.tokenRepository.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	return toDomainTransaction(transaction), nil
}

func (s *tokenService) GrantSignupBonus(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	transaction := &entities.TokenTransaction{
		ID:          uuid.New(),
		UserID:      userUUID,
		Amount:      domain.SignupBonusTokens,
		Kind:        entities.TokenKindBonus,
		Source:      entities.TokenSourceSignup,
		Description: fmt.Sprintf("Welcome bonus of %d tokens", domain.SignupBonusTokens),
		CreatedAt:   time.Now(),
	}

	return s.tokenRepository.CreateTransaction(ctx, transaction)
}

func toDomainTransaction(transaction *entities.TokenTransaction) *domain.TokenTransaction {
	return &domain.TokenTransaction{
		ID:          transaction.ID.String(),
		UserID:      transaction.UserID.String(),
		Amount:      transaction.Amount,
		Kind:        transaction.Kind,
		Source:      transaction.Source,
		SourceID:    transaction.SourceID,
		Description: transaction.Description,
		Metadata:    transaction.Metadata,
		CreatedAt:   transaction.CreatedAt,
	}
}
