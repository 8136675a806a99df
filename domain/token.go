package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	MessageSuccessGetTokenHistory = "token history retrieved successfully"
	MessageSuccessGetTokenStats   = "token statistics retrieved successfully"
	MessageSuccessCreateToken     = "token transaction created successfully"

	MessageFailedGetTokenHistory = "failed to retrieve token history"
	MessageFailedGetTokenStats   = "failed to retrieve token statistics"
	MessageFailedCreateToken     = "failed to create token transaction"

	ErrInvalidTokenKind   = errors.New("invalid kind, must be one of: earned, spent, bonus, refund")
	ErrZeroTokenAmount    = errors.New("amount must be non-zero")
	ErrInsufficientTokens = errors.New("insufficient tokens")
)

const (
	SignupBonusTokens = 25
)

// InsufficientTokensError is returned by every spend workflow whose cost
// exceeds the caller's derived balance. It always carries both amounts so
// the boundary can report {required, current}.
type InsufficientTokensError struct {
	Required int
	Current  int
}

func (e *InsufficientTokensError) Error() string {
	return fmt.Sprintf("insufficient tokens: required %d, current %d", e.Required, e.Current)
}

func (e *InsufficientTokensError) Unwrap() error { return ErrInsufficientTokens }

type (
	CreateTokenTransactionRequest struct {
		Amount      int            `json:"amount" validate:"required"`
		Kind        string         `json:"kind" validate:"required,oneof=earned spent bonus refund"`
		Source      string         `json:"source" validate:"required"`
		SourceID    *string        `json:"source_id,omitempty"`
		Description string         `json:"description" validate:"required"`
		Metadata    map[string]any `json:"metadata,omitempty"`
	}

	TokenTransaction struct {
		ID          string         `json:"id"`
		UserID      string         `json:"user_id"`
		Amount      int            `json:"amount"`
		Kind        string         `json:"kind"`
		Source      string         `json:"source"`
		SourceID    *string        `json:"source_id,omitempty"`
		Description string         `json:"description"`
		Metadata    map[string]any `json:"metadata,omitempty"`
		CreatedAt   time.Time      `json:"created_at"`
	}

	TokenHistoryResponse struct {
		Balance    int                 `json:"balance"`
		History    []*TokenTransaction `json:"history"`
		Pagination Pagination          `json:"pagination"`
	}

	TokenStats struct {
		Balance     int `json:"balance"`
		TotalEarned int `json:"total_earned"`
		TotalSpent  int `json:"total_spent"`
	}

	Pagination struct {
		Limit   int  `json:"limit"`
		Offset  int  `json:"offset"`
		HasMore bool `json:"has_more"`
	}
)
