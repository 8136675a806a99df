package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateReview  = "review created successfully"
	MessageSuccessGetReviews    = "reviews retrieved successfully"
	MessageFailedCreateReview   = "failed to create review"
	MessageFailedGetReviews     = "failed to retrieve reviews"
	MessageFailedGetAttractions = "failed to retrieve attractions"
	MessageSuccessGetAttraction = "attractions retrieved successfully"

	ErrAttractionNotFound = errors.New("attraction not found")
	ErrDuplicateReview    = errors.New("you have already reviewed this attraction")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrEmptyReviewContent = errors.New("review content must not be empty")
)

const (
	ReviewBaseTokens     = 10
	ReviewBonusTokens    = 15
	ReviewBonusMinLength = 100 // content longer than this earns the bonus amount
)

type (
	CreateReviewRequest struct {
		AttractionID string `json:"attraction_id" form:"attraction_id" validate:"required,uuid"`
		Rating       int    `json:"rating" form:"rating" validate:"required"`
		Title        string `json:"title" form:"title"`
		Content      string `json:"content" form:"content" validate:"required"`

		Photo *multipart.FileHeader `json:"-" form:"-"`
	}

	Review struct {
		ID           string    `json:"id"`
		AttractionID string    `json:"attraction_id"`
		UserID       string    `json:"user_id"`
		Rating       int       `json:"rating"`
		Title        string    `json:"title,omitempty"`
		Content      string    `json:"content"`
		IsVerified   bool      `json:"is_verified"`
		TokensEarned int       `json:"tokens_earned"`
		ImageURL     string    `json:"image_url,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}

	CreateReviewResponse struct {
		Review       *Review `json:"review"`
		TokensEarned int     `json:"tokens_earned"`
	}
)
