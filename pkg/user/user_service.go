package user

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/entities"
	"Wanderpass-Backend/pkg/jwt"
	"Wanderpass-Backend/pkg/review"
	"Wanderpass-Backend/pkg/token"
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.Me, error)
		GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error)
	}

	userService struct {
		userRepository   UserRepository
		jwtService       jwt.JWTService
		tokenService     token.TokenService
		tokenRepository  token.TokenRepository
		reviewRepository review.ReviewRepository
	}
)

func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	tokenService token.TokenService,
	tokenRepository token.TokenRepository,
	reviewRepository review.ReviewRepository,
) UserService {
	return &userService{
		userRepository:   userRepository,
		jwtService:       jwtService,
		tokenService:     tokenService,
		tokenRepository:  tokenRepository,
		reviewRepository: reviewRepository,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error) {
	exists, err := s.userRepository.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	// Welcome bonus lands as a ledger row; the account itself carries no
	// balance field.
	if err := s.tokenService.GrantSignupBonus(ctx, user.ID.String()); err != nil {
		log.Printf("failed to grant signup bonus for %s: %v", user.ID, err)
	}

	return &domain.RegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWrongCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrWrongCredentials
	}

	tokenString := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return &domain.LoginResponse{
		Token: tokenString,
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.Me, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &domain.Me{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *userService) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	balance, err := s.tokenRepository.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	reviewsCount, err := s.reviewRepository.CountUserReviews(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.UserStats{
		TokenBalance: balance,
		ReviewsCount: reviewsCount,
	}, nil
}
