package user

import (
	"Wanderpass-Backend/domain"
	"Wanderpass-Backend/entities"
	"Wanderpass-Backend/pkg/token"
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CheckEmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeTokenRepository struct {
	transactions []*entities.TokenTransaction
}

func (f *fakeTokenRepository) CreateTransaction(_ context.Context, transaction *entities.TokenTransaction) error {
	f.transactions = append(f.transactions, transaction)
	return nil
}

func (f *fakeTokenRepository) GetBalance(_ context.Context, userID string) (int, error) {
	balance := 0
	for _, transaction := range f.transactions {
		if transaction.UserID.String() == userID {
			balance += transaction.Amount
		}
	}
	return balance, nil
}

func (f *fakeTokenRepository) GetUserTransactions(_ context.Context, _ string, _, _ int) ([]*entities.TokenTransaction, error) {
	return nil, nil
}

func (f *fakeTokenRepository) GetUserTokenStats(_ context.Context, _ string) (map[string]int, error) {
	return map[string]int{}, nil
}

type fakeReviewRepository struct {
	count int64
}

func (f *fakeReviewRepository) GetReviewByUserAndAttraction(_ context.Context, _, _ string) (*entities.Review, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReviewRepository) GetReviewsByAttraction(_ context.Context, _ string, _, _ int) ([]*entities.Review, error) {
	return nil, nil
}

func (f *fakeReviewRepository) GetUserReviews(_ context.Context, _ string, _, _ int) ([]*entities.Review, error) {
	return nil, nil
}

func (f *fakeReviewRepository) CountUserReviews(_ context.Context, _ string) (int64, error) {
	return f.count, nil
}

func (f *fakeReviewRepository) CreateReviewWithReward(_ context.Context, _ *entities.Review, _ *entities.TokenTransaction) error {
	return nil
}

type fakeJWTService struct{}

func (f *fakeJWTService) GenerateTokenUser(userID string, role string) string {
	return "token-" + userID + "-" + role
}

func (f *fakeJWTService) ValidateTokenUser(_ string) (*jwt.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (f *fakeJWTService) GetUserIDByToken(_ string) (string, string, error) {
	return "", "", domain.ErrTokenInvalid
}

func newUserFixture() (*fakeUserRepository, *fakeTokenRepository, UserService) {
	userRepo := newFakeUserRepository()
	tokenRepo := &fakeTokenRepository{}
	service := NewUserService(userRepo, &fakeJWTService{}, token.NewTokenService(tokenRepo), tokenRepo, &fakeReviewRepository{count: 2})
	return userRepo, tokenRepo, service
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo, _, service := newUserFixture()
	userRepo.users["existing"] = &entities.User{ID: uuid.New(), Email: "amy@example.com"}

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Amy",
		Email:    "amy@example.com",
		Password: "supersecret",
	})

	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterGrantsSignupBonus(t *testing.T) {
	_, tokenRepo, service := newUserFixture()

	result, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ben",
		Email:    "ben@example.com",
		Password: "supersecret",
	})

	require.NoError(t, err)
	require.Len(t, tokenRepo.transactions, 1)
	assert.Equal(t, domain.SignupBonusTokens, tokenRepo.transactions[0].Amount)
	assert.Equal(t, entities.TokenSourceSignup, tokenRepo.transactions[0].Source)

	balance, err := tokenRepo.GetBalance(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SignupBonusTokens, balance)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo, _, service := newUserFixture()
	hashed, err := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.users["u"] = &entities.User{ID: uuid.New(), Email: "cara@example.com", Password: string(hashed)}

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "cara@example.com",
		Password: "wrongpassword",
	})

	require.ErrorIs(t, err, domain.ErrWrongCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	_, _, service := newUserFixture()

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.ErrorIs(t, err, domain.ErrWrongCredentials)
}

func TestLoginSuccess(t *testing.T) {
	userRepo, _, service := newUserFixture()
	hashed, err := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.MinCost)
	require.NoError(t, err)
	userID := uuid.New()
	userRepo.users["u"] = &entities.User{ID: userID, Email: "cara@example.com", Password: string(hashed), Role: domain.RoleUser}

	result, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "cara@example.com",
		Password: "rightpassword",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, result.Role)
	assert.Contains(t, result.Token, userID.String())
}

func TestGetUserStats(t *testing.T) {
	_, tokenRepo, service := newUserFixture()
	userID := uuid.New()

	tokenRepo.transactions = append(tokenRepo.transactions,
		&entities.TokenTransaction{ID: uuid.New(), UserID: userID, Amount: 25},
		&entities.TokenTransaction{ID: uuid.New(), UserID: userID, Amount: -10},
	)

	stats, err := service.GetUserStats(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 15, stats.TokenBalance)
	assert.Equal(t, int64(2), stats.ReviewsCount)
}
