package service

import (
	"context"
	"errors"
	"time"

	"github.com/reelstream/reelstream-go/internal/crypto"
	"github.com/reelstream/reelstream-go/internal/model"
	"github.com/reelstream/reelstream-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already exists")
)

// AuthService handles authentication business logic.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account with a hashed password.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	if req.Email == "" {
		return ErrEmailRequired
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

// Login authenticates a user and returns a signed bearer token. Unknown
// email and wrong password both surface as ErrInvalidCredentials so the
// response never reveals which one failed.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	if req.Email == "" {
		return "", ErrEmailRequired
	}
	if req.Password == "" {
		return "", ErrPasswordRequired
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiry)
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
