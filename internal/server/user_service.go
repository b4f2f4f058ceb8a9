package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/portfolio-studio/internal/config"
	"github.com/jonathan/portfolio-studio/internal/db"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// UserService provides business logic for user authentication operations
type UserService struct {
	db             *db.DB
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(database *db.DB, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             database,
		passwordConfig: passwordConfig,
	}
}

// toAPIUser converts db.User to types.User, excluding the password hash
func toAPIUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:        dbUser.ID,
		Name:      dbUser.Name,
		Email:     dbUser.Email,
		CreatedAt: dbUser.CreatedAt,
		UpdatedAt: dbUser.UpdatedAt,
	}
}

// Register creates a new user with password authentication
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	_, err := s.db.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	dbUser, err := s.db.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toAPIUser(dbUser), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		// A generic error for both unknown email and wrong password.
		if errors.Is(err, db.ErrNotFound) {
			return nil, &ErrInvalidCredentials{}
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return toAPIUser(dbUser), nil
}

// GetUser retrieves a user profile by ID.
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	dbUser, err := s.db.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, &ErrUserNotFound{UserID: userID}
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toAPIUser(dbUser), nil
}
