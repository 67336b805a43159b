package services

import (
	"context"

	"github.com/gapy-app/gapy_backend/internal/core/domain"
	"github.com/gapy-app/gapy_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new user with a bcrypt-hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// UpdateUser applies partial updates to the user's profile.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// ChangePassword replaces the login password after verifying the current one.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error

	// DeleteUser soft-deletes the user.
	DeleteUser(ctx context.Context, userID string) error
}

// UserAuthenticatorSvc verifies credentials and provisions external identities.
type UserAuthenticatorSvc interface {
	// AuthenticateUser checks username and password, returning the user on success.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// UpsertUserFromGoogle finds or creates a user for a verified Google identity.
	UpsertUserFromGoogle(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthenticatorSvc
}
