package services

import (
	"context"
	"io"
	"time"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	"github.com/Sachin796/Worktopia/internal/dto"
	"google.golang.org/api/idtoken"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// FindOrCreateGoogleUser returns the user with the given email, creating it if needed.
	FindOrCreateGoogleUser(ctx context.Context, email, name string, role domain.UserRole) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks a username and password.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}

// TokenSvcFacade issues access tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleIDTokenSvc validates ID tokens issued by Google sign-in.
type GoogleIDTokenSvc interface {
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}

// UploadSvc stores uploaded workspace images.
type UploadSvc interface {
	// SaveUpload stores the content under a generated name and returns that name.
	SaveUpload(ctx context.Context, originalName string, size int64, content io.Reader) (string, error)
}
