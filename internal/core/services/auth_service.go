package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/platform/config"
	"github.com/Sachin796/Worktopia/internal/utils"
	"google.golang.org/api/idtoken"
)

// tokenService issues JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token carrying the user's role.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, user.Role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

type idTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type googleIDTokenService struct {
	clientID string
	validate idTokenValidator
}

// NewGoogleIDTokenService validates Google ID tokens issued for clientID.
func NewGoogleIDTokenService(clientID string) portssvc.GoogleIDTokenSvc {
	return &googleIDTokenService{clientID: clientID, validate: idtoken.Validate}
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleIDTokenService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.clientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := s.validate(ctx, idTokenString, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}
