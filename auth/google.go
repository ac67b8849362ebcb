package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/myjobmatch/jobfeed/config"
)

// ErrGoogleNotConfigured is returned when GOOGLE_CLIENT_ID is unset.
var ErrGoogleNotConfigured = errors.New("google sign-in is not configured")

// GoogleIdentity is what a verified Google ID token tells us about a user.
type GoogleIdentity struct {
	GoogleID string
	Email    string
	Name     string
}

// TokenValidator validates a Google ID token for an audience.
type TokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleAuthService verifies Google sign-in tokens
type GoogleAuthService struct {
	clientID string
	validate TokenValidator
}

// NewGoogleAuthService creates a verifier backed by Google's public keys.
func NewGoogleAuthService(cfg *config.Config) *GoogleAuthService {
	return &GoogleAuthService{clientID: cfg.GoogleClientID, validate: idtoken.Validate}
}

// VerifyIDToken checks idToken and returns the identity it carries.
func (s *GoogleAuthService) VerifyIDToken(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	if s.clientID == "" {
		return nil, ErrGoogleNotConfigured
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	identity := &GoogleIdentity{GoogleID: payload.Subject}
	identity.Email, _ = payload.Claims["email"].(string)
	identity.Name, _ = payload.Claims["name"].(string)

	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, errors.New("google account email is not verified")
	}
	if identity.Email == "" {
		return nil, errors.New("email not found in token")
	}

	return identity, nil
}
