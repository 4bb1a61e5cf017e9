package oauth

import (
	"context"
	"fmt"

	"uavops-service/pkg/logger"

	"google.golang.org/api/idtoken"
)

// Identity is the verified principal extracted from a bearer token.
type Identity struct {
	Subject string
	Email   string
}

// IdentityVerifier validates bearer tokens and yields the stable actor id
// and email they carry.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

// GoogleIdentity verifies Google-issued ID tokens against the configured
// OAuth client id.
type GoogleIdentity struct {
	validator *idtoken.Validator
	audience  string
	logger    logger.Logger
}

// NewGoogleIdentity creates a new Google ID token verifier
func NewGoogleIdentity(ctx context.Context, clientID string, logger logger.Logger) (*GoogleIdentity, error) {
	validator, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create id token validator: %w", err)
	}

	return &GoogleIdentity{
		validator: validator,
		audience:  clientID,
		logger:    logger,
	}, nil
}

// Verify checks the token signature, expiry and audience, and extracts the
// subject and email claims.
func (g *GoogleIdentity) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	payload, err := g.validator.Validate(ctx, rawToken, g.audience)
	if err != nil {
		return nil, fmt.Errorf("invalid id token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		g.logger.Warn("ID token without email claim", "subject", payload.Subject)
	}

	return &Identity{
		Subject: payload.Subject,
		Email:   email,
	}, nil
}
