package auth

import (
	"context"

	merchantUserRepo "bookingschedule/database/repository/merchantuser"
	"bookingschedule/models"
	"bookingschedule/utils"
)

// AuthService issues and checks merchant access tokens.
type AuthService interface {
	// Authenticate returns a soft result for every credential outcome. Only
	// missing input and infrastructure faults are errors.
	Authenticate(ctx context.Context, username, password string) (*models.AuthResponse, error)
	// Validate returns the live claims of token or an authentication error.
	Validate(ctx context.Context, token string) (*utils.TokenClaims, error)
	// VerifyToken reports token validity to clients; it never fails.
	VerifyToken(ctx context.Context, token string) *models.VerifyResponse
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Users  merchantUserRepo.MerchantUserRepository
	Issuer *utils.TokenIssuer
	Clock  utils.Clock
}
