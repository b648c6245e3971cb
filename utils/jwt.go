package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// devSecret signs tokens when no JWT_SECRET is configured outside production.
const devSecret = "booking-schedule-dev-secret"

// TokenClaims is the payload carried by an access token.
type TokenClaims struct {
	NsEmployeeID string `json:"ns_employee_id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	UserType     string `json:"user_type"`
	GiveAccess   bool   `json:"give_access"`
	MobileAccess bool   `json:"mobile_access"`
	MerchantNsID string `json:"merchant_ns_id"`
	jwt.StandardClaims
}

// TokenIssuer signs and validates HS256 tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer builds an issuer whose tokens expire after expiryDays.
func NewTokenIssuer(secret string, expiryDays int) *TokenIssuer {
	if secret == "" {
		secret = devSecret
	}
	if expiryDays <= 0 {
		expiryDays = 365
	}
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    time.Duration(expiryDays) * 24 * time.Hour,
	}
}

// ExpiryDays is the lifetime of issued tokens in whole days.
func (ti *TokenIssuer) ExpiryDays() int {
	return int(ti.ttl / (24 * time.Hour))
}

// GenerateToken signs claims issued at now and returns the token with its expiry.
func (ti *TokenIssuer) GenerateToken(claims TokenClaims, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(ti.ttl)
	claims.IssuedAt = now.Unix()
	claims.ExpiresAt = expiresAt.Unix()
	claims.Subject = claims.Username

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken checks signature and expiry and returns the decoded claims.
func (ti *TokenIssuer) ValidateToken(tokenString string) (*TokenClaims, error) {
	if tokenString == "" {
		return nil, errors.New("empty token")
	}
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return ti.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
