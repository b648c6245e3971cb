package auth

import (
	"context"
	"fmt"
	"time"

	"bookingschedule/models"
	"bookingschedule/utils"

	"go.uber.org/zap"
)

const (
	msgUserNotFound   = "User not found."
	msgUserInactive   = "User is inactive."
	msgNoAccess       = "The user didn't have access."
	msgAccessDisabled = "Access is not enabled."
	msgBadCredentials = "Invalid username or password."

	msgTokenRequired = "Token is required"
	msgTokenInvalid  = "Invalid or expired token"
)

func failure(message string) *models.AuthResponse {
	return &models.AuthResponse{Status: models.StatusFailure, Message: message}
}

func (s *DefaultAuthService) Authenticate(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	if username == "" || password == "" {
		return nil, utils.NewAppError(utils.ErrAuthentication, "Username and password are required")
	}

	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		logger.Error("Authenticate: failed to fetch user", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	switch {
	case user == nil || user.Deleted:
		return failure(msgUserNotFound), nil
	case user.Inactive:
		return failure(msgUserInactive), nil
	case !user.GiveAccess:
		return failure(msgNoAccess), nil
	case user.UserType != models.UserTypeMerchant:
		return failure(msgAccessDisabled), nil
	}

	if !utils.VerifyPassword(password, user.PasswordHash) {
		logger.Info("Authenticate: password mismatch", zap.String("username", username))
		return failure(msgBadCredentials), nil
	}

	token, _, err := s.Issuer.GenerateToken(claimsFor(user), s.Clock.Now())
	if err != nil {
		logger.Error("Authenticate: failed to sign token", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	profile := user.Profile()
	logger.Info("User authenticated", zap.String("username", username), zap.String("merchantNsID", user.MerchantNsID))
	return &models.AuthResponse{
		Status:           models.StatusSuccess,
		Message:          "User found",
		TokenExpireAfter: s.Issuer.ExpiryDays(),
		Data:             &profile,
		Token:            token,
	}, nil
}

func (s *DefaultAuthService) Validate(ctx context.Context, token string) (*utils.TokenClaims, error) {
	if token == "" {
		return nil, utils.NewAppError(utils.ErrAuthentication, msgTokenRequired)
	}

	claims, err := s.Issuer.ValidateToken(token)
	if err != nil {
		utils.GetLogger().Debug("Validate: token rejected", zap.Error(err))
		return nil, utils.NewAppError(utils.ErrAuthentication, msgTokenInvalid)
	}
	// jwt v3 checks exp against the wall clock; the injected clock must agree.
	if !time.Unix(claims.ExpiresAt, 0).After(s.Clock.Now()) {
		return nil, utils.NewAppError(utils.ErrAuthentication, msgTokenInvalid)
	}

	user, err := s.Users.GetByUsername(ctx, claims.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch token owner: %w", err)
	}
	if user == nil || user.Deleted || user.Inactive || !user.GiveAccess || user.UserType != models.UserTypeMerchant {
		return nil, utils.NewAppError(utils.ErrAuthentication, msgTokenInvalid)
	}

	claims.MerchantNsID = user.MerchantNsID
	return claims, nil
}

func (s *DefaultAuthService) VerifyToken(ctx context.Context, token string) *models.VerifyResponse {
	if token == "" {
		return &models.VerifyResponse{Status: models.StatusFailure, Message: msgTokenRequired}
	}

	claims, err := s.Validate(ctx, token)
	if err != nil {
		return &models.VerifyResponse{Status: models.StatusFailure, Message: msgTokenInvalid}
	}

	remaining := time.Unix(claims.ExpiresAt, 0).Sub(s.Clock.Now())
	return &models.VerifyResponse{
		Status:           models.StatusSuccess,
		Message:          "Token is valid",
		Valid:            true,
		TokenExpireAfter: int(remaining / (24 * time.Hour)),
		Data: &models.TokenOwnerData{
			Username:     claims.Username,
			Name:         claims.Name,
			Email:        claims.Email,
			MerchantNsID: claims.MerchantNsID,
		},
	}
}

func claimsFor(user *models.MerchantUser) utils.TokenClaims {
	return utils.TokenClaims{
		NsEmployeeID: user.NsEmployeeID,
		Username:     user.Username,
		Name:         user.FullName,
		Email:        user.Email,
		Phone:        user.Phone,
		UserType:     user.UserType,
		GiveAccess:   user.GiveAccess,
		MobileAccess: user.MobileAccess,
		MerchantNsID: user.MerchantNsID,
	}
}
