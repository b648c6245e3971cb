package middleware

import (
	"errors"
	"net/http"

	"bookingschedule/models"
	"bookingschedule/services/auth"
	"bookingschedule/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const claimsKey = "claims"

// MerchantAuthMiddleware validates the access token read from header and
// stores the live claims on the request context.
func MerchantAuthMiddleware(authSvc auth.AuthService, header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()

		token := c.GetHeader(header)
		if token == "" {
			abortUnauthorized(c, "Token is required")
			return
		}

		claims, err := authSvc.Validate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, utils.ErrAuthentication) {
				logger.Error("Token validation failed", zap.Error(err))
				utils.JSONError(c, err)
				return
			}
			abortUnauthorized(c, "Invalid or expired token")
			return
		}
		if claims.MerchantNsID == "" {
			logger.Warn("Token owner has no merchant", zap.String("username", claims.Username))
			abortUnauthorized(c, "Merchant not linked to user")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by MerchantAuthMiddleware.
func ClaimsFrom(c *gin.Context) (*utils.TokenClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.TokenClaims)
	return claims, ok && claims != nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
		Status:  models.StatusFailure,
		Message: message,
	})
}
