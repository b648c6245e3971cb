package handlers

import (
	"errors"
	"io"
	"net/http"

	"bookingschedule/middleware"
	"bookingschedule/models"
	"bookingschedule/services/auth"
	"bookingschedule/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the credential endpoints.
type AuthHandler struct {
	Auth        auth.AuthService
	TokenHeader string
}

func NewAuthHandler(authSvc auth.AuthService, tokenHeader string) *AuthHandler {
	return &AuthHandler{Auth: authSvc, TokenHeader: tokenHeader}
}

type credentials struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// AuthenticateHandler handles POST /api/auth/authenticate. Credential
// mismatches answer 200 with a Failure body.
func (h *AuthHandler) AuthenticateHandler(c *gin.Context) {
	logger := getLogger(c)

	var input credentials
	if err := c.ShouldBind(&input); err != nil && !errors.Is(err, io.EOF) {
		logger.Debug("Authenticate: malformed body", zap.Error(err))
		utils.JSONError(c, utils.NewAppError(utils.ErrValidation, "Invalid request body"))
		return
	}

	res, err := h.Auth.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// VerifyHandler handles GET /api/auth/verify.
func (h *AuthHandler) VerifyHandler(c *gin.Context) {
	res := h.Auth.VerifyToken(c.Request.Context(), c.GetHeader(h.TokenHeader))
	c.JSON(http.StatusOK, res)
}

// merchantNsID reads the caller's merchant from the claims on c.
func merchantNsID(c *gin.Context) (string, bool) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok || claims.MerchantNsID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Status:  models.StatusFailure,
			Message: "Merchant not linked to user",
		})
		return "", false
	}
	return claims.MerchantNsID, true
}
