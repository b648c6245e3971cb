package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	memoryRepo "bookingschedule/database/repository/memory"
	"bookingschedule/models"
	"bookingschedule/services/auth"
	"bookingschedule/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthFixture(t *testing.T, merchantNsID string) (*auth.DefaultAuthService, string) {
	t.Helper()
	hash, err := utils.HashPassword("pw")
	require.NoError(t, err)
	store := memoryRepo.NewStore()
	require.NoError(t, store.Users().Create(context.Background(), &models.MerchantUser{
		Username:     "desk",
		PasswordHash: hash,
		UserType:     models.UserTypeMerchant,
		GiveAccess:   true,
		MerchantNsID: merchantNsID,
	}))

	svc := &auth.DefaultAuthService{
		Users:  store.Users(),
		Issuer: utils.NewTokenIssuer("mw-secret", 1),
		Clock:  utils.NewFixedClock(time.Now()),
	}
	res, err := svc.Authenticate(context.Background(), "desk", "pw")
	require.NoError(t, err)
	require.Equal(t, models.StatusSuccess, res.Status)
	return svc, res.Token
}

func protectedRouter(svc auth.AuthService) *gin.Engine {
	r := gin.New()
	r.GET("/private", MerchantAuthMiddleware(svc, "x-access-token"), func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"merchant": claims.MerchantNsID})
	})
	return r
}

func doGet(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if token != "" {
		req.Header.Set("x-access-token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func failureMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.StatusFailure, body.Status)
	return body.Message
}

func TestMerchantAuthMiddleware(t *testing.T) {
	svc, token := newAuthFixture(t, "NS-9")
	r := protectedRouter(svc)

	w := doGet(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"merchant":"NS-9"}`, w.Body.String())

	w = doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is required", failureMessage(t, w))

	w = doGet(r, token+"x")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", failureMessage(t, w))
}

func TestMerchantAuthMiddleware_UserWithoutMerchant(t *testing.T) {
	svc, token := newAuthFixture(t, "")

	w := doGet(protectedRouter(svc), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Merchant not linked to user", failureMessage(t, w))
}

func TestClaimsFrom_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := ClaimsFrom(c)
	assert.False(t, ok)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(3))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, call("203.0.113.5"))
	}
	assert.Equal(t, http.StatusTooManyRequests, call("203.0.113.5"))
	assert.Equal(t, http.StatusOK, call("203.0.113.6"), "buckets are per client")
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": " 198.51.100.1 , 10.0.0.2"}, "10.0.0.3:999", "198.51.100.1"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.2"}, "10.0.0.3:999", "198.51.100.2"},
		{"socket", nil, "192.0.2.4:5555", "192.0.2.4"},
		{"socket without port", nil, "192.0.2.5", "192.0.2.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, getClientIP(c))
		})
	}
}

func TestRequestLogger_StoresLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Get("logger")
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
