package auth

import (
	"context"
	"testing"
	"time"

	memoryRepo "bookingschedule/database/repository/memory"
	"bookingschedule/models"
	"bookingschedule/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const password = "s3cret!"

func newAuthService(t *testing.T) (*DefaultAuthService, *memoryRepo.Store, models.MerchantUser) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := models.MerchantUser{
		Username:     "dispatch",
		PasswordHash: hash,
		NsEmployeeID: "E-7",
		FullName:     "Dispatch Desk",
		Email:        "desk@example.com",
		UserType:     models.UserTypeMerchant,
		GiveAccess:   true,
		MerchantNsID: "NS-1",
	}
	store := memoryRepo.NewStore()
	require.NoError(t, store.Users().Create(context.Background(), &user))

	// Tokens are checked against the wall clock by the jwt library as well.
	return &DefaultAuthService{
		Users:  store.Users(),
		Issuer: utils.NewTokenIssuer("test-secret", 30),
		Clock:  utils.NewFixedClock(time.Now()),
	}, store, user
}

func TestAuthenticate_Success(t *testing.T) {
	svc, _, user := newAuthService(t)

	res, err := svc.Authenticate(context.Background(), user.Username, password)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, res.Status)
	assert.Equal(t, "User found", res.Message)
	assert.Equal(t, 30, res.TokenExpireAfter)
	require.NotNil(t, res.Data)
	assert.Equal(t, "Dispatch Desk", res.Data.Name)
	assert.Equal(t, "E-7", res.Data.NsEmployeeID)

	claims, err := svc.Issuer.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "NS-1", claims.MerchantNsID)
	assert.Equal(t, "dispatch", claims.Subject)
}

func TestAuthenticate_MissingCredentials(t *testing.T) {
	svc, _, user := newAuthService(t)

	for _, pair := range [][2]string{{"", password}, {user.Username, ""}, {"", ""}} {
		res, err := svc.Authenticate(context.Background(), pair[0], pair[1])
		require.ErrorIs(t, err, utils.ErrAuthentication)
		assert.Nil(t, res)
	}
}

func TestAuthenticate_SoftFailures(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(u *models.MerchantUser)
		username string
		password string
		message  string
	}{
		{"unknown user", nil, "nobody", password, msgUserNotFound},
		{"deleted user", func(u *models.MerchantUser) { u.Deleted = true }, "", password, msgUserNotFound},
		{"inactive user", func(u *models.MerchantUser) { u.Inactive = true }, "", password, msgUserInactive},
		{"access not granted", func(u *models.MerchantUser) { u.GiveAccess = false }, "", password, msgNoAccess},
		{"wrong category", func(u *models.MerchantUser) { u.UserType = "driver" }, "", password, msgAccessDisabled},
		{"wrong password", nil, "", "guess", msgBadCredentials},
		{"unsupported hash", func(u *models.MerchantUser) { u.PasswordHash = password }, "", password, msgBadCredentials},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, store, user := newAuthService(t)
			if tc.mutate != nil {
				tc.mutate(&user)
				store.PutUser(user)
			}
			username := tc.username
			if username == "" {
				username = user.Username
			}

			res, err := svc.Authenticate(context.Background(), username, tc.password)
			require.NoError(t, err)
			assert.Equal(t, models.StatusFailure, res.Status)
			assert.Equal(t, tc.message, res.Message)
			assert.Nil(t, res.Data)
			assert.Empty(t, res.Token)
		})
	}
}

func issue(t *testing.T, svc *DefaultAuthService) string {
	t.Helper()
	res, err := svc.Authenticate(context.Background(), "dispatch", password)
	require.NoError(t, err)
	require.Equal(t, models.StatusSuccess, res.Status)
	return res.Token
}

func TestValidate_RefreshesMerchantFromLiveRecord(t *testing.T) {
	svc, store, user := newAuthService(t)
	token := issue(t, svc)

	user.MerchantNsID = "NS-2"
	store.PutUser(user)

	claims, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "NS-2", claims.MerchantNsID)
}

func TestValidate_RejectsRevokedUsers(t *testing.T) {
	mutations := map[string]func(u *models.MerchantUser){
		"deleted":         func(u *models.MerchantUser) { u.Deleted = true },
		"inactive":        func(u *models.MerchantUser) { u.Inactive = true },
		"access revoked":  func(u *models.MerchantUser) { u.GiveAccess = false },
		"category change": func(u *models.MerchantUser) { u.UserType = "admin" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			svc, store, user := newAuthService(t)
			token := issue(t, svc)

			mutate(&user)
			store.PutUser(user)

			_, err := svc.Validate(context.Background(), token)
			require.ErrorIs(t, err, utils.ErrAuthentication)
			var appErr *utils.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, msgTokenInvalid, appErr.Message)
		})
	}
}

func TestValidate_RejectsBadTokens(t *testing.T) {
	svc, _, _ := newAuthService(t)
	token := issue(t, svc)

	_, err := svc.Validate(context.Background(), "")
	assert.ErrorIs(t, err, utils.ErrAuthentication)

	_, err = svc.Validate(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, utils.ErrAuthentication)

	other := &DefaultAuthService{Users: svc.Users, Issuer: utils.NewTokenIssuer("other-secret", 30), Clock: svc.Clock}
	_, err = other.Validate(context.Background(), token)
	assert.ErrorIs(t, err, utils.ErrAuthentication)

	later := &DefaultAuthService{Users: svc.Users, Issuer: svc.Issuer, Clock: utils.NewFixedClock(time.Now().AddDate(0, 0, 31))}
	_, err = later.Validate(context.Background(), token)
	assert.ErrorIs(t, err, utils.ErrAuthentication)
}

func TestVerifyToken(t *testing.T) {
	svc, _, _ := newAuthService(t)

	res := svc.VerifyToken(context.Background(), "")
	assert.False(t, res.Valid)
	assert.Equal(t, msgTokenRequired, res.Message)

	res = svc.VerifyToken(context.Background(), "garbage")
	assert.False(t, res.Valid)
	assert.Equal(t, models.StatusFailure, res.Status)
	assert.Equal(t, msgTokenInvalid, res.Message)

	token := issue(t, svc)
	later := &DefaultAuthService{Users: svc.Users, Issuer: svc.Issuer, Clock: utils.NewFixedClock(time.Now().Add(10*24*time.Hour + time.Hour))}
	res = later.VerifyToken(context.Background(), token)
	assert.True(t, res.Valid)
	assert.Equal(t, "Token is valid", res.Message)
	assert.Equal(t, 19, res.TokenExpireAfter)
	require.NotNil(t, res.Data)
	assert.Equal(t, "dispatch", res.Data.Username)
	assert.Equal(t, "NS-1", res.Data.MerchantNsID)
}
