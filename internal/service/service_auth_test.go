package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/beichen-observer/internal/config"
	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/mock"
	"github.com/MKhiriev/beichen-observer/internal/store"
	"github.com/MKhiriev/beichen-observer/internal/utils"
	"github.com/MKhiriev/beichen-observer/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "secret",
	TokenIssuer:   "beichen-observer",
	TokenDuration: time.Hour,
	AdminEmail:    "admin@beichen.cn",
	AdminPassword: "admin-password",
}

func newTestAuthService(t *testing.T, cfg config.App) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	return NewAuthService(users, cfg, logger.Nop()), users
}

func TestAuthService_Enabled(t *testing.T) {
	svc, _ := newTestAuthService(t, testAppConfig)
	assert.True(t, svc.Enabled())

	svc, _ = newTestAuthService(t, config.App{})
	assert.False(t, svc.Enabled())
}

func TestAuthService_LoginSuccess(t *testing.T) {
	svc, users := newTestAuthService(t, testAppConfig)
	ctx := context.Background()

	hash, err := utils.HashPassword("teacher-password")
	require.NoError(t, err)
	users.EXPECT().FindUserByEmail(ctx, "wang@beichen.cn").
		Return(models.User{ID: "u1", Email: "wang@beichen.cn", PasswordHash: hash}, nil)

	response, err := svc.Login(ctx, models.Credentials{Email: "wang@beichen.cn", Password: "teacher-password"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(3600), response.ExpiresIn)
	require.NotEmpty(t, response.AccessToken())

	token, err := svc.ParseToken(ctx, response.AccessToken())
	require.NoError(t, err)
	assert.Equal(t, models.ID("u1"), token.UserID)
}

func TestAuthService_LoginFailures(t *testing.T) {
	hash, err := utils.HashPassword("teacher-password")
	require.NoError(t, err)
	dbErr := errors.New("connection refused")

	tests := []struct {
		name        string
		credentials models.Credentials
		setup       func(users *mock.MockUserRepository)
		wantErr     error
	}{
		{
			name:        "empty password",
			credentials: models.Credentials{Email: "wang@beichen.cn"},
			wantErr:     ErrInvalidDataProvided,
		},
		{
			name:        "unknown email",
			credentials: models.Credentials{Email: "nobody@beichen.cn", Password: "x"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "nobody@beichen.cn").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name:        "account without password",
			credentials: models.Credentials{Email: "wang@beichen.cn", Password: "x"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "wang@beichen.cn").Return(models.User{ID: "u1"}, nil)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name:        "wrong password",
			credentials: models.Credentials{Email: "wang@beichen.cn", Password: "wrong"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "wang@beichen.cn").Return(models.User{ID: "u1", PasswordHash: hash}, nil)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name:        "storage failure",
			credentials: models.Credentials{Email: "wang@beichen.cn", Password: "x"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "wang@beichen.cn").Return(models.User{}, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users := newTestAuthService(t, testAppConfig)
			if tt.setup != nil {
				tt.setup(users)
			}

			_, err := svc.Login(context.Background(), tt.credentials)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_LoginDisabled(t *testing.T) {
	svc, _ := newTestAuthService(t, config.App{})

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestAuthService_ParseTokenRejectsForeignTokens(t *testing.T) {
	svc, _ := newTestAuthService(t, testAppConfig)

	foreign, err := utils.GenerateJWTToken("someone-else", "u1", time.Hour, "secret")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.ParseToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	svc, users := newTestAuthService(t, testAppConfig)
	ctx := context.Background()

	users.EXPECT().UpsertUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
		assert.Equal(t, "admin@beichen.cn", user.Email)
		assert.Equal(t, models.RoleAdmin, user.Role)
		assert.NoError(t, utils.CheckPassword(user.PasswordHash, "admin-password"))
		user.ID = "admin"
		return user, nil
	})

	require.NoError(t, svc.EnsureAdmin(ctx))
}

func TestAuthService_EnsureAdminWithoutAccount(t *testing.T) {
	cfg := testAppConfig
	cfg.AdminEmail = ""
	svc, _ := newTestAuthService(t, cfg)

	assert.NoError(t, svc.EnsureAdmin(context.Background()))
}
