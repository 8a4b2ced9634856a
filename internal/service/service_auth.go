package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/beichen-observer/internal/config"
	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/store"
	"github.com/MKhiriev/beichen-observer/internal/utils"
	"github.com/MKhiriev/beichen-observer/models"
)

const (
	tokenType        = "Bearer"
	adminAccountName = "Administrator"
)

// authService is the concrete implementation of AuthService.
// It verifies bcrypt password hashes stored in the users table and issues
// HS256 access tokens.
type authService struct {
	// userRepository is the data-access layer used to look up and upsert users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// An empty key disables authentication.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	adminEmail    string
	adminPassword string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		adminEmail:     cfg.AdminEmail,
		adminPassword:  cfg.AdminPassword,
		logger:         logger,
	}
}

func (a *authService) Enabled() bool {
	return a.tokenSignKey != ""
}

// Login authenticates an account by email and password and issues an access
// token for it.
//
// Returns:
//   - ErrAuthDisabled if no signing key is configured.
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongCredentials if the account is unknown, has no password or the
//     password does not match.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if !a.Enabled() {
		return models.LoginResponse{}, ErrAuthDisabled
	}

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.LoginResponse{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", credentials.Email).Msg("login for unknown email")
		return models.LoginResponse{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.LoginResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.PasswordHash == "" {
		log.Warn().Str("id", user.ID.String()).Msg("account has no password")
		return models.LoginResponse{}, ErrWrongCredentials
	}
	if err = utils.CheckPassword(user.PasswordHash, credentials.Password); err != nil {
		log.Warn().Str("id", user.ID.String()).Msg("wrong password")
		return models.LoginResponse{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Debug().Str("id", user.ID.String()).Msg("user successfully logged in")

	return models.LoginResponse{
		AccessTokenSnake: token.SignedString,
		TokenType:        tokenType,
		ExpiresIn:        int64(a.tokenDuration.Seconds()),
	}, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) EnsureAdmin(ctx context.Context) error {
	if a.adminEmail == "" {
		return nil
	}

	hash, err := utils.HashPassword(a.adminPassword)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	admin, err := a.userRepository.UpsertUser(ctx, models.User{
		Name:         adminAccountName,
		Email:        a.adminEmail,
		Role:         models.RoleAdmin,
		PasswordHash: hash,
	})
	if err != nil {
		return fmt.Errorf("error saving admin account: %w", err)
	}

	a.logger.Info().Str("id", admin.ID.String()).Str("email", admin.Email).Msg("admin account is ready")
	return nil
}
