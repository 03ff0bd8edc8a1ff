// Package services contains server-side business logic. This file implements
// UserService: registration (which also opens the user's account), login,
// refresh token rotation, profile changes and user search.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/logging"
	"github.com/dmitrijs2005/gophwallet/internal/server/auth"
	"github.com/dmitrijs2005/gophwallet/internal/server/config"
	"github.com/dmitrijs2005/gophwallet/internal/server/models"
	"github.com/dmitrijs2005/gophwallet/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophwallet/internal/server/telemetry"
	"github.com/go-playground/validator/v10"
)

// FindUsersLimit caps the number of users returned by a search.
const FindUsersLimit = 50

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type SignupInput struct {
	UserName  string `validate:"required,min=3,max=30,email"`
	Password  string `validate:"required,min=6"`
	FirstName string `validate:"required,max=50"`
	LastName  string `validate:"required,max=50"`
}

type SigninInput struct {
	UserName string `validate:"required,email"`
	Password string `validate:"required"`
}

// UpdateProfileInput holds optional changes; nil fields stay as they are.
type UpdateProfileInput struct {
	Password  *string `validate:"omitnil,min=6"`
	FirstName *string `validate:"omitnil,min=1,max=50"`
	LastName  *string `validate:"omitnil,min=1,max=50"`
}

type UserService struct {
	repomanager                  repomanager.RepositoryManager
	validate                     *validator.Validate
	log                          logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	bcryptCost                   int
	signupBalance                int64
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) *UserService {
	return &UserService{
		repomanager:                  m,
		validate:                     validator.New(),
		log:                          log.With("module", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		bcryptCost:                   cfg.BcryptCost,
		signupBalance:                cfg.SignupBalance,
	}
}

// NormalizeUserName trims and lowercases a login.
func NormalizeUserName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *UserService) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}
	return nil
}

// Signup registers a user and opens the user's account in one transaction,
// then issues a token pair. A taken username yields common.ErrorAlreadyExists,
// bad input common.ErrorValidation.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, *TokenPair, error) {
	in.UserName = NormalizeUserName(in.UserName)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if err := s.check(in); err != nil {
		return nil, nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	var (
		user *models.User
		pair *TokenPair
	)
	err = s.repomanager.WithTx(ctx, func(ctx context.Context, tx repomanager.Repositories) error {
		u, err := tx.Users().Create(ctx, &models.User{
			UserName:     in.UserName,
			PasswordHash: hash,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
		})
		if err != nil {
			return err
		}
		if err := tx.Accounts().Create(ctx, u.ID, s.signupBalance); err != nil {
			return fmt.Errorf("error creating account: %w", err)
		}
		user = u
		pair, err = s.generateTokenPair(ctx, tx, u.ID)
		return err
	})
	if err != nil {
		if !errors.Is(err, common.ErrorAlreadyExists) {
			s.log.Error(ctx, "signup failed", "error", err)
		}
		return nil, nil, err
	}

	telemetry.SignupsTotal.Inc()
	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return user, pair, nil
}

// Signin verifies credentials and issues a token pair. Unknown users and
// wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Signin(ctx context.Context, in SigninInput) (*TokenPair, error) {
	in.UserName = NormalizeUserName(in.UserName)
	if err := s.check(in); err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users().GetUserByLogin(ctx, in.UserName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		s.log.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	ok, err := auth.CheckPassword(user.PasswordHash, in.Password)
	if err != nil {
		s.log.Error(ctx, "password check failed", "user_id", user.ID, "error", err)
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	return s.generateTokenPair(ctx, s.repomanager, user.ID)
}

// RefreshToken redeems a refresh token for a new pair. The old token is
// deleted in the same transaction that stores the new one.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair *TokenPair
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx repomanager.Repositories) error {
		token, err := tx.RefreshTokens().Find(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return fmt.Errorf("error searching refresh token: %w", err)
		}
		if token.Expires.Before(time.Now()) {
			return common.ErrRefreshTokenExpired
		}
		if err := tx.RefreshTokens().Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		pair, err = s.generateTokenPair(ctx, tx, token.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// UpdateProfile applies the given changes. A new password revokes every
// refresh token of the user.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) error {
	if in.FirstName != nil {
		v := strings.TrimSpace(*in.FirstName)
		in.FirstName = &v
	}
	if in.LastName != nil {
		v := strings.TrimSpace(*in.LastName)
		in.LastName = &v
	}
	if err := s.check(in); err != nil {
		return err
	}

	profile := models.UserProfile{FirstName: in.FirstName, LastName: in.LastName}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password, s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		profile.PasswordHash = hash
	}

	return s.repomanager.WithTx(ctx, func(ctx context.Context, tx repomanager.Repositories) error {
		if err := tx.Users().UpdateProfile(ctx, userID, profile); err != nil {
			return err
		}
		if profile.PasswordHash != nil {
			return tx.RefreshTokens().DeleteByUser(ctx, userID)
		}
		return nil
	})
}

// FindUsers returns users whose first or last name contains filter.
func (s *UserService) FindUsers(ctx context.Context, filter string) ([]*models.User, error) {
	return s.repomanager.Users().Find(ctx, strings.TrimSpace(filter), FindUsersLimit)
}

// Authenticate resolves an access token to a user id.
func (s *UserService) Authenticate(accessToken string) (string, error) {
	return auth.GetUserIDFromToken(accessToken, s.jwtSecret)
}

// --- helpers below ---

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, repos repomanager.Repositories, userID string) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := repos.RefreshTokens().Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		s.log.Error(ctx, "error storing refresh token", "error", err)
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
