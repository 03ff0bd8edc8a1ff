// Package services contains application services for the wallet CLI.
// This file defines the authentication service: registration, login,
// session persistence in the local database, and logout.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophwallet/internal/client/client"
	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophwallet/internal/dbx"
	"github.com/dmitrijs2005/gophwallet/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Session identifies the logged-in user.
type Session struct {
	UserID   string
	Username string
}

// RegisterInput is what the CLI collects at sign-up.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// AuthService defines authentication operations for the CLI.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*Session, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	RestoreSession(ctx context.Context) (*Session, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger
}

// NewAuthService binds the service to an API client and the local database.
// Tokens rotated by the client are written back to the database.
func NewAuthService(c client.Client, db *sql.DB, logger logging.Logger) AuthService {
	a := &authService{client: c, db: db, logger: logger}
	c.OnTokensRefreshed(a.persistTokens)
	return a
}

func (a *authService) getMetadataRepo() *metadata.SQLiteRepository {
	return metadata.NewSQLiteRepository(a.db)
}

func (a *authService) persistTokens(accessToken, refreshToken string) {
	ctx := context.Background()
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeyAccessToken, []byte(accessToken)); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyRefreshToken, []byte(refreshToken))
	})
	if err != nil {
		a.logger.Warn(ctx, "failed to persist refreshed tokens", "error", err)
	}
}

func (a *authService) saveSession(ctx context.Context, s *Session) error {
	access, refresh := a.client.Tokens()

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		values := map[string]string{
			metadata.KeyUserID:       s.UserID,
			metadata.KeyUsername:     s.Username,
			metadata.KeyAccessToken:  access,
			metadata.KeyRefreshToken: refresh,
		}
		for k, v := range values {
			if err := repo.Set(ctx, k, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Register creates the user on the server and keeps the returned session.
func (a *authService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))

	userID, err := a.client.Register(ctx, username, in.Password, strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName))
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}

	s := &Session{UserID: userID, Username: username}
	if err := a.saveSession(ctx, s); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return s, nil
}

// Login signs in and keeps the session. The user id is read from the
// access token's claims.
func (a *authService) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	if err := a.client.Login(ctx, username, password); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	access, _ := a.client.Tokens()
	userID, err := userIDFromToken(access)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	s := &Session{UserID: userID, Username: username}
	if err := a.saveSession(ctx, s); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return s, nil
}

// RestoreSession loads the stored session and hands its tokens to the
// client. It returns client.ErrNotLoggedIn when nothing is stored.
func (a *authService) RestoreSession(ctx context.Context) (*Session, error) {
	all, err := a.getMetadataRepo().List(ctx)
	if err != nil {
		return nil, err
	}

	refresh := string(all[metadata.KeyRefreshToken])
	userID := string(all[metadata.KeyUserID])
	if refresh == "" || userID == "" {
		return nil, client.ErrNotLoggedIn
	}

	a.client.SetTokens(string(all[metadata.KeyAccessToken]), refresh)
	return &Session{UserID: userID, Username: string(all[metadata.KeyUsername])}, nil
}

func (a *authService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	if update.Empty() {
		return nil
	}
	if err := a.client.UpdateProfile(ctx, update); err != nil {
		return err
	}
	// The server revokes refresh tokens on a password change.
	if update.Password != nil {
		return a.Logout(ctx)
	}
	return nil
}

// Logout forgets the stored session and the client's tokens.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.getMetadataRepo().Clear(ctx); err != nil {
		return err
	}
	a.client.SetTokens("", "")
	return nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return errors.Join(a.client.Close(), a.db.Close())
}

type walletClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// userIDFromToken reads the user id claim without verifying the signature;
// the client has no key and the server verifies every call anyway.
func userIDFromToken(token string) (string, error) {
	claims := &walletClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", err
	}
	if claims.UserID == "" {
		return "", errors.New("token has no user id")
	}
	return claims.UserID, nil
}
