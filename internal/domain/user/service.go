package user

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"medianet/internal/auth"
	"medianet/internal/utils/platformerrors"
)

// Service implements signup, login and account deletion on top of the user
// repository and the session store. Passwords are hashed before storage and
// never logged or returned.
type Service struct {
	repo     Repository
	sessions auth.SessionStore
	log      zerolog.Logger
}

func NewService(repo Repository, sessions auth.SessionStore, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		log:      log.With().Str("component", "user-service").Logger(),
	}
}

// Signup creates a new account. Duplicate username or email surfaces as
// CONFLICT.
func (s *Service) Signup(ctx context.Context, username, email, password string) (*User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "missing fields", nil)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeInternal, "hash password", err)
	}

	u := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, platformerrors.AsError(platformerrors.LayerDomain, err, "create user")
	}

	s.log.Info().Str("username", username).Msg("user created")
	return u, nil
}

// Login verifies credentials and opens a session. Unknown email is
// NOT_FOUND, a wrong password UNAUTHORIZED; neither establishes a session.
func (s *Service) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "missing credentials", nil)
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, platformerrors.AsError(platformerrors.LayerDomain, err, "find user")
	}
	if u == nil {
		return nil, platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound, "user not found", nil)
	}

	if !auth.VerifyPassword(u.PasswordHash, password) {
		return nil, platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeUnauthorized, "invalid password", nil)
	}

	session := s.sessions.Create(u.ID, u.Username)
	s.log.Info().Str("username", u.Username).Msg("login successful")
	return session, nil
}

// Logout drops the session for a token. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) {
	s.sessions.Delete(token)
}

// DeleteAccount removes the user row (cascading to owned media records) and
// invalidates every session the user holds.
func (s *Service) DeleteAccount(ctx context.Context, id uint) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return platformerrors.AsError(platformerrors.LayerDomain, err, "find user")
	}
	if u == nil {
		return platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound, "user not found", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return platformerrors.AsError(platformerrors.LayerDomain, err, "delete user")
	}
	s.sessions.DeleteForUser(id)

	s.log.Info().Str("username", u.Username).Msg("account deleted")
	return nil
}

// WebDAVCredentials lists username/password-hash pairs for the external
// remote-filesystem adapter.
func (s *Service) WebDAVCredentials(ctx context.Context) ([]Credentials, error) {
	creds, err := s.repo.ListCredentials(ctx)
	if err != nil {
		return nil, platformerrors.AsError(platformerrors.LayerDomain, err, "list credentials")
	}
	return creds, nil
}
