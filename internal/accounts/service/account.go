package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// Outcome is what an account operation decided: the status to answer with,
// an optional cookie to set and the JSON body.
type Outcome struct {
	Status int
	Cookie *SessionCookie
	Body   any
}

// MessageResponse is a body carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProfileResponse wraps the caller's profile.
type ProfileResponse struct {
	Message string         `json:"message"`
	User    domain.Profile `json:"user"`
}

// AccountService implements the user-facing account operations.
type AccountService struct {
	Credentials *CredentialService
	Sessions    *SessionService
}

// Register creates a user and signs them in.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (Outcome, error) {
	log := slogx.FromContext(ctx)

	u, err := s.Credentials.Create(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return Outcome{}, ErrDuplicateEmail
		}
		if !errors.Is(err, ErrInvalidInput) {
			log.Error("failed to create user", slog.Any("error", err))
		}
		return Outcome{}, ErrInvalidInput
	}

	cookie, err := s.Sessions.Issue(u.ID)
	if err != nil {
		return Outcome{}, err
	}

	log.Info("user registered", slog.String("user_id", u.ID))
	return Outcome{Status: http.StatusCreated, Cookie: cookie, Body: u.Profile()}, nil
}

// Authenticate checks email and password and signs the user in. Unknown
// email and wrong password fail identically.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (Outcome, error) {
	log := slogx.FromContext(ctx)

	u, err := s.Credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Credentials.burnVerify(password)
			return Outcome{}, ErrInvalidCredentials
		}
		return Outcome{}, err
	}

	if !s.Credentials.VerifyPassword(u, password) {
		log.Warn("password mismatch", slog.String("user_id", u.ID))
		return Outcome{}, ErrInvalidCredentials
	}

	cookie, err := s.Sessions.Issue(u.ID)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Status: http.StatusOK, Cookie: cookie, Body: u.Profile()}, nil
}

// Logout clears the session cookie. It never fails.
func (s *AccountService) Logout(context.Context) (Outcome, error) {
	return Outcome{
		Status: http.StatusOK,
		Cookie: s.Sessions.Clear(),
		Body:   MessageResponse{Message: "User Logged Out"},
	}, nil
}

// Profile returns the profile the auth gate resolved.
func (s *AccountService) Profile(_ context.Context, p domain.Profile) (Outcome, error) {
	return Outcome{
		Status: http.StatusOK,
		Body:   ProfileResponse{Message: "User Profile", User: p},
	}, nil
}

// UpdateProfile changes the authenticated user's own record.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (Outcome, error) {
	u, err := s.Credentials.Update(ctx, userID, upd)
	if err != nil {
		return Outcome{}, err
	}

	slogx.FromContext(ctx).Info("profile updated",
		slog.String("user_id", u.ID),
		slog.Bool("password_changed", upd.Password != ""),
	)
	return Outcome{Status: http.StatusOK, Body: u.Profile()}, nil
}
