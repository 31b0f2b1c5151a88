package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
	"github.com/go-playground/validator/v10"
)

type newUserInput struct {
	Name     string `validate:"required,max=128"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,max=1024"`
}

type updateInput struct {
	Name     string `validate:"omitempty,max=128"`
	Email    string `validate:"omitempty,email,max=254"`
	Password string `validate:"omitempty,max=1024"`
}

// CredentialService owns user records and their password hashes.
type CredentialService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher

	validate  *validator.Validate
	dummyOnce sync.Once
	dummyHash string
}

func NewCredentialService(st store.Store, hasher *cryptox.PasswordHasher) *CredentialService {
	return &CredentialService{
		Store:    st,
		Hasher:   hasher,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// FindByEmail returns store.ErrNotFound when no user has email.
func (s *CredentialService) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.Store.Users().GetUserByEmail(ctx, email)
}

// FindByID returns store.ErrNotFound when no user has id.
func (s *CredentialService) FindByID(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// Create validates the input, hashes the password and stores a new user.
// The email UNIQUE constraint has the final say, so racing creates for the
// same email leave exactly one winner.
func (s *CredentialService) Create(ctx context.Context, name, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	if err := s.validate.Struct(newUserInput{Name: name, Email: email, Password: password}); err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 2. Reject known emails before paying for the hash
	_, err := s.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.User{}, ErrDuplicateEmail
	case !errors.Is(err, store.ErrNotFound):
		return domain.User{}, err
	}

	// 3. Hash the password
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	// 4. Persist
	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("lost registration race", slog.String("email", email))
			return domain.User{}, ErrDuplicateEmail
		}
		return domain.User{}, err
	}

	return u, nil
}

// Update applies the non-empty fields of upd to the user with id. A new
// password is hashed before the transaction starts.
func (s *CredentialService) Update(ctx context.Context, id string, upd domain.ProfileUpdate) (domain.User, error) {
	if err := s.validate.Struct(updateInput(upd)); err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var newHash string
	if upd.Password != "" {
		h, err := s.Hasher.Hash(upd.Password)
		if err != nil {
			return domain.User{}, fmt.Errorf("%w: hash password: %w", ErrInvalidInput, err)
		}
		newHash = h
	}

	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, id)
		if err != nil {
			return err
		}

		if upd.Name != "" {
			u.Name = upd.Name
		}
		if upd.Email != "" {
			u.Email = upd.Email
		}
		if newHash != "" {
			u.PasswordHash = newHash
		}
		u.UpdatedAt = time.Now().UTC()

		if err := tx.Users().UpdateUser(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, ErrUserNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.User{}, ErrDuplicateEmail
	default:
		return domain.User{}, err
	}
}

// VerifyPassword reports whether plaintext matches the stored hash.
func (s *CredentialService) VerifyPassword(u domain.User, plaintext string) bool {
	return s.Hasher.Verify(plaintext, u.PasswordHash) == nil
}

// burnVerify spends roughly the same time as a real password check, so an
// unknown email is not distinguishable from a wrong password by latency.
func (s *CredentialService) burnVerify(plaintext string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.Hasher.Hash(idx.New().String())
	})
	if s.dummyHash != "" {
		_ = s.Hasher.Verify(plaintext, s.dummyHash)
	}
}
