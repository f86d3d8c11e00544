/*
Package auth implements account registration, credential checks and session identity resolution.

Service holds no session state itself: the HTTP layer establishes and destroys sessions
and hands the resolved user id back to ResolveSession on each protected request.
*/
package auth

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"authsite/internal/app/user"
	"authsite/internal/pkg/logx"
)

// MinPasswordLength is the minimum password length in characters accepted at registration.
const MinPasswordLength = 5

var (
	// ErrDuplicateEmail is returned when registering an email already on file.
	ErrDuplicateEmail = user.ErrDuplicateEmail

	// ErrMissingFields is returned when the submitted fields are empty.
	ErrMissingFields = errors.New("required fields are empty")

	// ErrPasswordTooShort is returned when the password has fewer than MinPasswordLength characters.
	ErrPasswordTooShort = errors.New("password too short")

	// ErrUserNotFound is returned when logging in with an unknown email.
	ErrUserNotFound = errors.New("no user with this email")

	// ErrWrongPassword is returned when the password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrAnonymous is returned by ResolveSession when the session does not map to a user.
	ErrAnonymous = errors.New("anonymous session")
)

// Service provides authentication operations over a user.Repository.
type Service struct {
	users  user.Repository
	hasher PasswordHasher
	logger zerolog.Logger
}

// NewService creates a new Service.
func NewService(users user.Repository, hasher PasswordHasher) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		logger: logx.Component("AuthService"),
	}
}

// Register validates a sign-up form and stores the new user.
// The first failing rule wins:
//  1. the email is already registered: ErrDuplicateEmail;
//  2. name, email and password are all empty: ErrMissingFields;
//  3. the password is shorter than MinPasswordLength: ErrPasswordTooShort.
//
// Rule 2 rejects only a completely empty form; a form with some fields empty
// falls through to rule 3.
func (s *Service) Register(ctx context.Context, name, email, password string) (*user.User, error) {
	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrDuplicateEmail
	case !errors.Is(err, user.ErrNotFound):
		return nil, fmt.Errorf("register: look up email: %w", err)
	}

	if name == "" && email == "" && password == "" {
		return nil, ErrMissingFields
	}

	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	created, err := s.users.Insert(ctx, user.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			// lost a race with a concurrent registration of the same email
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("register: insert user: %w", err)
	}

	s.logger.Info().Int64("user_id", created.ID).Msg("User registered")
	return created, nil
}

// Authenticate checks login credentials and returns the matching user.
// A correct email and password always succeed. Otherwise the error is, in order:
// ErrMissingFields when both inputs are empty, ErrUserNotFound when the email
// is unknown, and ErrWrongPassword.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		return nil, fmt.Errorf("authenticate: look up email: %w", err)
	}

	if u != nil && s.hasher.Verify(password, u.PasswordHash) {
		return u, nil
	}

	switch {
	case email == "" && password == "":
		return nil, ErrMissingFields
	case u == nil:
		return nil, ErrUserNotFound
	default:
		s.logger.Debug().Int64("user_id", u.ID).Msg("Password mismatch")
		return nil, ErrWrongPassword
	}
}

// ResolveSession maps the user id carried by a session back to its user.
// It returns ErrAnonymous when the id is not a stored user.
func (s *Service) ResolveSession(ctx context.Context, userID int64) (*user.User, error) {
	if userID <= 0 {
		return nil, ErrAnonymous
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrAnonymous
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return u, nil
}
