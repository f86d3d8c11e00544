/*
Package user contains the account record and the repository abstraction used to store it.

A User is created once at registration and never edited or removed afterwards.
Repository implementations keep email unique and hand out ids in insertion order.
*/
package user

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned by Insert when the email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// User represents one registered account.
type User struct {
	// ID is assigned by the repository at insertion time: 1 for the first user, 2 for the second, and so on.
	ID int64

	// Name is the display name shown on the landing page. It need not be unique.
	Name string

	// Email is the unique login key.
	Email string

	// PasswordHash is the salted password hash; the plaintext is never stored.
	PasswordHash string
}

// Repository is the storage contract AuthService depends on.
type Repository interface {
	// Insert assigns the next id to u, stores it and returns the stored copy.
	Insert(ctx context.Context, u User) (*User, error)

	// FindByID returns ErrNotFound when the id is unknown.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail returns ErrNotFound when the email is unknown.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
