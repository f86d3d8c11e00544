package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"authsite/internal/app/user"
)

// querier is the subset of *pgxpool.Pool used by UserStore.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserStore is a user.Repository backed by the users table.
// Ids come from a BIGSERIAL sequence: increasing, never reused,
// though a failed insert leaves a gap.
type UserStore struct {
	pool querier
}

var _ user.Repository = (*UserStore)(nil)

func NewUserStore(pool querier) *UserStore {
	return &UserStore{pool: pool}
}

func (s *UserStore) Insert(ctx context.Context, u user.User) (*user.User, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`, u.Name, u.Email, u.PasswordHash).Scan(&u.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, user.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &u, nil
}

func (s *UserStore) FindByID(ctx context.Context, id int64) (*user.User, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash
		FROM users
		WHERE id = $1
	`, id)

	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("find user by id %d: %w", id, err)
	}
	return u, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash
		FROM users
		WHERE email = $1
	`, email)

	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
