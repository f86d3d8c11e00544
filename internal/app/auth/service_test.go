package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"authsite/internal/app/user"
)

func newTestService(t *testing.T) (*Service, *user.MemoryStore) {
	t.Helper()
	store := user.NewMemoryStore()
	return NewService(store, NewBcryptHasher(bcrypt.MinCost)), store
}

// countUsers walks the id sequence, which starts at 1 and has no gaps in a MemoryStore.
func countUsers(t *testing.T, store *user.MemoryStore) int {
	t.Helper()
	n := 0
	for {
		_, err := store.FindByID(context.Background(), int64(n+1))
		if errors.Is(err, user.ErrNotFound) {
			return n
		}
		require.NoError(t, err)
		n++
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		seed     [][3]string
		input    [3]string // name, email, password
		wantErr  error
		wantSize int
	}{
		{
			name:     "valid registration",
			input:    [3]string{"Ann", "a@x.com", "hunter2"},
			wantSize: 1,
		},
		{
			name:     "duplicate email",
			seed:     [][3]string{{"Ann", "a@x.com", "hunter2"}},
			input:    [3]string{"Other", "a@x.com", "different"},
			wantErr:  ErrDuplicateEmail,
			wantSize: 1,
		},
		{
			name:     "duplicate email wins over short password",
			seed:     [][3]string{{"Ann", "a@x.com", "hunter2"}},
			input:    [3]string{"Ann", "a@x.com", "1"},
			wantErr:  ErrDuplicateEmail,
			wantSize: 1,
		},
		{
			name:    "all fields empty",
			input:   [3]string{"", "", ""},
			wantErr: ErrMissingFields,
		},
		{
			name:    "some fields empty falls through to password check",
			input:   [3]string{"Ann", "", ""},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:     "empty name and email accepted with long password",
			input:    [3]string{"", "", "hunter2"},
			wantSize: 1,
		},
		{
			name:    "password too short",
			input:   [3]string{"Ann", "a@x.com", "1234"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:     "password length counts characters not bytes",
			input:    [3]string{"Ann", "a@x.com", "пароль"},
			wantSize: 1,
		},
		{
			name:     "password longer than 72 bytes",
			input:    [3]string{"Ann", "a@x.com", strings.Repeat("a", 100)},
			wantSize: 1,
		},
		{
			name:    "four multibyte characters are too short",
			input:   [3]string{"Ann", "a@x.com", "ёжик"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:     "same name different email",
			seed:     [][3]string{{"Ann", "a@x.com", "hunter2"}},
			input:    [3]string{"Ann", "ann@y.com", "hunter2"},
			wantSize: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService(t)
			for _, s := range tt.seed {
				_, err := svc.Register(ctx, s[0], s[1], s[2])
				require.NoError(t, err)
			}

			got, err := svc.Register(ctx, tt.input[0], tt.input[1], tt.input[2])
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input[0], got.Name)
				assert.Equal(t, tt.input[1], got.Email)
				assert.NotEqual(t, tt.input[2], got.PasswordHash)
			}

			assert.Equal(t, tt.wantSize, countUsers(t, store))
		})
	}
}

func TestRegister_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	first, err := svc.Register(ctx, "Ann", "a@x.com", "hunter2")
	require.NoError(t, err)
	second, err := svc.Register(ctx, "Bob", "b@x.com", "hunter3")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	ann, err := svc.Register(ctx, "Ann", "a@x.com", "hunter2")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "correct credentials", email: "a@x.com", password: "hunter2"},
		{name: "wrong password", email: "a@x.com", password: "wrong", wantErr: ErrWrongPassword},
		{name: "known email empty password", email: "a@x.com", password: "", wantErr: ErrWrongPassword},
		{name: "unknown email", email: "nobody@x.com", password: "hunter2", wantErr: ErrUserNotFound},
		{name: "both empty", email: "", password: "", wantErr: ErrMissingFields},
		{name: "empty email only", email: "", password: "hunter2", wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Authenticate(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ann.ID, got.ID)
			assert.Equal(t, "Ann", got.Name)
		})
	}
}

func TestAuthenticate_EmptyEmailAccountStillLogsIn(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, "Nameless", "", "hunter2")
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, "", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Nameless", got.Name)

	_, err = svc.Authenticate(ctx, "", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestScenario_RegisterLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, "Ann", "a@x.com", "hunter2")
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "a@x.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)

	_, err = svc.Authenticate(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestRegisteredUsersCanLogIn(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for i := range 5 {
		email := fmt.Sprintf("user%d@x.com", i)
		password := strings.Repeat("p", 5+i)

		created, err := svc.Register(ctx, fmt.Sprintf("User %d", i), email, password)
		require.NoError(t, err)

		got, err := svc.Authenticate(ctx, email, password)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	}
}

func TestResolveSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	ann, err := svc.Register(ctx, "Ann", "a@x.com", "hunter2")
	require.NoError(t, err)

	got, err := svc.ResolveSession(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)

	_, err = svc.ResolveSession(ctx, 99)
	assert.ErrorIs(t, err, ErrAnonymous)

	_, err = svc.ResolveSession(ctx, 0)
	assert.ErrorIs(t, err, ErrAnonymous)
}

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Insert(ctx context.Context, u user.User) (*user.User, error) {
	args := m.Called(ctx, u.Email)
	created, _ := args.Get(0).(*user.User)
	return created, args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func TestService_RepositoryFailures(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	t.Run("register lookup failure", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("FindByEmail", ctx, "a@x.com").Return(nil, dbErr)

		_, err := NewService(repo, NewBcryptHasher(bcrypt.MinCost)).Register(ctx, "Ann", "a@x.com", "hunter2")
		assert.ErrorIs(t, err, dbErr)
		repo.AssertExpectations(t)
	})

	t.Run("register insert race on duplicate email", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("FindByEmail", ctx, "a@x.com").Return(nil, user.ErrNotFound)
		repo.On("Insert", ctx, "a@x.com").Return(nil, user.ErrDuplicateEmail)

		_, err := NewService(repo, NewBcryptHasher(bcrypt.MinCost)).Register(ctx, "Ann", "a@x.com", "hunter2")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
		repo.AssertExpectations(t)
	})

	t.Run("authenticate lookup failure", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("FindByEmail", ctx, "a@x.com").Return(nil, dbErr)

		_, err := NewService(repo, NewBcryptHasher(bcrypt.MinCost)).Authenticate(ctx, "a@x.com", "hunter2")
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("resolve session failure is not anonymous", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("FindByID", ctx, int64(1)).Return(nil, dbErr)

		_, err := NewService(repo, NewBcryptHasher(bcrypt.MinCost)).ResolveSession(ctx, 1)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrAnonymous)
	})
}
